package codec

import (
	"fmt"
	"io"

	"github.com/OFFIS-RIT/cimgraph/pkg/common"

	"gopkg.in/yaml.v3"
)

// YAMLCodec writes datasets as YAML.
type YAMLCodec struct{}

func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

func (c *YAMLCodec) Format() string {
	return "yaml"
}

func (c *YAMLCodec) Export(ds *common.ForecastDataSet, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(ds); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
