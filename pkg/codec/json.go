package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/OFFIS-RIT/cimgraph/pkg/common"
)

// JSONCodec writes datasets as indented JSON.
type JSONCodec struct{}

func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

func (c *JSONCodec) Format() string {
	return "json"
}

// Export encodes ds with two-space indentation. Field order follows the
// dataset type, so sections come out in their fixed order.
func (c *JSONCodec) Export(ds *common.ForecastDataSet, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(ds); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
