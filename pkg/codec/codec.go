package codec

import (
	"fmt"
	"io"
	"slices"

	"github.com/OFFIS-RIT/cimgraph/pkg/common"
)

// Exporter writes a dataset in one output format.
type Exporter interface {
	Export(ds *common.ForecastDataSet, w io.Writer) error
	Format() string
}

// Exporters returns every supported exporter.
func Exporters() []Exporter {
	return []Exporter{NewJSONCodec(), NewYAMLCodec()}
}

// ForFormat returns the exporter for format.
func ForFormat(format string) (Exporter, error) {
	var names []string
	for _, e := range Exporters() {
		if e.Format() == format {
			return e, nil
		}
		names = append(names, e.Format())
	}
	slices.Sort(names)
	return nil, fmt.Errorf("unknown output format %q (supported: %v)", format, names)
}
