package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/OFFIS-RIT/cimgraph/pkg/common"

	"github.com/invopop/jsonschema"
)

var (
	unitMultiplierType = reflect.TypeOf(common.UnitMultiplier(""))
	unitSymbolType     = reflect.TypeOf(common.UnitSymbol(""))
)

// Schema reflects the JSON Schema of ForecastDataSet. The closed unit
// enumerations are emitted as string enums.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		Mapper:                    enumMapper,
	}

	s := reflector.Reflect(&common.ForecastDataSet{})
	s.Title = "ForecastDataSet"
	s.Description = "Forecast dataset of charge points and substation assets."
	return s
}

func enumMapper(t reflect.Type) *jsonschema.Schema {
	var values []string
	switch t {
	case unitMultiplierType:
		values = common.UnitMultipliers()
	case unitSymbolType:
		values = common.UnitSymbols()
	default:
		return nil
	}

	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = v
	}
	return &jsonschema.Schema{Type: "string", Enum: enum}
}

// WriteSchema writes the indented schema to w.
func WriteSchema(w io.Writer) error {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode schema: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	return nil
}
