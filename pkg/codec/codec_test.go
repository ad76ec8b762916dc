package codec

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/OFFIS-RIT/cimgraph/pkg/common"
	"github.com/OFFIS-RIT/cimgraph/pkg/graph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleDataset(t *testing.T) *common.ForecastDataSet {
	t.Helper()
	b := graph.NewBuilder(graph.NewBuilderParams{
		Region:   "Alliander",
		Metadata: common.DataSetMetadata{Identifier: "run-1", ReleaseDate: "2025-01-31"},
	})
	require.NoError(t, b.AddChargePoint(graph.ChargePointRecord{
		SubstationName:  "S1",
		EquipmentName:   "T1",
		EAN:             "871234560000000001",
		ParticipantName: "ChargeCo",
		RoleType:        graph.ChargePointRoleType,
		Position:        graph.Position{CRS: "urn:ogc:def:crs:EPSG::28992", X: "1", Y: "2"},
	}))
	return b.View().Dataset()
}

func TestJSONExportKeepsSectionOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONCodec().Export(sampleDataset(t), &buf))
	out := buf.String()

	order := []string{
		`"identifier"`, `"terminals"`, `"topological_nodes"`, `"coordinate_systems"`,
		`"usage_points"`, `"substations"`, `"power_transformers"`, `"analogs"`,
		`"energy_consumers"`, `"active_power_limits"`,
	}
	last := -1
	for _, key := range order {
		idx := strings.Index(out, key)
		require.Greater(t, idx, last, key)
		last = idx
	}

	assert.Contains(t, out, `"active_power_limits": []`)
	assert.Contains(t, out, `"european_article_number_ean": "871234560000000001"`)
	assert.Contains(t, out, "\n  \"terminals\"")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded["identifier"])
}

func TestYAMLExportInlinesIdentity(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLCodec().Export(sampleDataset(t), &buf))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "2025-01-31", decoded["release_date"])

	subs, ok := decoded["substations"].([]any)
	require.True(t, ok)
	require.Len(t, subs, 1)
	sub := subs[0].(map[string]any)
	assert.Equal(t, "S1", sub["description"])
	assert.NotEmpty(t, sub["m_rid"])
	assert.NotContains(t, sub, "identifiedobject")
	assert.NotContains(t, sub, "location")

	assert.Equal(t, []any{}, decoded["analogs"])
}

func TestForFormat(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		e, err := ForFormat(format)
		require.NoError(t, err)
		assert.Equal(t, format, e.Format())
	}

	_, err := ForFormat("xml")
	assert.ErrorContains(t, err, "xml")
}

func TestSchema(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSchema(&buf))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "ForecastDataSet", doc["title"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, name := range []string{"identifier", "terminals", "active_power_limits"} {
		assert.Contains(t, props, name)
	}

	defs, ok := doc["$defs"].(map[string]any)
	require.True(t, ok)
	analog, ok := defs["Analog"].(map[string]any)
	require.True(t, ok)
	analogProps := analog["properties"].(map[string]any)
	assert.Contains(t, analogProps, "m_rid")

	multiplier := analogProps["unit_multiplier"].(map[string]any)
	assert.Equal(t, "string", multiplier["type"])
	assert.Contains(t, multiplier["enum"], "k")
	assert.Len(t, multiplier["enum"], len(common.UnitMultipliers()))
}
