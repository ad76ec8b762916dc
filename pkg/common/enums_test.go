package common

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnitMultiplier(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"k", false},
		{"M", false},
		{"none", false},
		{"micro", false},
		{"K", true},
		{"kilo", true},
		{"", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseUnitMultiplier(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownEnumValue))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, UnitMultiplier(tc.in), got)
		})
	}
}

func TestParseUnitSymbol(t *testing.T) {
	for _, ok := range []string{"W", "Wh", "VAr", "degC", "none"} {
		_, err := ParseUnitSymbol(ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"w", "kW", "Watt", ""} {
		_, err := ParseUnitSymbol(bad)
		assert.ErrorIs(t, err, ErrUnknownEnumValue, bad)
	}
}

func TestEnumListsAreSorted(t *testing.T) {
	ms := UnitMultipliers()
	assert.Len(t, ms, 21)
	assert.IsNonDecreasing(t, ms)
	assert.Contains(t, UnitSymbols(), "W")
}

func TestIdentifiedObjectIsInlinedInJSON(t *testing.T) {
	sub := Substation{
		IdentifiedObject: IdentifiedObject{MRID: "id-1", Description: "S1"},
		Equipments:       []string{},
	}
	data, err := json.Marshal(sub)
	require.NoError(t, err)
	assert.JSONEq(t, `{"m_rid":"id-1","description":"S1","equipments":[]}`, string(data))
}

func TestNewForecastDataSetHasEmptySections(t *testing.T) {
	ds := NewForecastDataSet(DataSetMetadata{Identifier: "run"})
	data, err := json.Marshal(ds)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []any{}, decoded["terminals"])
	assert.Equal(t, []any{}, decoded["active_power_limits"])
	assert.Equal(t, "run", decoded["identifier"])
}
