package graph

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/OFFIS-RIT/cimgraph/pkg/common"

	"github.com/go-playground/validator"
)

// Address is the postal part of a location row.
type Address struct {
	PostalCode  string
	StreetName  string
	StreetCode  string
	Number      string
	TownName    string
	TownSection string
	Province    string
}

// Position is the geographic part of a location row. CRS is the URN of the
// coordinate reference system; X and Y are kept verbatim.
type Position struct {
	CRS string
	X   string
	Y   string
}

// ChargePointRecord is one charge point row after column mapping.
type ChargePointRecord struct {
	SubstationName  string `validate:"required"`
	EquipmentName   string `validate:"required"`
	EAN             string `validate:"required"`
	ParticipantName string
	RoleType        string `validate:"required"`
	Address         Address
	Position        Position
}

// MeasurementInput is the raw analog measurement of an asset row.
type MeasurementInput struct {
	Name           string
	Type           string
	UnitMultiplier string `validate:"unit_multiplier"`
	UnitSymbol     string `validate:"unit_symbol"`
	Value          string `validate:"required"`
	Timestamp      string `validate:"required"`
}

// LimitInput is one raw active power limit of an asset row.
type LimitInput struct {
	Name           string
	UnitMultiplier string `validate:"unit_multiplier"`
	UnitSymbol     string `validate:"unit_symbol"`
	Value          string `validate:"required"`
}

// AssetRecord is one substation asset row after column mapping.
type AssetRecord struct {
	SubstationName string `validate:"required"`
	EquipmentName  string `validate:"required"`
	PSRType        string
	Address        Address
	Position       Position
	Measurement    MeasurementInput
	Limits         []LimitInput `validate:"dive"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("unit_multiplier", func(fl validator.FieldLevel) bool {
		return common.IsUnitMultiplier(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("unit_symbol", func(fl validator.FieldLevel) bool {
		return common.IsUnitSymbol(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

func (b *Builder) validateRecord(rec any) error {
	err := b.validate.Struct(rec)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s(%s)", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
}

// measurement is a MeasurementInput after parsing.
type measurement struct {
	name       string
	kind       string
	multiplier common.UnitMultiplier
	symbol     common.UnitSymbol
	value      float64
	timestamp  string
}

type limit struct {
	name       string
	multiplier common.UnitMultiplier
	symbol     common.UnitSymbol
	value      float64
}

func parseMeasurement(in MeasurementInput) (measurement, error) {
	value, err := parseNumber("measurement value", in.Value)
	if err != nil {
		return measurement{}, err
	}
	ts, err := ParseTimestamp(in.Timestamp)
	if err != nil {
		return measurement{}, err
	}
	return measurement{
		name:       in.Name,
		kind:       in.Type,
		multiplier: common.UnitMultiplier(in.UnitMultiplier),
		symbol:     common.UnitSymbol(in.UnitSymbol),
		value:      value,
		timestamp:  ts,
	}, nil
}

func parseLimits(in []LimitInput) ([]limit, error) {
	limits := make([]limit, 0, len(in))
	for i, l := range in {
		value, err := parseNumber(fmt.Sprintf("limit %d value", i+1), l.Value)
		if err != nil {
			return nil, err
		}
		limits = append(limits, limit{
			name:       l.Name,
			multiplier: common.UnitMultiplier(l.UnitMultiplier),
			symbol:     common.UnitSymbol(l.UnitSymbol),
			value:      value,
		})
	}
	return limits, nil
}

func parseNumber(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedNumericField, field, raw)
	}
	return v, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp accepts RFC 3339, the same with a space separator, a zone
// less date-time (read as UTC) or a bare date, and returns the RFC 3339 form.
func ParseTimestamp(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.RFC3339), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrMalformedTimestamp, raw)
}
