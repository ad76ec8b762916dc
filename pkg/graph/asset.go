package graph

import (
	"fmt"
	"strings"

	"github.com/OFFIS-RIT/cimgraph/pkg/common"
	"github.com/OFFIS-RIT/cimgraph/pkg/logger"
)

var linePSRTypes = map[string]struct{}{
	"line":          {},
	"a02":           {},
	"aclinesegment": {},
}

// IsLinePSRType reports whether a PSR type code denotes line equipment.
func IsLinePSRType(psrType string) bool {
	_, ok := linePSRTypes[strings.ToLower(strings.TrimSpace(psrType))]
	return ok
}

// AddAsset records one measured asset. Transformer assets get a new
// transformer end on the equipment's topological node; line assets get a
// terminal on the segment. Either terminal carries one analog and one limit
// set.
//
// Numeric, timestamp and enumeration errors are detected before anything is
// created.
func (b *Builder) AddAsset(rec AssetRecord) error {
	if err := b.validateRecord(rec); err != nil {
		return fmt.Errorf("asset %q: %w", rec.EquipmentName, err)
	}
	m, err := parseMeasurement(rec.Measurement)
	if err != nil {
		return fmt.Errorf("asset %q: %w", rec.EquipmentName, err)
	}
	limits, err := parseLimits(rec.Limits)
	if err != nil {
		return fmt.Errorf("asset %q: %w", rec.EquipmentName, err)
	}

	substation := b.upsertSubstation(rec.SubstationName)
	if substation.Location == nil {
		substation.Location = b.newLocation(rec.Address, rec.Position)
	}

	var terminal *common.Terminal
	if IsLinePSRType(rec.PSRType) {
		if eq, ok := b.cache.Lookup(KindEquipment, rec.EquipmentName); ok {
			if _, isSegment := eq.(*common.ACLineSegment); !isSegment {
				return fmt.Errorf("asset %q: %w", rec.EquipmentName, missingLinkage("ACLineSegment", rec.EquipmentName))
			}
		}
		container := b.upsertLine(rec.SubstationName)
		seg, ok := b.upsertLineSegment(container, rec.EquipmentName).(*common.ACLineSegment)
		if !ok {
			return fmt.Errorf("asset %q: %w", rec.EquipmentName, missingLinkage("ACLineSegment", rec.EquipmentName))
		}
		terminal = b.newTerminal(nil)
		terminal.ConductingEquipment = seg.MRID
	} else {
		b.upsertTransformer(substation, rec.EquipmentName)
		node, err := b.topologicalNode(rec.EquipmentName)
		if err != nil {
			return fmt.Errorf("asset %q: %w", rec.EquipmentName, err)
		}
		pt, ok := lookup[common.PowerTransformer](b.cache, KindEquipment, rec.EquipmentName)
		if !ok {
			return fmt.Errorf("asset %q: %w", rec.EquipmentName, missingLinkage("PowerTransformer", rec.EquipmentName))
		}
		terminal = b.attachTransformerEnd(pt, node)
	}

	b.attachAnalog(terminal, m)
	b.attachLimitSet(terminal, rec.EquipmentName, limits)

	logger.Debug("[Graph] Added asset", "equipment", rec.EquipmentName, "psr_type", rec.PSRType)
	return nil
}

func (b *Builder) attachAnalog(terminal *common.Terminal, m measurement) {
	positive := true
	analog := &common.Analog{
		IdentifiedObject: b.identity(m.name),
		MeasurementType:  m.kind,
		UnitMultiplier:   m.multiplier,
		UnitSymbol:       m.symbol,
		PositiveFlowIn:   &positive,
		AnalogValues: []common.AnalogValue{{
			IdentifiedObject: b.identity(""),
			Value:            m.value,
			TimeStamp:        m.timestamp,
		}},
	}
	terminal.Measurements = append(terminal.Measurements, analog.MRID)
	b.dataset.Analogs = append(b.dataset.Analogs, analog)
}

func (b *Builder) attachLimitSet(terminal *common.Terminal, equipment string, limits []limit) {
	set := &common.OperationalLimitSet{
		IdentifiedObject:      b.identity(equipment),
		OperationalLimitValue: make([]string, 0, len(limits)),
	}
	for _, l := range limits {
		apl := &common.ActivePowerLimit{
			IdentifiedObject: b.identity(l.name),
			Value: common.ActivePower{
				Multiplier: l.multiplier,
				Unit:       l.symbol,
				Value:      l.value,
			},
			OperationalLimitType: common.OperationalLimitType{
				IdentifiedObject: b.identity(l.name),
			},
		}
		set.OperationalLimitValue = append(set.OperationalLimitValue, apl.MRID)
		b.dataset.ActivePowerLimits = append(b.dataset.ActivePowerLimits, apl)
	}
	terminal.OperationalLimitSet = append(terminal.OperationalLimitSet, set.MRID)
	b.dataset.OperationalLimitSets = append(b.dataset.OperationalLimitSets, set)
}
