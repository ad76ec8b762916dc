package graph

import (
	"fmt"

	"github.com/OFFIS-RIT/cimgraph/pkg/common"
	"github.com/OFFIS-RIT/cimgraph/pkg/logger"
)

// AddChargePoint links one charge point into the graph: substation, equipment
// and topological node are upserted; terminal, energy consumer, usage point,
// market connectivity node and registered load are minted.
//
// Validation failures leave the graph untouched. ErrMissingLinkage leaves the
// substation and equipment upserts of this call in place.
func (b *Builder) AddChargePoint(rec ChargePointRecord) error {
	if err := b.validateRecord(rec); err != nil {
		return fmt.Errorf("charge point %q: %w", rec.EAN, err)
	}

	substation := b.upsertSubstation(rec.SubstationName)
	b.upsertTransformer(substation, rec.EquipmentName)

	node, err := b.topologicalNode(rec.EquipmentName)
	if err != nil {
		return fmt.Errorf("charge point %q: %w", rec.EAN, err)
	}

	terminal := b.newTerminal(node)
	b.attachUsagePoint(terminal, rec)
	b.attachRegisteredLoad(terminal, rec.ParticipantName, rec.RoleType)

	logger.Debug("[Graph] Added charge point", "ean", rec.EAN, "equipment", rec.EquipmentName)
	return nil
}

func (b *Builder) attachUsagePoint(terminal *common.Terminal, rec ChargePointRecord) {
	up := &common.UsagePoint{
		IdentifiedObject:         b.identity(""),
		EuropeanArticleNumberEAN: rec.EAN,
	}
	consumer := &common.EnergyConsumer{
		IdentifiedObject: b.identity(""),
		Location:         b.newLocation(rec.Address, rec.Position),
		UsagePoints:      []string{up.MRID},
	}
	terminal.ConductingEquipment = consumer.MRID

	b.dataset.UsagePoints = append(b.dataset.UsagePoints, up)
	b.dataset.EnergyConsumers = append(b.dataset.EnergyConsumers, consumer)
}
