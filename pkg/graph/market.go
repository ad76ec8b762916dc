package graph

import (
	"slices"

	"github.com/OFFIS-RIT/cimgraph/pkg/common"
)

func (b *Builder) upsertMarketRole(roleType string) *common.MarketRole {
	if r, ok := lookup[common.MarketRole](b.cache, KindMarketRole, roleType); ok {
		return r
	}

	r := &common.MarketRole{
		IdentifiedObject: b.identity(roleType),
		Type:             roleType,
	}
	b.cache.mustPut(KindMarketRole, roleType, r)
	b.dataset.MarketRoles = append(b.dataset.MarketRoles, r)
	return r
}

// upsertMarketParticipant returns the participant called name and makes sure
// it lists role.
func (b *Builder) upsertMarketParticipant(name string, role *common.MarketRole) *common.MarketParticipant {
	if mp, ok := lookup[common.MarketParticipant](b.cache, KindMarketParticipant, name); ok {
		if !slices.Contains(mp.MarketRole, role.MRID) {
			mp.MarketRole = append(mp.MarketRole, role.MRID)
		}
		return mp
	}

	mp := &common.MarketParticipant{
		IdentifiedObject: b.identity(name),
		MarketRole:       []string{role.MRID},
	}
	b.cache.mustPut(KindMarketParticipant, name, mp)
	b.dataset.MarketParticipants = append(b.dataset.MarketParticipants, mp)
	return mp
}

// attachRegisteredLoad hangs a market connectivity node with one registered
// load of the participant off terminal.
func (b *Builder) attachRegisteredLoad(terminal *common.Terminal, participant, roleType string) {
	role := b.upsertMarketRole(roleType)
	mp := b.upsertMarketParticipant(participant, role)

	load := &common.RegisteredLoad{
		IdentifiedObject:  b.identity(""),
		MarketParticipant: mp.MRID,
	}
	node := &common.MktConnectivityNode{
		IdentifiedObject:   b.identity(""),
		RegisteredResource: []string{load.MRID},
	}
	terminal.ConnectivityNode = node.MRID

	b.dataset.RegisteredLoads = append(b.dataset.RegisteredLoads, load)
	b.dataset.MktConnectivityNodes = append(b.dataset.MktConnectivityNodes, node)
}
