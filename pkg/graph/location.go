package graph

import "github.com/OFFIS-RIT/cimgraph/pkg/common"

// newLocation mints an owned location. Locations are never deduplicated; the
// coordinate system they point at is.
func (b *Builder) newLocation(addr Address, pos Position) *common.Location {
	loc := &common.Location{IdentifiedObject: b.identity("")}

	if !b.onlyCoordinates {
		loc.MainAddress = streetAddress(addr)
	}
	if pos.CRS != "" {
		loc.CoordinateSystem = b.upsertCoordinateSystem(pos.CRS).MRID
	}
	if pos.X != "" || pos.Y != "" {
		loc.PositionPoints = []common.PositionPoint{{
			XPosition: pos.X,
			YPosition: pos.Y,
		}}
	}
	return loc
}

func streetAddress(addr Address) *common.StreetAddress {
	sa := &common.StreetAddress{
		PostalCode: addr.PostalCode,
		StreetDetail: common.StreetDetail{
			Code:   addr.StreetCode,
			Name:   addr.StreetName,
			Number: addr.Number,
		},
	}
	if addr.TownName != "" || addr.TownSection != "" || addr.Province != "" {
		sa.TownDetail = &common.TownDetail{
			Name:            addr.TownName,
			Section:         addr.TownSection,
			StateOrProvince: addr.Province,
		}
	}
	return sa
}

func (b *Builder) upsertCoordinateSystem(urn string) *common.CoordinateSystem {
	if cs, ok := lookup[common.CoordinateSystem](b.cache, KindCoordinateSystem, urn); ok {
		return cs
	}

	cs := &common.CoordinateSystem{
		IdentifiedObject: b.identity(urn),
		CrsURN:           urn,
	}
	b.cache.mustPut(KindCoordinateSystem, urn, cs)
	b.dataset.CoordinateSystems = append(b.dataset.CoordinateSystems, cs)
	return cs
}
