package graph

import (
	"fmt"

	"github.com/OFFIS-RIT/cimgraph/pkg/common"
)

// Section names in output order.
const (
	SectionTerminals              = "terminals"
	SectionTopologicalNodes       = "topological_nodes"
	SectionCoordinateSystems      = "coordinate_systems"
	SectionUsagePoints            = "usage_points"
	SectionSubstations            = "substations"
	SectionSubGeographicalRegions = "sub_geographical_regions"
	SectionLines                  = "lines"
	SectionGeographicalRegions    = "geographical_regions"
	SectionPowerTransformers      = "power_transformers"
	SectionACLineSegments         = "ac_line_segments"
	SectionAnalogs                = "analogs"
	SectionRegisteredLoads        = "registered_loads"
	SectionMktConnectivityNodes   = "mkt_connectivity_nodes"
	SectionMarketParticipants     = "market_participants"
	SectionMarketRoles            = "market_roles"
	SectionEnergyConsumers        = "energy_consumers"
	SectionOperationalLimitSets   = "operational_limit_sets"
	SectionActivePowerLimits      = "active_power_limits"
)

// Section is one named, insertion ordered entity list.
type Section struct {
	Name     string
	Entities []any
}

// View is a read-only window on a builder's dataset.
type View struct {
	ds *common.ForecastDataSet
}

// View returns a view of the current graph. It reflects later additions.
func (b *Builder) View() *View {
	return &View{ds: b.dataset}
}

// Dataset returns the root entity for encoders. Callers must not modify it.
func (v *View) Dataset() *common.ForecastDataSet {
	return v.ds
}

// Sections returns all sections in output order.
func (v *View) Sections() []Section {
	ds := v.ds
	return []Section{
		{SectionTerminals, toAny(ds.Terminals)},
		{SectionTopologicalNodes, toAny(ds.TopologicalNodes)},
		{SectionCoordinateSystems, toAny(ds.CoordinateSystems)},
		{SectionUsagePoints, toAny(ds.UsagePoints)},
		{SectionSubstations, toAny(ds.Substations)},
		{SectionSubGeographicalRegions, toAny(ds.SubGeographicalRegions)},
		{SectionLines, toAny(ds.Lines)},
		{SectionGeographicalRegions, toAny(ds.GeographicalRegions)},
		{SectionPowerTransformers, toAny(ds.PowerTransformers)},
		{SectionACLineSegments, toAny(ds.ACLineSegments)},
		{SectionAnalogs, toAny(ds.Analogs)},
		{SectionRegisteredLoads, toAny(ds.RegisteredLoads)},
		{SectionMktConnectivityNodes, toAny(ds.MktConnectivityNodes)},
		{SectionMarketParticipants, toAny(ds.MarketParticipants)},
		{SectionMarketRoles, toAny(ds.MarketRoles)},
		{SectionEnergyConsumers, toAny(ds.EnergyConsumers)},
		{SectionOperationalLimitSets, toAny(ds.OperationalLimitSets)},
		{SectionActivePowerLimits, toAny(ds.ActivePowerLimits)},
	}
}

// Len returns the number of entities in the named section, or 0 for an
// unknown name.
func (v *View) Len(name string) int {
	for _, s := range v.Sections() {
		if s.Name == name {
			return len(s.Entities)
		}
	}
	return 0
}

// IDs returns every mRID in the graph, including those of owned values such
// as locations, transformer ends and analog values.
func (v *View) IDs() []string {
	var ids []string
	add := func(id string) { ids = append(ids, id) }
	addLoc := func(loc *common.Location) {
		if loc != nil {
			add(loc.MRID)
		}
	}

	for _, s := range v.Sections() {
		for _, e := range s.Entities {
			add(e.(common.Identified).ID())
			switch x := e.(type) {
			case *common.Substation:
				addLoc(x.Location)
			case *common.Line:
				addLoc(x.Location)
			case *common.EnergyConsumer:
				addLoc(x.Location)
			case *common.RegisteredLoad:
				addLoc(x.Location)
			case *common.ACLineSegment:
				addLoc(x.Location)
			case *common.PowerTransformer:
				addLoc(x.Location)
				for _, end := range x.PowerTransformerEnd {
					add(end.MRID)
				}
			case *common.Analog:
				for _, av := range x.AnalogValues {
					add(av.MRID)
				}
			case *common.ActivePowerLimit:
				add(x.OperationalLimitType.MRID)
			}
		}
	}
	return ids
}

// DanglingReference is a relation field naming an id that is not in the
// section(s) it must point into.
type DanglingReference struct {
	Entity string
	Field  string
	Ref    string
}

func (d DanglingReference) String() string {
	return fmt.Sprintf("%s.%s -> %s", d.Entity, d.Field, d.Ref)
}

// CheckReferences walks every relation field and reports references that do
// not resolve. A graph produced by the builder alone has none.
func (v *View) CheckReferences() []DanglingReference {
	ds := v.ds
	var out []DanglingReference

	check := func(entity, field, ref string, targets ...map[string]struct{}) {
		if ref == "" {
			return
		}
		for _, t := range targets {
			if _, ok := t[ref]; ok {
				return
			}
		}
		out = append(out, DanglingReference{Entity: entity, Field: field, Ref: ref})
	}
	checkAll := func(entity, field string, refs []string, targets ...map[string]struct{}) {
		for _, ref := range refs {
			check(entity, field, ref, targets...)
		}
	}
	checkLoc := func(entity string, loc *common.Location) {
		if loc != nil {
			check(entity, "location.coordinate_system", loc.CoordinateSystem, idSet(ds.CoordinateSystems))
		}
	}

	terminals := idSet(ds.Terminals)
	nodes := idSet(ds.TopologicalNodes)
	subs := idSet(ds.Substations)
	lines := idSet(ds.Lines)
	regions := idSet(ds.SubGeographicalRegions)
	pts := idSet(ds.PowerTransformers)
	segs := idSet(ds.ACLineSegments)
	consumers := idSet(ds.EnergyConsumers)
	ups := idSet(ds.UsagePoints)
	mktNodes := idSet(ds.MktConnectivityNodes)
	loads := idSet(ds.RegisteredLoads)
	mps := idSet(ds.MarketParticipants)
	roles := idSet(ds.MarketRoles)
	analogs := idSet(ds.Analogs)
	sets := idSet(ds.OperationalLimitSets)
	apls := idSet(ds.ActivePowerLimits)

	for _, g := range ds.GeographicalRegions {
		checkAll(g.MRID, "regions", g.Regions, regions)
	}
	for _, r := range ds.SubGeographicalRegions {
		checkAll(r.MRID, "substations", r.Substations, subs)
		checkAll(r.MRID, "lines", r.Lines, lines)
	}
	for _, s := range ds.Substations {
		checkAll(s.MRID, "equipments", s.Equipments, pts, segs)
		checkLoc(s.MRID, s.Location)
	}
	for _, l := range ds.Lines {
		checkAll(l.MRID, "equipments", l.Equipments, segs)
	}
	for _, pt := range ds.PowerTransformers {
		for _, end := range pt.PowerTransformerEnd {
			check(pt.MRID, "power_transformer_end.terminal", end.Terminal, terminals)
		}
	}
	for _, t := range ds.Terminals {
		check(t.MRID, "topological_node", t.TopologicalNode, nodes)
		check(t.MRID, "connectivity_node", t.ConnectivityNode, mktNodes)
		check(t.MRID, "conducting_equipment", t.ConductingEquipment, consumers, pts, segs)
		checkAll(t.MRID, "operational_limit_set", t.OperationalLimitSet, sets)
		checkAll(t.MRID, "measurements", t.Measurements, analogs)
	}
	for _, n := range ds.TopologicalNodes {
		checkAll(n.MRID, "terminal", n.Terminal, terminals)
	}
	for _, ec := range ds.EnergyConsumers {
		checkAll(ec.MRID, "usage_points", ec.UsagePoints, ups)
		checkLoc(ec.MRID, ec.Location)
	}
	for _, mp := range ds.MarketParticipants {
		checkAll(mp.MRID, "market_role", mp.MarketRole, roles)
	}
	for _, n := range ds.MktConnectivityNodes {
		checkAll(n.MRID, "registered_resource", n.RegisteredResource, loads)
	}
	for _, rl := range ds.RegisteredLoads {
		check(rl.MRID, "market_participant", rl.MarketParticipant, mps)
	}
	for _, s := range ds.OperationalLimitSets {
		checkAll(s.MRID, "operational_limit_value", s.OperationalLimitValue, apls)
	}
	return out
}

func toAny[T any](xs []*T) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func idSet[T common.Identified](xs []T) map[string]struct{} {
	set := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		set[x.ID()] = struct{}{}
	}
	return set
}
