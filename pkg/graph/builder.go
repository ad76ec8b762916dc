package graph

import (
	"time"

	"github.com/OFFIS-RIT/cimgraph/pkg/common"
	"github.com/OFFIS-RIT/cimgraph/pkg/logger"

	"github.com/go-playground/validator"
)

// Dataset defaults.
const (
	DefaultConformsTo   = "http://data.netbeheernederland.nl/dp-nbl-forecast"
	DefaultVersion      = "1.0.0"
	DefaultCountry      = "Netherlands"
	ChargePointRoleType = "Charge Point Operator"

	releaseDateLayout = "2006-01-02"
)

// NewBuilderParams configures a Builder.
type NewBuilderParams struct {
	// Region is the description of the SubGeographicalRegion every substation
	// and line is placed in, usually the DSO region.
	Region string
	// OnlyCoordinates drops street addresses from every location.
	OnlyCoordinates bool
	// Allocator mints mRIDs. Defaults to UUIDAllocator.
	Allocator IDAllocator
	// Metadata overrides the dataset metadata. Empty fields get defaults.
	Metadata common.DataSetMetadata
}

// Builder assembles a ForecastDataSet one record at a time. It owns its
// dataset, cache and allocator; two builders never share state. A Builder is
// not safe for concurrent use.
type Builder struct {
	dataset         *common.ForecastDataSet
	cache           *Cache
	ids             IDAllocator
	validate        *validator.Validate
	region          *common.SubGeographicalRegion
	onlyCoordinates bool
}

// NewBuilder returns a builder seeded with one GeographicalRegion and one
// SubGeographicalRegion for params.Region.
func NewBuilder(params NewBuilderParams) *Builder {
	ids := params.Allocator
	if ids == nil {
		ids = UUIDAllocator{}
	}

	meta := params.Metadata
	if meta.Identifier == "" {
		meta.Identifier = ids.NextID()
	}
	if meta.ConformsTo == "" {
		meta.ConformsTo = DefaultConformsTo
	}
	if meta.Version == "" {
		meta.Version = DefaultVersion
	}
	if meta.ReleaseDate == "" {
		meta.ReleaseDate = time.Now().Format(releaseDateLayout)
	}

	b := &Builder{
		dataset:         common.NewForecastDataSet(meta),
		cache:           NewCache(),
		ids:             ids,
		validate:        newValidator(),
		onlyCoordinates: params.OnlyCoordinates,
	}

	b.region = &common.SubGeographicalRegion{
		IdentifiedObject: b.identity(params.Region),
		Substations:      []string{},
		Lines:            []string{},
	}
	country := &common.GeographicalRegion{
		IdentifiedObject: b.identity(DefaultCountry),
		Regions:          []string{b.region.MRID},
	}
	b.dataset.GeographicalRegions = append(b.dataset.GeographicalRegions, country)
	b.dataset.SubGeographicalRegions = append(b.dataset.SubGeographicalRegions, b.region)

	logger.Debug("[Graph] Builder created", "region", params.Region, "dataset", meta.Identifier)
	return b
}

func (b *Builder) identity(description string) common.IdentifiedObject {
	return common.IdentifiedObject{MRID: b.ids.NextID(), Description: description}
}

func (b *Builder) upsertSubstation(name string) *common.Substation {
	if s, ok := lookup[common.Substation](b.cache, KindSubstation, name); ok {
		return s
	}

	s := &common.Substation{
		IdentifiedObject: b.identity(name),
		Equipments:       []string{},
	}
	b.cache.mustPut(KindSubstation, name, s)
	b.dataset.Substations = append(b.dataset.Substations, s)
	b.region.Substations = append(b.region.Substations, s.MRID)
	return s
}

func (b *Builder) upsertLine(name string) *common.Line {
	if l, ok := lookup[common.Line](b.cache, KindLine, name); ok {
		return l
	}

	l := &common.Line{
		IdentifiedObject: b.identity(name),
		Equipments:       []string{},
	}
	b.cache.mustPut(KindLine, name, l)
	b.dataset.Lines = append(b.dataset.Lines, l)
	b.region.Lines = append(b.region.Lines, l.MRID)
	return l
}

// upsertTransformer returns the equipment registered under name, creating a
// PowerTransformer in substation when the name is new. The result may be an
// *common.ACLineSegment if the name was first seen as a line.
func (b *Builder) upsertTransformer(substation *common.Substation, name string) any {
	if eq, ok := b.cache.Lookup(KindEquipment, name); ok {
		return eq
	}

	pt := &common.PowerTransformer{
		IdentifiedObject:    b.identity(name),
		PowerTransformerEnd: []common.PowerTransformerEnd{},
	}
	node := &common.TopologicalNode{
		IdentifiedObject: b.identity(name),
		Terminal:         []string{},
	}
	b.cache.mustPut(KindEquipment, name, pt)
	b.cache.mustPut(KindTopologicalNode, name, node)

	b.attachTransformerEnd(pt, node)

	b.dataset.TopologicalNodes = append(b.dataset.TopologicalNodes, node)
	b.dataset.PowerTransformers = append(b.dataset.PowerTransformers, pt)
	substation.Equipments = append(substation.Equipments, pt.MRID)
	return pt
}

// upsertLineSegment mirrors upsertTransformer for line equipment. Segments get
// no TopologicalNode.
func (b *Builder) upsertLineSegment(container *common.Line, name string) any {
	if eq, ok := b.cache.Lookup(KindEquipment, name); ok {
		return eq
	}

	seg := &common.ACLineSegment{
		IdentifiedObject: b.identity(name),
	}
	b.cache.mustPut(KindEquipment, name, seg)
	b.dataset.ACLineSegments = append(b.dataset.ACLineSegments, seg)
	container.Equipments = append(container.Equipments, seg.MRID)
	return seg
}

// topologicalNode resolves the node of the named equipment.
func (b *Builder) topologicalNode(equipment string) (*common.TopologicalNode, error) {
	node, ok := lookup[common.TopologicalNode](b.cache, KindTopologicalNode, equipment)
	if !ok {
		return nil, missingLinkage("TopologicalNode", equipment)
	}
	return node, nil
}

// newTerminal mints a terminal and, when node is set, links both ways.
func (b *Builder) newTerminal(node *common.TopologicalNode) *common.Terminal {
	t := &common.Terminal{IdentifiedObject: b.identity("")}
	if node != nil {
		t.TopologicalNode = node.MRID
		node.Terminal = append(node.Terminal, t.MRID)
	}
	b.dataset.Terminals = append(b.dataset.Terminals, t)
	return t
}

// attachTransformerEnd adds a new end to pt whose terminal sits on node.
func (b *Builder) attachTransformerEnd(pt *common.PowerTransformer, node *common.TopologicalNode) *common.Terminal {
	t := b.newTerminal(node)
	t.ConductingEquipment = pt.MRID
	pt.PowerTransformerEnd = append(pt.PowerTransformerEnd, common.PowerTransformerEnd{
		IdentifiedObject: b.identity(""),
		Terminal:         t.MRID,
	})
	return t
}
