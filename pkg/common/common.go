package common

// IdentifiedObject carries the identity shared by every CIM entity. It is
// embedded into each entity type instead of re-declaring the inherited
// attributes per type.
//
// MRID is assigned once at creation and never changes. Description is a free
// human readable label; for substations, equipment, market roles and market
// participants it doubles as the natural key used for deduplication.
type IdentifiedObject struct {
	MRID        string `json:"m_rid" yaml:"m_rid"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ID returns the master resource identifier.
func (o IdentifiedObject) ID() string {
	return o.MRID
}

// Identified is implemented by every entity that embeds IdentifiedObject.
type Identified interface {
	ID() string
}

// ForecastDataSet is a single instance of a published dataset. It is the root
// of the output graph: top-level metadata plus one append-only section per
// entity type. Field order is the output order.
type ForecastDataSet struct {
	Identifier   string `json:"identifier" yaml:"identifier"`
	ConformsTo   string `json:"conforms_to" yaml:"conforms_to"`
	ContactPoint string `json:"contact_point" yaml:"contact_point"`
	ReleaseDate  string `json:"release_date" yaml:"release_date"`
	Version      string `json:"version" yaml:"version"`

	Terminals              []*Terminal              `json:"terminals" yaml:"terminals"`
	TopologicalNodes       []*TopologicalNode       `json:"topological_nodes" yaml:"topological_nodes"`
	CoordinateSystems      []*CoordinateSystem      `json:"coordinate_systems" yaml:"coordinate_systems"`
	UsagePoints            []*UsagePoint            `json:"usage_points" yaml:"usage_points"`
	Substations            []*Substation            `json:"substations" yaml:"substations"`
	SubGeographicalRegions []*SubGeographicalRegion `json:"sub_geographical_regions" yaml:"sub_geographical_regions"`
	Lines                  []*Line                  `json:"lines" yaml:"lines"`
	GeographicalRegions    []*GeographicalRegion    `json:"geographical_regions" yaml:"geographical_regions"`
	PowerTransformers      []*PowerTransformer      `json:"power_transformers" yaml:"power_transformers"`
	ACLineSegments         []*ACLineSegment         `json:"ac_line_segments" yaml:"ac_line_segments"`
	Analogs                []*Analog                `json:"analogs" yaml:"analogs"`
	RegisteredLoads        []*RegisteredLoad        `json:"registered_loads" yaml:"registered_loads"`
	MktConnectivityNodes   []*MktConnectivityNode   `json:"mkt_connectivity_nodes" yaml:"mkt_connectivity_nodes"`
	MarketParticipants     []*MarketParticipant     `json:"market_participants" yaml:"market_participants"`
	MarketRoles            []*MarketRole            `json:"market_roles" yaml:"market_roles"`
	EnergyConsumers        []*EnergyConsumer        `json:"energy_consumers" yaml:"energy_consumers"`
	OperationalLimitSets   []*OperationalLimitSet   `json:"operational_limit_sets" yaml:"operational_limit_sets"`
	ActivePowerLimits      []*ActivePowerLimit      `json:"active_power_limits" yaml:"active_power_limits"`
}

// DataSetMetadata holds the top-level descriptive fields of a dataset.
type DataSetMetadata struct {
	Identifier   string
	ConformsTo   string
	ContactPoint string
	ReleaseDate  string
	Version      string
}

// NewForecastDataSet returns a dataset with every section initialised to an
// empty list so that encoders emit [] rather than null.
func NewForecastDataSet(meta DataSetMetadata) *ForecastDataSet {
	return &ForecastDataSet{
		Identifier:   meta.Identifier,
		ConformsTo:   meta.ConformsTo,
		ContactPoint: meta.ContactPoint,
		ReleaseDate:  meta.ReleaseDate,
		Version:      meta.Version,

		Terminals:              []*Terminal{},
		TopologicalNodes:       []*TopologicalNode{},
		CoordinateSystems:      []*CoordinateSystem{},
		UsagePoints:            []*UsagePoint{},
		Substations:            []*Substation{},
		SubGeographicalRegions: []*SubGeographicalRegion{},
		Lines:                  []*Line{},
		GeographicalRegions:    []*GeographicalRegion{},
		PowerTransformers:      []*PowerTransformer{},
		ACLineSegments:         []*ACLineSegment{},
		Analogs:                []*Analog{},
		RegisteredLoads:        []*RegisteredLoad{},
		MktConnectivityNodes:   []*MktConnectivityNode{},
		MarketParticipants:     []*MarketParticipant{},
		MarketRoles:            []*MarketRole{},
		EnergyConsumers:        []*EnergyConsumer{},
		OperationalLimitSets:   []*OperationalLimitSet{},
		ActivePowerLimits:      []*ActivePowerLimit{},
	}
}
