package common

// GeographicalRegion is the root of the containment tree.
type GeographicalRegion struct {
	IdentifiedObject `yaml:",inline"`
	Regions          []string `json:"regions" yaml:"regions"`
}

// SubGeographicalRegion groups the substations and lines of one DSO region.
type SubGeographicalRegion struct {
	IdentifiedObject `yaml:",inline"`
	Substations      []string `json:"substations" yaml:"substations"`
	Lines            []string `json:"lines" yaml:"lines"`
}

// Substation is an equipment container deduplicated by its name.
type Substation struct {
	IdentifiedObject `yaml:",inline"`
	Location         *Location `json:"location,omitempty" yaml:"location,omitempty"`
	Equipments       []string  `json:"equipments" yaml:"equipments"`
}

// Line is an equipment container for line segments.
type Line struct {
	IdentifiedObject `yaml:",inline"`
	Location         *Location `json:"location,omitempty" yaml:"location,omitempty"`
	Equipments       []string  `json:"equipments" yaml:"equipments"`
}

// PowerTransformer is conducting equipment deduplicated by its name. Its ends
// are owned and embedded.
type PowerTransformer struct {
	IdentifiedObject    `yaml:",inline"`
	Location            *Location             `json:"location,omitempty" yaml:"location,omitempty"`
	UsagePoints         []string              `json:"usage_points,omitempty" yaml:"usage_points,omitempty"`
	PowerTransformerEnd []PowerTransformerEnd `json:"power_transformer_end" yaml:"power_transformer_end"`
}

// PowerTransformerEnd points at the terminal of its transformer.
type PowerTransformerEnd struct {
	IdentifiedObject `yaml:",inline"`
	Terminal         string `json:"terminal" yaml:"terminal"`
}

// ACLineSegment is a conductor contained in a Line.
type ACLineSegment struct {
	IdentifiedObject `yaml:",inline"`
	Location         *Location `json:"location,omitempty" yaml:"location,omitempty"`
	UsagePoints      []string  `json:"usage_points,omitempty" yaml:"usage_points,omitempty"`
}

// Terminal is the connector entity. It carries up to three cross references
// plus the measurements and limit sets taken at this attachment point.
type Terminal struct {
	IdentifiedObject    `yaml:",inline"`
	TopologicalNode     string   `json:"topological_node,omitempty" yaml:"topological_node,omitempty"`
	ConnectivityNode    string   `json:"connectivity_node,omitempty" yaml:"connectivity_node,omitempty"`
	ConductingEquipment string   `json:"conducting_equipment,omitempty" yaml:"conducting_equipment,omitempty"`
	OperationalLimitSet []string `json:"operational_limit_set,omitempty" yaml:"operational_limit_set,omitempty"`
	Measurements        []string `json:"measurements,omitempty" yaml:"measurements,omitempty"`
}

// TopologicalNode lists every terminal attached to it.
type TopologicalNode struct {
	IdentifiedObject  `yaml:",inline"`
	ConnectivityNodes []string `json:"connectivity_nodes,omitempty" yaml:"connectivity_nodes,omitempty"`
	Terminal          []string `json:"terminal" yaml:"terminal"`
}

// EnergyConsumer is the conducting equipment behind a usage point.
type EnergyConsumer struct {
	IdentifiedObject `yaml:",inline"`
	Location         *Location `json:"location,omitempty" yaml:"location,omitempty"`
	UsagePoints      []string  `json:"usage_points,omitempty" yaml:"usage_points,omitempty"`
}

// UsagePoint is a metering point identified by its EAN code.
type UsagePoint struct {
	IdentifiedObject         `yaml:",inline"`
	EuropeanArticleNumberEAN string `json:"european_article_number_ean" yaml:"european_article_number_ean"`
}

// Location is owned by exactly one resource and is never shared.
type Location struct {
	IdentifiedObject `yaml:",inline"`
	MainAddress      *StreetAddress  `json:"main_address,omitempty" yaml:"main_address,omitempty"`
	CoordinateSystem string          `json:"coordinate_system,omitempty" yaml:"coordinate_system,omitempty"`
	PositionPoints   []PositionPoint `json:"position_points,omitempty" yaml:"position_points,omitempty"`
}

type StreetAddress struct {
	PostalCode   string       `json:"postal_code" yaml:"postal_code"`
	StreetDetail StreetDetail `json:"street_detail" yaml:"street_detail"`
	TownDetail   *TownDetail  `json:"town_detail,omitempty" yaml:"town_detail,omitempty"`
}

type StreetDetail struct {
	Code   string `json:"code,omitempty" yaml:"code,omitempty"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Number string `json:"number" yaml:"number"`
}

type TownDetail struct {
	Name            string `json:"name,omitempty" yaml:"name,omitempty"`
	Section         string `json:"section,omitempty" yaml:"section,omitempty"`
	StateOrProvince string `json:"state_or_province" yaml:"state_or_province"`
}

// CoordinateSystem is deduplicated by its CRS URN.
type CoordinateSystem struct {
	IdentifiedObject `yaml:",inline"`
	CrsURN           string `json:"crs_urn" yaml:"crs_urn"`
}

// PositionPoint positions are kept as the strings found in the source data.
type PositionPoint struct {
	GroupNumber    *int   `json:"group_number,omitempty" yaml:"group_number,omitempty"`
	SequenceNumber *int   `json:"sequence_number,omitempty" yaml:"sequence_number,omitempty"`
	XPosition      string `json:"x_position" yaml:"x_position"`
	YPosition      string `json:"y_position" yaml:"y_position"`
	ZPosition      string `json:"z_position,omitempty" yaml:"z_position,omitempty"`
}

// MarketParticipant is deduplicated by its name.
type MarketParticipant struct {
	IdentifiedObject `yaml:",inline"`
	MarketRole       []string `json:"market_role" yaml:"market_role"`
}

// MarketRole is deduplicated by its role type.
type MarketRole struct {
	IdentifiedObject `yaml:",inline"`
	Type             string `json:"type" yaml:"type"`
}

type MktConnectivityNode struct {
	IdentifiedObject   `yaml:",inline"`
	RegisteredResource []string `json:"registered_resource" yaml:"registered_resource"`
}

type RegisteredLoad struct {
	IdentifiedObject  `yaml:",inline"`
	Location          *Location `json:"location,omitempty" yaml:"location,omitempty"`
	MarketParticipant string    `json:"market_participant" yaml:"market_participant"`
}

// Analog is a measurement with its values embedded.
type Analog struct {
	IdentifiedObject `yaml:",inline"`
	MeasurementType  string         `json:"measurement_type,omitempty" yaml:"measurement_type,omitempty"`
	UnitMultiplier   UnitMultiplier `json:"unit_multiplier" yaml:"unit_multiplier"`
	UnitSymbol       UnitSymbol     `json:"unit_symbol" yaml:"unit_symbol"`
	PositiveFlowIn   *bool          `json:"positive_flow_in,omitempty" yaml:"positive_flow_in,omitempty"`
	AnalogValues     []AnalogValue  `json:"analog_values" yaml:"analog_values"`
}

// AnalogValue timestamps are normalised to RFC 3339.
type AnalogValue struct {
	IdentifiedObject `yaml:",inline"`
	Value            float64 `json:"value" yaml:"value"`
	TimeStamp        string  `json:"time_stamp" yaml:"time_stamp"`
}

type OperationalLimitSet struct {
	IdentifiedObject      `yaml:",inline"`
	OperationalLimitValue []string `json:"operational_limit_value,omitempty" yaml:"operational_limit_value,omitempty"`
}

type OperationalLimitType struct {
	IdentifiedObject `yaml:",inline"`
}

type ActivePower struct {
	Multiplier UnitMultiplier `json:"multiplier" yaml:"multiplier"`
	Unit       UnitSymbol     `json:"unit" yaml:"unit"`
	Value      float64        `json:"value" yaml:"value"`
}

type ActivePowerLimit struct {
	IdentifiedObject     `yaml:",inline"`
	Value                ActivePower          `json:"value" yaml:"value"`
	OperationalLimitType OperationalLimitType `json:"operational_limit_type" yaml:"operational_limit_type"`
}
