package pipeline

import (
	"github.com/OFFIS-RIT/cimgraph/internal/util"
	"github.com/OFFIS-RIT/cimgraph/pkg/graph"
	"github.com/OFFIS-RIT/cimgraph/pkg/loader/csv"
)

// Charge point export columns.
const (
	colCPSubstation  = "1_Substation.Name"
	colCPEquipment   = "2_ConductingEquipment.Name"
	colCPEAN         = "100_MarketEvaluationPoint.EAN"
	colCPParticipant = "110_MarketParticipant.Name"
	colCPPostalCode  = "120_StreetAddress.Postalcode"
	colCPNumber      = "122_StreetDetail.Number"
	colCPTown        = "123_TownDetail.Name"
	colCPSection     = "124_TownDetail.Section"
	colCPProvince    = "125_TownDetail.StateOrProvince"
	colCPCRS         = "126_CoordinateSystem.Name"
	colCPX           = "127_PositionPoint.Xposition"
	colCPY           = "128_PositionPoint.Yposition"
)

// Asset export columns.
const (
	colAssetSubstation = "1_Substation.Name"
	colAssetEquipment  = "2_ConductingEquipment.Name"
	colAssetPSRType    = "3_MktPSRType.PsrType"
	colAssetPostalCode = "10_StreetAddress.Postalcode"
	colAssetStreet     = "11_StreetDetail.Name"
	colAssetNumber     = "12_StreetDetail.Number"
	colAssetStreetCode = "13_StreetDetail.Code"
	colAssetTown       = "14_TownDetail.Name"
	colAssetSection    = "15_TownDetail.Section"
	colAssetProvince   = "16_TownDetail.StateOrProvince"
	colAssetCRS        = "17_CoordinateSystem.Name"
	colAssetX          = "18_PositionPoint.Xposition"
	colAssetY          = "19_PositionPoint.Yposition"

	colAnalogName       = "30_Analog.Name"
	colAnalogType       = "31_Analog.MeasurementType"
	colAnalogMultiplier = "32_Analog.UnitMultiplier"
	colAnalogSymbol     = "33_Analog.UnitSymbol"
	colAnalogValue      = "34_AnalogValue.Value"
	colAnalogTimestamp  = "35_AnalogValue.Timestamp"
)

// Each asset row carries two limits; the columns of the second start at 50.
var limitColumns = [2][4]string{
	{"40_OperationalLimitSet.Name", "41_ActivePowerLimit.UnitMultiplier", "42_ActivePowerLimit.UnitSymbol", "43_ActivePowerLimit.Value"},
	{"50_OperationalLimitSet.Name", "51_ActivePowerLimit.UnitMultiplier", "52_ActivePowerLimit.UnitSymbol", "53_ActivePowerLimit.Value"},
}

func field(row csv.Row, column string) string {
	return util.CleanField(row.Get(column))
}

// ChargePointFromRow maps one charge point export row to a record.
func ChargePointFromRow(row csv.Row) graph.ChargePointRecord {
	return graph.ChargePointRecord{
		SubstationName:  field(row, colCPSubstation),
		EquipmentName:   field(row, colCPEquipment),
		EAN:             util.StripQuotes(field(row, colCPEAN)),
		ParticipantName: field(row, colCPParticipant),
		RoleType:        graph.ChargePointRoleType,
		Address: graph.Address{
			PostalCode:  field(row, colCPPostalCode),
			Number:      util.StripHouseNumberSuffix(field(row, colCPNumber)),
			TownName:    field(row, colCPTown),
			TownSection: field(row, colCPSection),
			Province:    field(row, colCPProvince),
		},
		Position: graph.Position{
			CRS: field(row, colCPCRS),
			X:   util.StripQuotes(field(row, colCPX)),
			Y:   util.StripQuotes(field(row, colCPY)),
		},
	}
}

// AssetFromRow maps one asset export row to a record.
func AssetFromRow(row csv.Row) graph.AssetRecord {
	rec := graph.AssetRecord{
		SubstationName: field(row, colAssetSubstation),
		EquipmentName:  field(row, colAssetEquipment),
		PSRType:        field(row, colAssetPSRType),
		Address: graph.Address{
			PostalCode:  field(row, colAssetPostalCode),
			StreetName:  field(row, colAssetStreet),
			Number:      field(row, colAssetNumber),
			StreetCode:  field(row, colAssetStreetCode),
			TownName:    field(row, colAssetTown),
			TownSection: field(row, colAssetSection),
			Province:    field(row, colAssetProvince),
		},
		Position: graph.Position{
			CRS: field(row, colAssetCRS),
			X:   util.StripQuotes(field(row, colAssetX)),
			Y:   util.StripQuotes(field(row, colAssetY)),
		},
		Measurement: graph.MeasurementInput{
			Name:           field(row, colAnalogName),
			Type:           field(row, colAnalogType),
			UnitMultiplier: field(row, colAnalogMultiplier),
			UnitSymbol:     field(row, colAnalogSymbol),
			Value:          field(row, colAnalogValue),
			Timestamp:      field(row, colAnalogTimestamp),
		},
	}
	for _, cols := range limitColumns {
		rec.Limits = append(rec.Limits, graph.LimitInput{
			Name:           field(row, cols[0]),
			UnitMultiplier: field(row, cols[1]),
			UnitSymbol:     field(row, cols[2]),
			Value:          field(row, cols[3]),
		})
	}
	return rec
}
