package extract

import (
	"docforge/internal/dump"
	"docforge/internal/gamedata"
)

// Buildings normalizes manufacturer and generator records into the building
// table, keyed by source class identifier. Generators produce power, so their
// power value is negated and their exponents pinned to 1.0 (they take no
// production boost and no overclock curve on the consumption side).
func Buildings(records []dump.ClassRecord) *gamedata.BuildingTable {
	table := gamedata.NewBuildingTable()
	for _, record := range records {
		building := gamedata.Building{
			Name:          record.Str("mDisplayName"),
			VariablePower: record.NativeClass == variablePowerManufacturerClass,
		}
		if generatorClassSet[record.NativeClass] {
			building.Power = -record.Float("mPowerProduction")
			building.PowerExponent = 1.0
			building.SomersloopMult = 1.0
			building.SomersloopPowerExponent = 1.0
		} else {
			building.Power = record.Float("mPowerConsumption")
			building.PowerExponent = record.Float("mPowerConsumptionExponent")
			building.SomersloopMult = floatOr(record, "mProductionShardBoostMultiplier", 1.0)
			building.SomersloopPowerExponent = floatOr(record, "mProductionBoostPowerConsumptionExponent", 1.0)
		}
		table.Add(record.Str("ClassName"), building)
	}
	return table
}

func floatOr(record dump.ClassRecord, key string, fallback float64) float64 {
	if !record.Has(key) {
		return fallback
	}
	return record.Float(key)
}
