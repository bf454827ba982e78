package extract

import (
	"strconv"

	"docforge/internal/dump"
	"docforge/internal/gamedata"
	"docforge/internal/parse"
)

// SynthesizePower derives one implicit power-generation recipe per
// (generator, fuel) pair and appends them to the recipe list. Burn time is
// kept as an unevaluated fuelEnergy/powerProduction fraction so consumers can
// reconstruct the exact duration.
func SynthesizePower(generators []dump.ClassRecord, buildings *gamedata.BuildingTable, items *gamedata.ItemTable, recipes *gamedata.RecipeList) error {
	for _, generator := range generators {
		generatorClass := generator.Str("ClassName")
		building, ok := buildings.Get(generatorClass)
		if !ok {
			return &parse.UnknownBuildingError{Recipe: "Power", Building: generatorClass}
		}
		power := generator.Float("mPowerProduction")
		requiresSupplemental := generator.Str("mRequiresSupplementalResource") == "True"
		supplementalRatio := generator.Float("mSupplementalToPowerRatio")

		for _, fuel := range generator.Records("mFuel") {
			fuelClass := fuel.Str("mFuelClass")
			fuelItem, ok := items.Get(fuelClass)
			if !ok {
				return &parse.UnknownItemError{Item: fuelClass}
			}

			// Fuel energy is per item for solids, per liter otherwise; scale
			// to whole units so the fraction matches a one-unit input.
			numerator := fuelItem.Energy
			if !fuelItem.State.Solid() {
				numerator *= 1000.0
			}

			inputs := []gamedata.CountedItem{{Name: fuelItem.Name, Amount: 1}}
			if supplementalClass := fuel.Str("mSupplementalResourceClass"); requiresSupplemental && supplementalClass != "" {
				supplementalItem, ok := items.Get(supplementalClass)
				if !ok {
					return &parse.UnknownItemError{Item: supplementalClass}
				}
				inputs = append(inputs, gamedata.CountedItem{
					Name:   supplementalItem.Name,
					Amount: parse.NormalizeAmount(supplementalRatio*fuelItem.Energy, supplementalItem.State),
				})
			}

			var outputs []gamedata.CountedItem
			if byproductClass := fuel.Str("mByproduct"); byproductClass != "" {
				byproductItem, ok := items.Get(byproductClass)
				if !ok {
					return &parse.UnknownItemError{Item: byproductClass}
				}
				outputs = append(outputs, gamedata.CountedItem{
					Name:   byproductItem.Name,
					Amount: fuel.Float("mByproductAmount"),
				})
			}

			recipes.Add(generatorClass+"|"+fuelClass, gamedata.Recipe{
				Name:     "Power (" + fuelItem.Name + ")",
				Time:     gamedata.Fraction(formatAmount(numerator), formatAmount(power)),
				Building: building.Name,
				Inputs:   inputs,
				Outputs:  outputs,
			})
		}
	}
	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
