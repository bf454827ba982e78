package extract

import (
	"strings"

	"docforge/internal/dump"
	"docforge/internal/gamedata"
	"docforge/internal/parse"
)

const alternatePrefix = "Alternate:"

// Recipes normalizes recipe records against the known building and item sets.
// Build-gun recipes, event-exclusive recipes, decorative recipes and recipes
// with no producible building are dropped without diagnostics; every other
// resolution failure is fatal.
func Recipes(records []dump.ClassRecord, buildings *gamedata.BuildingTable, items *gamedata.ItemTable) (*gamedata.RecipeList, error) {
	recipes := gamedata.NewRecipeList()
	for _, record := range records {
		producedIn := record.Str("mProducedIn")
		if producedIn == "" ||
			strings.Contains(producedIn, "BuildGun") ||
			record.Str("mRelevantEvents") != "" ||
			strings.Contains(record.Str("FullName"), "Fireworks") {
			continue
		}

		displayName := record.Str("mDisplayName")
		building, ok, err := parse.ProducedIn(displayName, producedIn, buildings)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		inputs, err := parse.CountedItems(record.Str("mIngredients"), items)
		if err != nil {
			return nil, err
		}
		outputs, err := parse.CountedItems(record.Str("mProduct"), items)
		if err != nil {
			return nil, err
		}

		recipe := gamedata.Recipe{
			Name:      strings.TrimSpace(strings.TrimPrefix(displayName, alternatePrefix)),
			Alternate: strings.HasPrefix(displayName, alternatePrefix),
			Time:      gamedata.Seconds(record.Float("mManufactoringDuration")),
			Building:  building.Name,
			Inputs:    inputs,
			Outputs:   outputs,
		}
		if building.VariablePower {
			constant := record.Float("mVariablePowerConsumptionConstant")
			factor := record.Float("mVariablePowerConsumptionFactor")
			recipe.PowerConstant = &constant
			recipe.PowerRange = &factor
		}
		recipes.Add(record.Str("ClassName"), recipe)
	}
	return recipes, nil
}
