package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docforge/internal/dump"
	"docforge/internal/gamedata"
	"docforge/internal/parse"
)

func powerFixtures() (*gamedata.BuildingTable, *gamedata.ItemTable) {
	buildings := gamedata.NewBuildingTable()
	buildings.Add("Build_GeneratorCoal_C", gamedata.Building{Name: "Coal-Powered Generator", Power: -75, PowerExponent: 1, SomersloopMult: 1, SomersloopPowerExponent: 1})
	buildings.Add("Build_GeneratorNuclear_C", gamedata.Building{Name: "Nuclear Power Plant", Power: -2500, PowerExponent: 1, SomersloopMult: 1, SomersloopPowerExponent: 1})

	items := gamedata.NewItemTable()
	items.Add("Desc_Coal_C", gamedata.Item{Name: "Coal", State: gamedata.StateSolid, Energy: 300, Sink: 3})
	items.Add("Desc_Water_C", gamedata.Item{Name: "Water", State: gamedata.StateLiquid})
	items.Add("Desc_NuclearFuelRod_C", gamedata.Item{Name: "Uranium Fuel Rod", State: gamedata.StateSolid, Energy: 750000})
	items.Add("Desc_NuclearWaste_C", gamedata.Item{Name: "Uranium Waste", State: gamedata.StateSolid})
	items.Add("Desc_LiquidBiofuel_C", gamedata.Item{Name: "Liquid Biofuel", State: gamedata.StateLiquid, Energy: 750})
	return buildings, items
}

func TestSynthesizePowerSolidFuelWithSupplemental(t *testing.T) {
	generator := record(t, nativeClass("FGBuildableGeneratorFuel"), `{
		"ClassName": "Build_GeneratorCoal_C",
		"mDisplayName": "Coal-Powered Generator",
		"mPowerProduction": "75.000000",
		"mRequiresSupplementalResource": "True",
		"mSupplementalToPowerRatio": "2.000000",
		"mFuel": [
			{
				"mFuelClass": "Desc_Coal_C",
				"mSupplementalResourceClass": "Desc_Water_C",
				"mByproduct": "",
				"mByproductAmount": ""
			}
		]
	}`)

	buildings, items := powerFixtures()
	recipes := gamedata.NewRecipeList()
	require.NoError(t, SynthesizePower([]dump.ClassRecord{generator}, buildings, items, recipes))
	require.Equal(t, 1, recipes.Len())

	recipe, ok := recipes.Get("Build_GeneratorCoal_C|Desc_Coal_C")
	require.True(t, ok)
	assert.Equal(t, "Power (Coal)", recipe.Name)
	assert.False(t, recipe.Alternate)
	assert.Equal(t, "Coal-Powered Generator", recipe.Building)

	require.True(t, recipe.Time.IsFraction())
	assert.Equal(t, "300/75", recipe.Time.String(), "burn time stays an unevaluated fraction")

	require.Len(t, recipe.Inputs, 2)
	assert.Equal(t, gamedata.CountedItem{Name: "Coal", Amount: 1}, recipe.Inputs[0])
	// ratio 2 * energy 300 = 600 milli-units of water = 0.6
	assert.Equal(t, gamedata.CountedItem{Name: "Water", Amount: 0.6}, recipe.Inputs[1])
	assert.Empty(t, recipe.Outputs)
}

func TestSynthesizePowerLiquidFuelScalesEnergy(t *testing.T) {
	generator := record(t, nativeClass("FGBuildableGeneratorFuel"), `{
		"ClassName": "Build_GeneratorCoal_C",
		"mDisplayName": "Coal-Powered Generator",
		"mPowerProduction": "75.000000",
		"mRequiresSupplementalResource": "False",
		"mFuel": [
			{
				"mFuelClass": "Desc_LiquidBiofuel_C",
				"mSupplementalResourceClass": "",
				"mByproduct": "",
				"mByproductAmount": ""
			}
		]
	}`)

	buildings, items := powerFixtures()
	recipes := gamedata.NewRecipeList()
	require.NoError(t, SynthesizePower([]dump.ClassRecord{generator}, buildings, items, recipes))

	recipe, ok := recipes.Get("Build_GeneratorCoal_C|Desc_LiquidBiofuel_C")
	require.True(t, ok)
	// liquid fuel energy is per liter; one whole unit carries x1000
	assert.Equal(t, "750000/75", recipe.Time.String())
	assert.Equal(t, []gamedata.CountedItem{{Name: "Liquid Biofuel", Amount: 1}}, recipe.Inputs)
}

func TestSynthesizePowerByproduct(t *testing.T) {
	generator := record(t, nativeClass("FGBuildableGeneratorNuclear"), `{
		"ClassName": "Build_GeneratorNuclear_C",
		"mDisplayName": "Nuclear Power Plant",
		"mPowerProduction": "2500.000000",
		"mRequiresSupplementalResource": "True",
		"mSupplementalToPowerRatio": "0.200000",
		"mFuel": [
			{
				"mFuelClass": "Desc_NuclearFuelRod_C",
				"mSupplementalResourceClass": "Desc_Water_C",
				"mByproduct": "Desc_NuclearWaste_C",
				"mByproductAmount": "50"
			}
		]
	}`)

	buildings, items := powerFixtures()
	recipes := gamedata.NewRecipeList()
	require.NoError(t, SynthesizePower([]dump.ClassRecord{generator}, buildings, items, recipes))

	recipe, ok := recipes.Get("Build_GeneratorNuclear_C|Desc_NuclearFuelRod_C")
	require.True(t, ok)
	assert.Equal(t, "750000/2500", recipe.Time.String())
	assert.Equal(t, []gamedata.CountedItem{{Name: "Uranium Waste", Amount: 50}}, recipe.Outputs)
}

func TestSynthesizePowerUnknownFuelIsFatal(t *testing.T) {
	generator := record(t, nativeClass("FGBuildableGeneratorFuel"), `{
		"ClassName": "Build_GeneratorCoal_C",
		"mPowerProduction": "75.000000",
		"mFuel": [{"mFuelClass": "Desc_Mystery_C", "mSupplementalResourceClass": "", "mByproduct": "", "mByproductAmount": ""}]
	}`)

	buildings, items := powerFixtures()
	err := SynthesizePower([]dump.ClassRecord{generator}, buildings, items, gamedata.NewRecipeList())
	var unknown *parse.UnknownItemError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Desc_Mystery_C", unknown.Item)
}
