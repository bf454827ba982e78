package extract

// Native-class tags of the docs schema version the parsing rules target.
const nativeClassPrefix = "/Script/CoreUObject.Class'/Script/FactoryGame."

func nativeClass(name string) string {
	return nativeClassPrefix + name + "'"
}

var (
	recipeClasses = []string{nativeClass("FGRecipe")}

	variablePowerManufacturerClass = nativeClass("FGBuildableManufacturerVariablePower")

	manufacturerClasses = []string{
		nativeClass("FGBuildableManufacturer"),
		variablePowerManufacturerClass,
	}

	generatorClasses = []string{
		nativeClass("FGBuildableGeneratorFuel"),
		nativeClass("FGBuildableGeneratorNuclear"),
	}

	itemClasses = []string{
		nativeClass("FGItemDescriptor"),
		nativeClass("FGResourceDescriptor"),
		nativeClass("FGItemDescriptorBiomass"),
		nativeClass("FGConsumableDescriptor"),
		nativeClass("FGItemDescriptorNuclearFuel"),
		nativeClass("FGEquipmentDescriptor"),
		nativeClass("FGAmmoTypeProjectile"),
		nativeClass("FGAmmoTypeInstantHit"),
		nativeClass("FGAmmoTypeSpreadshot"),
		nativeClass("FGPowerShardDescriptor"),
		nativeClass("FGItemDescriptorPowerBoosterFuel"),
	}
)

var generatorClassSet = func() map[string]bool {
	set := make(map[string]bool, len(generatorClasses))
	for _, tag := range generatorClasses {
		set[tag] = true
	}
	return set
}()
