package extract

import (
	"docforge/internal/dump"
	"docforge/internal/gamedata"
	"docforge/internal/icons"
	"docforge/internal/log"
)

// Config locates the inputs and outputs of one extraction run.
type Config struct {
	DocsPath  string // docs file exported by the game
	AssetsDir string // root of the unpacked texture tree
	OutPath   string // catalog file to write
	IconsDir  string // flat directory receiving icon copies
}

// Run executes one full extraction pass: filter the class catalog, normalize
// buildings/items/recipes, synthesize power recipes, deduplicate names,
// resolve icons, write the catalog. The first fatal error aborts the run
// before the catalog file is touched.
func Run(cfg Config) (*gamedata.Catalog, error) {
	groups, err := dump.Load(cfg.DocsPath)
	if err != nil {
		return nil, err
	}
	log.Info("docs loaded", "path", cfg.DocsPath, "classGroups", len(groups))

	phases, err := Normalize(groups)
	if err != nil {
		return nil, err
	}

	if err := icons.Resolve(phases.Items, phases.Recipes.Recipes(), cfg.AssetsDir, cfg.IconsDir); err != nil {
		return nil, err
	}

	result := &gamedata.Catalog{
		Buildings: phases.Buildings.Buildings(),
		Items:     phases.Items.Items(),
		Recipes:   phases.Recipes.Recipes(),
	}
	log.Info("catalog normalized",
		"buildings", len(result.Buildings),
		"items", len(result.Items),
		"recipes", len(result.Recipes))

	if err := result.Save(cfg.OutPath); err != nil {
		return nil, err
	}
	log.Info("catalog written", "path", cfg.OutPath, "note", "version field left for manual edit")
	return result, nil
}

// Normalized carries the phase outputs between Normalize and the icon phase.
type Normalized struct {
	Buildings *gamedata.BuildingTable
	Items     *gamedata.ItemTable
	Recipes   *gamedata.RecipeList
}

// Normalize runs the in-memory phases in dependency order: buildings and
// items first, recipes against both, then power synthesis and deduplication.
func Normalize(groups []dump.ClassGroup) (*Normalized, error) {
	buildingRecords, err := dump.Filter(groups, append(append([]string{}, manufacturerClasses...), generatorClasses...))
	if err != nil {
		return nil, err
	}
	buildings := Buildings(buildingRecords)

	itemRecords, err := dump.Filter(groups, itemClasses)
	if err != nil {
		return nil, err
	}
	items := Items(itemRecords)

	recipeRecords, err := dump.Filter(groups, recipeClasses)
	if err != nil {
		return nil, err
	}
	recipes, err := Recipes(recipeRecords, buildings, items)
	if err != nil {
		return nil, err
	}

	generatorRecords, err := dump.Filter(groups, generatorClasses)
	if err != nil {
		return nil, err
	}
	if err := SynthesizePower(generatorRecords, buildings, items, recipes); err != nil {
		return nil, err
	}

	DeduplicateNames(recipes)

	return &Normalized{
		Buildings: buildings,
		Items:     items,
		Recipes:   recipes,
	}, nil
}
