package extract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"docforge/internal/gamedata"
)

func TestDeduplicateNames(t *testing.T) {
	recipes := gamedata.NewRecipeList()
	for i, name := range []string{"Pure Iron Ingot", "Iron Plate", "Pure Iron Ingot", "Pure Iron Ingot"} {
		recipes.Add(fmt.Sprintf("Recipe_%d_C", i), gamedata.Recipe{Name: name})
	}

	DeduplicateNames(recipes)

	var names []string
	recipes.Each(func(r *gamedata.Recipe) {
		names = append(names, r.Name)
	})
	assert.Equal(t, []string{"Pure Iron Ingot", "Iron Plate", "Pure Iron Ingot (1)", "Pure Iron Ingot (2)"}, names)
}

func TestDeduplicateNamesIsStable(t *testing.T) {
	build := func() *gamedata.RecipeList {
		recipes := gamedata.NewRecipeList()
		recipes.Add("a", gamedata.Recipe{Name: "Power (Coal)"})
		recipes.Add("b", gamedata.Recipe{Name: "Power (Coal)"})
		return recipes
	}

	first := build()
	second := build()
	DeduplicateNames(first)
	DeduplicateNames(second)
	assert.Equal(t, first.Recipes(), second.Recipes())
}
