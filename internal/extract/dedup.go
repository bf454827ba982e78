package extract

import (
	"fmt"

	"docforge/internal/gamedata"
)

// DeduplicateNames makes recipe display names globally unique. The first
// occurrence of a name keeps it; later occurrences get a parenthesized
// discriminator, so the second "Pure Iron Ingot" becomes "Pure Iron Ingot (1)".
// Walk order is the list's construction order.
func DeduplicateNames(recipes *gamedata.RecipeList) {
	seen := make(map[string]int)
	recipes.Each(func(r *gamedata.Recipe) {
		n := seen[r.Name]
		seen[r.Name] = n + 1
		if n > 0 {
			r.Name = fmt.Sprintf("%s (%d)", r.Name, n)
		}
	})
}
