package gamedata

// RecipeList holds recipes in construction order, keyed by a synthetic
// composite key (source recipe class, or generator+fuel class for synthesized
// power recipes) so the two kinds can never collide. Construction order is
// part of the contract: name deduplication depends on it.
type RecipeList struct {
	order []string
	byKey map[string]*Recipe
}

func NewRecipeList() *RecipeList {
	return &RecipeList{byKey: make(map[string]*Recipe)}
}

func (l *RecipeList) Add(key string, r Recipe) {
	if _, exists := l.byKey[key]; !exists {
		l.order = append(l.order, key)
	}
	copied := r
	l.byKey[key] = &copied
}

func (l *RecipeList) Get(key string) (*Recipe, bool) {
	r, ok := l.byKey[key]
	return r, ok
}

func (l *RecipeList) Len() int {
	return len(l.order)
}

// Each visits recipes in construction order. The pointer may be mutated;
// recipes stay mutable until the catalog is frozen for serialization.
func (l *RecipeList) Each(fn func(r *Recipe)) {
	for _, key := range l.order {
		fn(l.byKey[key])
	}
}

// Recipes returns the recipes in construction order.
func (l *RecipeList) Recipes() []Recipe {
	out := make([]Recipe, 0, len(l.order))
	for _, key := range l.order {
		out = append(out, *l.byKey[key])
	}
	return out
}
