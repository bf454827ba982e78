package gamedata

// BuildingTable holds buildings keyed by their source class identifier while
// preserving insertion order. The class key only exists during pipeline
// processing; the catalog file exposes buildings by name.
type BuildingTable struct {
	order   []string
	byClass map[string]*Building
}

func NewBuildingTable() *BuildingTable {
	return &BuildingTable{byClass: make(map[string]*Building)}
}

func (t *BuildingTable) Add(class string, b Building) {
	if _, exists := t.byClass[class]; !exists {
		t.order = append(t.order, class)
	}
	copied := b
	t.byClass[class] = &copied
}

func (t *BuildingTable) Get(class string) (*Building, bool) {
	b, ok := t.byClass[class]
	return b, ok
}

func (t *BuildingTable) Len() int {
	return len(t.order)
}

// Buildings returns all buildings in insertion order.
func (t *BuildingTable) Buildings() []Building {
	out := make([]Building, 0, len(t.order))
	for _, class := range t.order {
		out = append(out, *t.byClass[class])
	}
	return out
}

// ItemTable holds items keyed by their source class identifier in insertion
// order. Items stay in the table for the whole run; the icon resolver marks
// unused ones as excluded so the usage scan can see the full catalog first.
type ItemTable struct {
	order    []string
	byClass  map[string]*Item
	excluded map[string]bool
}

func NewItemTable() *ItemTable {
	return &ItemTable{
		byClass:  make(map[string]*Item),
		excluded: make(map[string]bool),
	}
}

func (t *ItemTable) Add(class string, i Item) {
	if _, exists := t.byClass[class]; !exists {
		t.order = append(t.order, class)
	}
	copied := i
	t.byClass[class] = &copied
}

func (t *ItemTable) Get(class string) (*Item, bool) {
	i, ok := t.byClass[class]
	return i, ok
}

func (t *ItemTable) Len() int {
	return len(t.order)
}

// Exclude marks an item as absent from the final catalog.
func (t *ItemTable) Exclude(class string) {
	t.excluded[class] = true
}

func (t *ItemTable) Excluded(class string) bool {
	return t.excluded[class]
}

// Each visits every item in insertion order, excluded or not.
func (t *ItemTable) Each(fn func(class string, item *Item)) {
	for _, class := range t.order {
		fn(class, t.byClass[class])
	}
}

// Items returns the non-excluded items in insertion order.
func (t *ItemTable) Items() []Item {
	out := make([]Item, 0, len(t.order))
	for _, class := range t.order {
		if t.excluded[class] {
			continue
		}
		out = append(out, *t.byClass[class])
	}
	return out
}
