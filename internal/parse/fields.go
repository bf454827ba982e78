package parse

import (
	"regexp"
	"strconv"
	"strings"

	"docforge/internal/gamedata"
)

// mProducedIn holds quoted dotted-path tokens, one per candidate building.
var producedInPattern = regexp.MustCompile(`"(?:.*?\.)(.*?)"`)

// Counted item lists look like (ItemClass=<path>'<token>'",Amount=<number>),
// repeated and comma-joined inside an outer parenthesis.
var countedItemPattern = regexp.MustCompile(`\(ItemClass=.*?\.([^.]*)'",Amount=([0-9.]+)\)`)

// ProducedIn resolves the single manufacturing building a recipe is produced
// in. Hand-held workbench/workshop entries are excluded from consideration.
// ok=false with a nil error means the recipe has no producible building and
// should be skipped by the caller.
func ProducedIn(recipeName, field string, buildings *gamedata.BuildingTable) (*gamedata.Building, bool, error) {
	var matches []string
	for _, m := range producedInPattern.FindAllStringSubmatch(field, -1) {
		token := m[1]
		if strings.Contains(token, "WorkBench") || strings.Contains(token, "Workshop") {
			continue
		}
		matches = append(matches, token)
	}

	if len(matches) == 0 {
		return nil, false, nil
	}
	if len(matches) > 1 {
		return nil, false, &AmbiguousBuildingError{Recipe: recipeName, Matches: matches}
	}
	building, ok := buildings.Get(matches[0])
	if !ok {
		return nil, false, &UnknownBuildingError{Recipe: recipeName, Building: matches[0]}
	}
	return building, true, nil
}

// CountedItems extracts the (item, amount) pairs of an ingredient or product
// field. Fluid and gas amounts arrive in milli-units and are converted to
// whole units here, exactly once; nothing downstream re-applies it.
func CountedItems(field string, items *gamedata.ItemTable) ([]gamedata.CountedItem, error) {
	var parsed []gamedata.CountedItem
	for _, m := range countedItemPattern.FindAllStringSubmatch(field, -1) {
		class := m[1]
		item, ok := items.Get(class)
		if !ok {
			return nil, &UnknownItemError{Item: class}
		}
		amount, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, gamedata.CountedItem{
			Name:   item.Name,
			Amount: NormalizeAmount(amount, item.State),
		})
	}
	return parsed, nil
}

// NormalizeAmount converts a raw docs quantity to whole units for the given
// physical state.
func NormalizeAmount(raw float64, state gamedata.ItemState) float64 {
	if state.Solid() {
		return raw
	}
	return raw / 1000.0
}
