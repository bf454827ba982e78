package extract

import (
	"docforge/internal/dump"
	"docforge/internal/gamedata"
)

// Items normalizes item descriptor records into the item table, keyed by
// source class identifier. Sink points only exist for solid items; fluids and
// gases cannot be sunk and get 0.
func Items(records []dump.ClassRecord) *gamedata.ItemTable {
	table := gamedata.NewItemTable()
	for _, record := range records {
		item := gamedata.Item{
			Name:   record.Str("mDisplayName"),
			Icon:   record.Str("mSmallIcon"),
			State:  gamedata.ItemState(record.Str("mForm")),
			Energy: record.Float("mEnergyValue"),
		}
		if item.State.Solid() {
			item.Sink = int(record.Float("mResourceSinkPoints"))
		}
		table.Add(record.Str("ClassName"), item)
	}
	return table
}
