package gamedata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDiffFiles(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeCatalog(t, dir, "old.json", `{
		"version": "1.0",
		"buildings": [{"name": "Smelter", "power": 4}],
		"items": [
			{"name": "Iron Ingot", "icon": "a.png", "sink": 2},
			{"name": "Screw", "icon": "b.png", "sink": 1}
		],
		"recipes": [{"name": "Iron Ingot", "time": 2}]
	}`)
	newPath := writeCatalog(t, dir, "new.json", `{
		"version": "1.1",
		"buildings": [{"name": "Smelter", "power": 4}],
		"items": [
			{"name": "Iron Ingot", "icon": "a.png", "sink": 3},
			{"name": "Copper Ingot", "icon": "c.png", "sink": 2}
		],
		"recipes": [{"name": "Iron Ingot", "time": 2}]
	}`)

	diffs, err := DiffFiles(oldPath, newPath)
	require.NoError(t, err)
	require.Len(t, diffs, 3)

	byCollection := make(map[string]CollectionDiff)
	for _, d := range diffs {
		byCollection[d.Collection] = d
	}

	buildings := byCollection["buildings"]
	assert.Empty(t, buildings.Added)
	assert.Empty(t, buildings.Removed)
	assert.Empty(t, buildings.Changed)

	items := byCollection["items"]
	assert.Equal(t, []string{"Screw"}, items.Removed)
	assert.Equal(t, []string{"Copper Ingot"}, items.Added)
	assert.Equal(t, []string{"Iron Ingot"}, items.Changed)

	recipes := byCollection["recipes"]
	assert.Empty(t, recipes.Added)
	assert.Empty(t, recipes.Removed)
	assert.Empty(t, recipes.Changed)
}

func TestDiffFilesMissingFile(t *testing.T) {
	_, err := DiffFiles(filepath.Join(t.TempDir(), "nope.json"), filepath.Join(t.TempDir(), "also-nope.json"))
	assert.Error(t, err)
}
