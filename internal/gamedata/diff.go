package gamedata

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
)

// CollectionDiff reports the per-collection differences between two catalog
// snapshots, keyed by entity name. Changed means the name exists in both
// files but any field differs.
type CollectionDiff struct {
	Collection string
	Removed    []string
	Added      []string
	Changed    []string
}

var diffCollections = []string{"buildings", "items", "recipes"}

// DiffFiles compares two catalog files collection by collection. It works on
// the raw JSON objects rather than the model so that any field difference is
// caught, including fields added by a later schema.
func DiffFiles(oldPath, newPath string) ([]CollectionDiff, error) {
	oldDoc, err := loadRaw(oldPath)
	if err != nil {
		return nil, err
	}
	newDoc, err := loadRaw(newPath)
	if err != nil {
		return nil, err
	}

	diffs := make([]CollectionDiff, 0, len(diffCollections))
	for _, collection := range diffCollections {
		diffs = append(diffs, diffCollection(collection, oldDoc[collection], newDoc[collection]))
	}
	return diffs, nil
}

func loadRaw(path string) (map[string][]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var doc struct {
		Buildings []map[string]any `json:"buildings"`
		Items     []map[string]any `json:"items"`
		Recipes   []map[string]any `json:"recipes"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", path, err)
	}
	return map[string][]map[string]any{
		"buildings": doc.Buildings,
		"items":     doc.Items,
		"recipes":   doc.Recipes,
	}, nil
}

func diffCollection(collection string, oldEntities, newEntities []map[string]any) CollectionDiff {
	diff := CollectionDiff{Collection: collection}

	newByName := make(map[string]map[string]any, len(newEntities))
	for _, entity := range newEntities {
		newByName[entityName(entity)] = entity
	}
	oldByName := make(map[string]map[string]any, len(oldEntities))
	for _, entity := range oldEntities {
		oldByName[entityName(entity)] = entity
	}

	for _, entity := range oldEntities {
		name := entityName(entity)
		matched, ok := newByName[name]
		if !ok {
			diff.Removed = append(diff.Removed, name)
		} else if !reflect.DeepEqual(entity, matched) {
			diff.Changed = append(diff.Changed, name)
		}
	}
	for _, entity := range newEntities {
		name := entityName(entity)
		if _, ok := oldByName[name]; !ok {
			diff.Added = append(diff.Added, name)
		}
	}
	return diff
}

func entityName(entity map[string]any) string {
	name, _ := entity["name"].(string)
	return name
}
