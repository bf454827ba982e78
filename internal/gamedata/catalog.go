package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// fileItem is the catalog-file projection of an Item.
type fileItem struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	Sink int    `json:"sink"`
}

// fileCatalog is the on-disk shape of the catalog document.
type fileCatalog struct {
	Version   string     `json:"version"`
	Buildings []Building `json:"buildings"`
	Items     []fileItem `json:"items"`
	Recipes   []Recipe   `json:"recipes"`
}

// Save writes the catalog as a JSON document. The version field is left for
// manual editing after extraction. Nothing is written if encoding fails, so a
// failed run never produces a partial file.
func (c *Catalog) Save(path string) error {
	doc := fileCatalog{
		Version:   c.Version,
		Buildings: c.Buildings,
		Items:     make([]fileItem, 0, len(c.Items)),
		Recipes:   c.Recipes,
	}
	for _, item := range c.Items {
		doc.Items = append(doc.Items, fileItem{Name: item.Name, Icon: item.Icon, Sink: item.Sink})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}

// Load reads a catalog file back into the model. Items carry only the fields
// the file stores; state and energy are pipeline-internal and not round-tripped.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var doc fileCatalog
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", path, err)
	}

	catalog := &Catalog{
		Version:   doc.Version,
		Buildings: doc.Buildings,
		Recipes:   doc.Recipes,
	}
	for _, item := range doc.Items {
		catalog.Items = append(catalog.Items, Item{Name: item.Name, Icon: item.Icon, Sink: item.Sink})
	}
	return catalog, nil
}
