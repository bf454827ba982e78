package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"docforge/internal/gamedata"
	"docforge/internal/render"
)

// catalogview is an interactive terminal browser for a catalog file. With
// -icon it instead prints one item's icon inline and exits.
func main() {
	var (
		catalogPath = flag.String("catalog", "satisfactory.json", "Catalog file to read")
		iconItem    = flag.String("icon", "", "Print this item's icon inline and exit")
	)
	flag.Parse()

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "catalogview requires a terminal")
		os.Exit(1)
	}

	catalog, err := gamedata.Load(*catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalogview: %v\n", err)
		os.Exit(1)
	}

	if *iconItem != "" {
		if err := printIcon(catalog, *catalogPath, *iconItem); err != nil {
			fmt.Fprintf(os.Stderr, "catalogview: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runBrowser(catalog); err != nil {
		fmt.Fprintf(os.Stderr, "catalogview: %v\n", err)
		os.Exit(1)
	}
}

// printIcon writes an item's icon to the terminal. Icon fields are relative
// to the catalog file's directory.
func printIcon(catalog *gamedata.Catalog, catalogPath, name string) error {
	for _, item := range catalog.Items {
		if item.Name != name {
			continue
		}
		if item.Icon == "" {
			return fmt.Errorf("item %q has no icon", name)
		}
		img, err := render.LoadPNG(filepath.Join(filepath.Dir(catalogPath), filepath.FromSlash(item.Icon)))
		if err != nil {
			return err
		}
		if err := render.WriteInline(os.Stdout, render.Scale(img, 256, 256)); err != nil {
			return err
		}
		fmt.Println()
		return nil
	}
	return fmt.Errorf("item %q not in catalog", name)
}
