package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/goccy/go-graphviz"

	"docforge/internal/gamedata"
	"docforge/internal/graphview"
)

// recipegraph writes the production graph of a catalog as DOT, optionally
// rendered to PNG, optionally restricted to what is reachable from one item.
func main() {
	var (
		catalogPath = flag.String("catalog", "satisfactory.json", "Catalog file to read")
		fromItem    = flag.String("from", "", "Restrict to the subgraph reachable from this item")
		dotPath     = flag.String("dot", "", "DOT output file (stdout if empty)")
		pngPath     = flag.String("png", "", "Also render a PNG to this path")
	)
	flag.Parse()

	if err := run(*catalogPath, *fromItem, *dotPath, *pngPath); err != nil {
		fmt.Fprintf(os.Stderr, "recipegraph: %v\n", err)
		os.Exit(1)
	}
}

func run(catalogPath, fromItem, dotPath, pngPath string) error {
	catalog, err := gamedata.Load(catalogPath)
	if err != nil {
		return err
	}

	g, err := graphview.Build(catalog)
	if err != nil {
		return err
	}
	if fromItem != "" {
		g, err = graphview.Reachable(g, fromItem)
		if err != nil {
			return err
		}
	}

	var dot bytes.Buffer
	if err := graphview.WriteDOT(g, &dot); err != nil {
		return err
	}

	if dotPath == "" {
		if _, err := os.Stdout.Write(dot.Bytes()); err != nil {
			return err
		}
	} else if err := os.WriteFile(dotPath, dot.Bytes(), 0644); err != nil {
		return err
	}

	if pngPath != "" {
		return renderPNG(dot.Bytes(), pngPath)
	}
	return nil
}

func renderPNG(dot []byte, path string) error {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("creating graphviz instance: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes(dot)
	if err != nil {
		return fmt.Errorf("parsing DOT: %w", err)
	}
	defer parsed.Close()

	if err := gv.RenderFilename(ctx, parsed, graphviz.PNG, path); err != nil {
		return fmt.Errorf("rendering PNG: %w", err)
	}
	return nil
}
