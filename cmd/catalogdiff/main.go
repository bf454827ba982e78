package main

import (
	"flag"
	"fmt"
	"os"

	"docforge/internal/gamedata"
)

// catalogdiff reports the entities added, removed or changed between two
// catalog snapshots, per collection.
func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <old-catalog.json> <new-catalog.json>\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	diffs, err := gamedata.DiffFiles(flag.Arg(0), flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Diff failed: %v\n", err)
		os.Exit(1)
	}

	titles := map[string]string{
		"buildings": "Buildings",
		"items":     "Items",
		"recipes":   "Recipes",
	}
	for _, diff := range diffs {
		fmt.Printf("%s:\n", titles[diff.Collection])
		printNames("Removed", diff.Removed)
		printNames("Added", diff.Added)
		printNames("Changed", diff.Changed)
	}
}

func printNames(header string, names []string) {
	fmt.Printf("\t%s:\n", header)
	for _, name := range names {
		fmt.Printf("\t\t%s\n", name)
	}
}
