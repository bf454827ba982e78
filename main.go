package main

import (
	"flag"
	"fmt"
	"os"

	"docforge/internal/extract"
	"docforge/internal/log"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		docsPath  = flag.String("docs", "Docs.json", "Path to the docs file exported by the game")
		assetsDir = flag.String("assets", ".", "Root of the unpacked texture asset tree")
		outPath   = flag.String("out", "satisfactory.json", "Catalog file to write")
		iconsDir  = flag.String("icons", "icons", "Directory receiving the icon copies")
		logFile   = flag.String("log", "", "Optional log file (defaults to stdout)")
		showVer   = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVer {
		fmt.Printf("docforge %s (%s, %s)\n", version, commit, date)
		return
	}

	if *logFile != "" {
		if err := log.SetFileOutput(*logFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not configure logging to file: %v\n", err)
		}
		defer log.Close()
	}

	_, err := extract.Run(extract.Config{
		DocsPath:  *docsPath,
		AssetsDir: *assetsDir,
		OutPath:   *outPath,
		IconsDir:  *iconsDir,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Extraction failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done! Don't forget to update the version field in the catalog file.")
}
