package icons

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"docforge/internal/gamedata"
	"docforge/internal/log"
)

// The docs declare icons as texture object paths under this prefix; the
// on-disk asset tree starts below it.
const texturePathPrefix = "Texture2D /Game/"

// The power-boost marker icon is referenced by the planner UI itself, not by
// any recipe, so it is copied regardless of usage.
const powerBoostIcon = "FactoryGame/Prototype/WAT/UI/Wat_1_64.png"

// Resolve locates the smallest-resolution icon file for every item used by a
// recipe, copies it into outDir and rewrites the item's icon field to the new
// relative location. Items no recipe references are marked excluded; a
// missing icon file only costs a warning and an empty icon field.
func Resolve(items *gamedata.ItemTable, recipes []gamedata.Recipe, assetsDir, outDir string) error {
	if err := os.RemoveAll(outDir); err != nil {
		return fmt.Errorf("clearing icon directory: %w", err)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating icon directory: %w", err)
	}

	used := usedItemNames(recipes)

	var resolveErr error
	items.Each(func(class string, item *gamedata.Item) {
		if resolveErr != nil {
			return
		}
		if !used[item.Name] {
			items.Exclude(class)
			return
		}

		file, ok := smallestIcon(assetsDir, item.Icon)
		if !ok {
			log.Warn("icon file not found", "item", item.Name, "icon", item.Icon)
			item.Icon = ""
			return
		}
		if err := copyFile(file, filepath.Join(outDir, filepath.Base(file))); err != nil {
			resolveErr = err
			return
		}
		item.Icon = "icons/" + filepath.Base(file)
	})
	if resolveErr != nil {
		return resolveErr
	}

	marker := filepath.Join(assetsDir, filepath.FromSlash(powerBoostIcon))
	if err := copyFile(marker, filepath.Join(outDir, filepath.Base(marker))); err != nil {
		log.Warn("power-boost icon not copied", "path", marker, "error", err)
	}
	return nil
}

func usedItemNames(recipes []gamedata.Recipe) map[string]bool {
	used := make(map[string]bool)
	for _, recipe := range recipes {
		for _, item := range recipe.Inputs {
			used[item.Name] = true
		}
		for _, item := range recipe.Outputs {
			used[item.Name] = true
		}
	}
	return used
}

// smallestIcon picks the lowest-resolution variant of the declared icon among
// files in the same folder sharing its naming prefix. Equal resolutions are
// broken by lexicographic filename order so the choice is deterministic.
func smallestIcon(assetsDir, texturePath string) (string, bool) {
	relative := filepath.FromSlash(strings.TrimPrefix(texturePath, texturePathPrefix))
	folder := filepath.Join(assetsDir, filepath.Dir(relative))

	// "IconDesc_IronIngot_256.IconDesc_IronIngot_256" -> stem, prefix, resolution
	stem, _, _ := strings.Cut(filepath.Base(relative), ".")
	prefix, resToken := splitResolution(stem)

	bestFile := stem + ".png"
	bestRes := 1 << 30
	if resToken != "" {
		bestRes, _ = strconv.Atoi(resToken)
	}

	entries, err := os.ReadDir(folder)
	if err == nil {
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasPrefix(name, prefix) {
				continue
			}
			res, ok := fileResolution(name)
			if !ok {
				continue
			}
			if res < bestRes || (res == bestRes && name < bestFile) {
				bestRes = res
				bestFile = name
			}
		}
	}

	path := filepath.Join(folder, bestFile)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// splitResolution peels the trailing _<number> token off an icon object name.
func splitResolution(stem string) (prefix, res string) {
	idx := strings.LastIndex(stem, "_")
	if idx < 0 {
		return stem, ""
	}
	tail := stem[idx+1:]
	if _, err := strconv.Atoi(tail); err != nil {
		return stem, ""
	}
	return stem[:idx], tail
}

// fileResolution extracts the first numeric underscore-separated token of a
// candidate filename, extension stripped.
func fileResolution(name string) (int, bool) {
	stem, _, _ := strings.Cut(name, ".")
	for _, token := range strings.Split(stem, "_") {
		if res, err := strconv.Atoi(token); err == nil {
			return res, true
		}
	}
	return 0, false
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}
