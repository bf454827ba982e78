package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"docforge/internal/gamedata"
)

// browser holds the tview widgets for the three catalog collections.
type browser struct {
	app     *tview.Application
	catalog *gamedata.Catalog
	list    *tview.List
	detail  *tview.TextView
	section string
}

func runBrowser(catalog *gamedata.Catalog) error {
	b := &browser{
		app:     tview.NewApplication(),
		catalog: catalog,
		list:    tview.NewList().ShowSecondaryText(false),
		detail:  tview.NewTextView().SetDynamicColors(true).SetWrap(true),
	}
	b.list.SetBorder(true)
	b.detail.SetBorder(true).SetTitle("Detail")

	status := tview.NewTextView().
		SetText(" [b] buildings  [i] items  [r] recipes  [q] quit").
		SetTextColor(tcell.ColorYellow)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewFlex().
			AddItem(b.list, 0, 1, true).
			AddItem(b.detail, 0, 2, false), 0, 1, true).
		AddItem(status, 1, 0, false)

	b.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'b':
			b.showSection("buildings")
			return nil
		case 'i':
			b.showSection("items")
			return nil
		case 'r':
			b.showSection("recipes")
			return nil
		case 'q':
			b.app.Stop()
			return nil
		}
		return event
	})

	b.showSection("recipes")
	return b.app.SetRoot(layout, true).Run()
}

func (b *browser) showSection(section string) {
	b.section = section
	b.list.Clear()
	b.list.SetTitle(" " + section + " ")

	switch section {
	case "buildings":
		for _, building := range b.catalog.Buildings {
			b.list.AddItem(building.Name, "", 0, nil)
		}
	case "items":
		for _, item := range b.catalog.Items {
			b.list.AddItem(item.Name, "", 0, nil)
		}
	case "recipes":
		for _, recipe := range b.catalog.Recipes {
			b.list.AddItem(recipe.Name, "", 0, nil)
		}
	}

	b.list.SetChangedFunc(func(index int, _, _ string, _ rune) {
		b.showDetail(index)
	})
	if b.list.GetItemCount() > 0 {
		b.list.SetCurrentItem(0)
		b.showDetail(0)
	} else {
		b.detail.SetText("")
	}
}

func (b *browser) showDetail(index int) {
	var text string
	switch b.section {
	case "buildings":
		if index < len(b.catalog.Buildings) {
			text = buildingDetail(b.catalog.Buildings[index])
		}
	case "items":
		if index < len(b.catalog.Items) {
			text = itemDetail(b.catalog.Items[index])
		}
	case "recipes":
		if index < len(b.catalog.Recipes) {
			text = recipeDetail(b.catalog.Recipes[index])
		}
	}
	b.detail.SetText(text)
}

func buildingDetail(building gamedata.Building) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[yellow]%s[-]\n\n", building.Name)
	fmt.Fprintf(&sb, "Power: %g MW\n", building.Power)
	fmt.Fprintf(&sb, "Power exponent: %g\n", building.PowerExponent)
	fmt.Fprintf(&sb, "Somersloop multiplier: %g\n", building.SomersloopMult)
	fmt.Fprintf(&sb, "Somersloop power exponent: %g\n", building.SomersloopPowerExponent)
	fmt.Fprintf(&sb, "Variable power: %v\n", building.VariablePower)
	return sb.String()
}

func itemDetail(item gamedata.Item) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[yellow]%s[-]\n\n", item.Name)
	fmt.Fprintf(&sb, "Icon: %s\n", item.Icon)
	fmt.Fprintf(&sb, "Sink points: %d\n", item.Sink)
	return sb.String()
}

func recipeDetail(recipe gamedata.Recipe) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[yellow]%s[-]\n\n", recipe.Name)
	fmt.Fprintf(&sb, "Building: %s\n", recipe.Building)
	fmt.Fprintf(&sb, "Time: %s s\n", recipe.Time.String())
	fmt.Fprintf(&sb, "Alternate: %v\n", recipe.Alternate)
	if recipe.PowerConstant != nil && recipe.PowerRange != nil {
		fmt.Fprintf(&sb, "Variable power: %g + %g\n", *recipe.PowerConstant, *recipe.PowerRange)
	}
	sb.WriteString("\nInputs:\n")
	for _, input := range recipe.Inputs {
		fmt.Fprintf(&sb, "  %g x %s\n", input.Amount, input.Name)
	}
	sb.WriteString("Outputs:\n")
	for _, output := range recipe.Outputs {
		fmt.Fprintf(&sb, "  %g x %s\n", output.Amount, output.Name)
	}
	return sb.String()
}
