package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Ayush-Kotlin-Dev/lostandfound/internal/catalog"
	"github.com/Ayush-Kotlin-Dev/lostandfound/internal/match"
	"github.com/Ayush-Kotlin-Dev/lostandfound/internal/models"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	itemsPath := flag.String("items", "fixtures/items.yaml", "path to the items fixture file")
	targetID := flag.String("id", "", "scan a single item id instead of every lost item")
	threshold := flag.Float64("threshold", match.DefaultThreshold, "minimum match score")
	flag.Parse()

	items, err := catalog.LoadItems(*itemsPath)
	if err != nil {
		log.Fatal(err)
	}

	cat := catalog.NewCatalog()
	for _, item := range items {
		cat.Add(item)
	}

	var targets []models.Item
	if *targetID != "" {
		item, err := cat.Get(*targetID)
		if err != nil {
			log.Fatalf("item %s: %v", *targetID, err)
		}
		if !item.Status.Matchable() {
			log.Fatalf("item %s has status %s and cannot be matched", item.ID, item.Status)
		}
		targets = append(targets, item)
	} else {
		targets = cat.List(catalog.ListParams{Status: models.StatusLost, Limit: 100}).Items
	}

	pool := cat.All()
	for _, target := range targets {
		matches := match.FindPotentialMatches(target, pool, target.Status, *threshold)

		fmt.Printf("\n%s %q (%s, %s) — %d candidate(s) at threshold %.2f\n",
			target.Status, target.Title, target.Category, target.Location, len(matches), *threshold)
		if len(matches) == 0 {
			continue
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Match %", "High", "Title", "Location", "Date", "Title %", "Desc %", "Cat %", "Loc %", "Date %"})
		for _, m := range matches {
			t.AppendRow(table.Row{
				m.MatchPercentage,
				m.IsHighPotentialMatch,
				m.Item.Title,
				m.Item.Location,
				m.Item.Date,
				m.Details.TitleMatch,
				m.Details.DescriptionMatch,
				m.Details.CategoryMatch,
				m.Details.LocationMatch,
				m.Details.DateMatch,
			})
		}
		t.Render()
	}
}
