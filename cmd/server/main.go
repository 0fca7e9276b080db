package main

import (
	"log"
	"os"

	"github.com/Ayush-Kotlin-Dev/lostandfound/internal/api"
	"github.com/Ayush-Kotlin-Dev/lostandfound/internal/catalog"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	registry, err := catalog.LoadRegistry()
	if err != nil {
		log.Fatalf("Failed to load category registry: %v", err)
	}

	cat := catalog.NewCatalog()
	if path := os.Getenv("ITEMS_FILE"); path != "" {
		items, err := catalog.LoadItems(path)
		if err != nil {
			log.Fatalf("Failed to load items from %s: %v", path, err)
		}
		for _, item := range items {
			cat.Add(item)
		}
		log.Printf("Preloaded %d items from %s", len(items), path)
	}

	srv := api.NewServer(cat, registry)
	log.Printf("Server starting on port %s...", port)
	if err := srv.Start(port); err != nil {
		log.Fatal(err)
	}
}
