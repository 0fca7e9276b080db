package catalog

import (
	"embed"
	"fmt"

	"github.com/Ayush-Kotlin-Dev/lostandfound/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed config/categories.yaml
var categoriesYAML embed.FS

// Registry holds the closed set of categories items can be filed under.
// The matcher treats category ids as opaque; the registry only answers
// membership and label lookups.
type Registry struct {
	Categories []models.Category `yaml:"categories"`
}

func LoadRegistry() (*Registry, error) {
	data, err := categoriesYAML.ReadFile("config/categories.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded categories: %w", err)
	}

	var r Registry
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse categories config: %w", err)
	}
	if len(r.Categories) == 0 {
		return nil, fmt.Errorf("categories config is empty")
	}

	return &r, nil
}

// Valid reports whether id belongs to the registry.
func (r *Registry) Valid(id string) bool {
	for _, c := range r.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Label returns the display label for a category id, or the id itself when
// unknown.
func (r *Registry) Label(id string) string {
	for _, c := range r.Categories {
		if c.ID == id {
			return c.Label
		}
	}
	return id
}
