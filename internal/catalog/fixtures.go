package catalog

import (
	"fmt"
	"os"

	"github.com/Ayush-Kotlin-Dev/lostandfound/internal/models"
	"gopkg.in/yaml.v3"
)

type itemFixture struct {
	ID            string `yaml:"id"`
	Title         string `yaml:"title"`
	Description   string `yaml:"description"`
	Category      string `yaml:"category"`
	Location      string `yaml:"location"`
	Date          string `yaml:"date"`
	Status        string `yaml:"status"`
	ReporterName  string `yaml:"reporter_name"`
	ReporterEmail string `yaml:"reporter_email"`
}

type fixtureFile struct {
	Items []itemFixture `yaml:"items"`
}

// LoadItems reads item records from a YAML fixture file. Records with an
// unknown status are rejected; ids are left empty for the catalog to assign.
func LoadItems(path string) ([]models.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}

	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse items file: %w", err)
	}

	items := make([]models.Item, 0, len(f.Items))
	for i, fx := range f.Items {
		status := models.ParseStatus(fx.Status)
		if status == "" {
			return nil, fmt.Errorf("item %d (%q): unknown status %q", i, fx.Title, fx.Status)
		}
		items = append(items, models.Item{
			ID:            fx.ID,
			Title:         fx.Title,
			Description:   fx.Description,
			Category:      fx.Category,
			Location:      fx.Location,
			Date:          fx.Date,
			Status:        status,
			ReporterName:  fx.ReporterName,
			ReporterEmail: fx.ReporterEmail,
		})
	}

	return items, nil
}
