package catalog

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Ayush-Kotlin-Dev/lostandfound/internal/models"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("item not found")

// Catalog is the in-memory item repository. It supplies candidate pools to the
// matcher and holds reported items for the lifetime of the process; nothing is
// persisted.
type Catalog struct {
	mu    sync.RWMutex
	items []models.Item
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

type ListParams struct {
	Status   models.Status
	Category string
	Query    string
	Limit    int
	Offset   int
}

type ListResult struct {
	Items  []models.Item `json:"items"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// Add stores an item, assigning an id and creation time when missing, and
// returns the stored record.
func (c *Catalog) Add(item models.Item) models.Item {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()

	return item
}

func (c *Catalog) Get(id string) (models.Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.Item{}, ErrNotFound
}

// List returns items newest-first, filtered by status, category and a
// case-insensitive title/description substring query.
func (c *Catalog) List(params ListParams) ListResult {
	c.mu.RLock()
	filtered := make([]models.Item, 0, len(c.items))
	q := strings.ToLower(strings.TrimSpace(params.Query))
	for _, item := range c.items {
		if params.Status != "" && item.Status != params.Status {
			continue
		}
		if params.Category != "" && item.Category != params.Category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(item.Title), q) &&
			!strings.Contains(strings.ToLower(item.Description), q) {
			continue
		}
		filtered = append(filtered, item)
	}
	c.mu.RUnlock()

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := len(filtered)

	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	filtered = filtered[offset:]

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit < len(filtered) {
		filtered = filtered[:limit]
	}

	return ListResult{Items: filtered, Total: total, Limit: limit, Offset: offset}
}

// All returns a copy of every stored item. Candidate searches take the full
// pool; the matcher filters to the opposite status itself.
func (c *Catalog) All() []models.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]models.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// StatusCounts tallies items per status for the stats endpoint.
func (c *Catalog) StatusCounts() map[models.Status]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	counts := make(map[models.Status]int)
	for _, item := range c.items {
		counts[item.Status]++
	}
	return counts
}

// CategoryCounts tallies items per category for the stats endpoint.
func (c *Catalog) CategoryCounts() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	counts := make(map[string]int)
	for _, item := range c.items {
		if item.Category != "" {
			counts[item.Category]++
		}
	}
	return counts
}
