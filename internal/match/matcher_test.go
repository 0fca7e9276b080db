package match

import (
	"math"
	"sort"
	"testing"

	"github.com/Ayush-Kotlin-Dev/lostandfound/internal/models"
)

func backpackItem(id string, status models.Status) models.Item {
	return models.Item{
		ID:          id,
		Title:       "Blue Backpack",
		Description: "Navy blue Jansport backpack with laptop sleeve",
		Category:    "accessories",
		Location:    "Library",
		Date:        "2024-01-10",
		Status:      status,
	}
}

func TestScore_IdenticalItems(t *testing.T) {
	lost := backpackItem("lost-1", models.StatusLost)
	found := backpackItem("found-1", models.StatusFound)

	result := Score(lost, found)

	// Identical locations sharing the "library" place token score 0.9, so the
	// aggregate lands at 0.985 rather than a flat 1.0.
	if !almostEqual(result.Score, 0.985) {
		t.Fatalf("expected score 0.985 for identical items, got %v", result.Score)
	}
	if result.MatchPercentage != 99 {
		t.Fatalf("expected 99%%, got %d", result.MatchPercentage)
	}
	if !result.IsHighPotentialMatch {
		t.Fatal("expected high potential match")
	}
	if result.Details.TitleMatch != 100 || result.Details.CategoryMatch != 100 {
		t.Fatalf("expected full per-field percentages, got %+v", result.Details)
	}
	if result.Details.LocationMatch != 90 {
		t.Fatalf("expected locationMatch 90 via place token, got %d", result.Details.LocationMatch)
	}
}

func TestScore_CategoryMismatchCapsScore(t *testing.T) {
	lost := backpackItem("lost-1", models.StatusLost)
	lost.Category = "electronics"
	found := backpackItem("found-1", models.StatusFound)
	found.Category = "clothing"

	result := Score(lost, found)

	if result.Details.CategoryMatch != 0 {
		t.Fatalf("expected categoryMatch 0, got %d", result.Details.CategoryMatch)
	}
	// Category carries weight 0.20, so zeroing it caps the aggregate at 0.80.
	if result.Score >= 0.80 {
		t.Fatalf("expected score below 0.80 with category zeroed, got %v", result.Score)
	}
}

func TestScore_InRangeAndPercentageConsistent(t *testing.T) {
	pairs := []struct {
		lost, found models.Item
	}{
		{backpackItem("a", models.StatusLost), backpackItem("b", models.StatusFound)},
		{models.Item{Title: "Umbrella"}, models.Item{Title: "Black Umbrella", Location: "Gym"}},
		{models.Item{}, models.Item{}},
		{models.Item{Date: "garbage"}, models.Item{Date: "2024-02-01", Category: "other"}},
	}

	for _, pair := range pairs {
		result := Score(pair.lost, pair.found)
		if result.Score < 0 || result.Score > 1 {
			t.Errorf("score %v out of [0,1]", result.Score)
		}
		if want := int(math.Round(result.Score * 100)); result.MatchPercentage != want {
			t.Errorf("matchPercentage %d inconsistent with score %v", result.MatchPercentage, result.Score)
		}
	}
}

func TestScore_MalformedDateDegradesToNeutral(t *testing.T) {
	lost := backpackItem("lost-1", models.StatusLost)
	lost.Date = "sometime last week"
	found := backpackItem("found-1", models.StatusFound)

	result := Score(lost, found)

	if result.Details.DateMatch != 50 {
		t.Fatalf("expected neutral dateMatch 50, got %d", result.Details.DateMatch)
	}
}

func TestFindPotentialMatches_PerfectCandidate(t *testing.T) {
	target := backpackItem("lost-1", models.StatusLost)
	pool := []models.Item{backpackItem("found-1", models.StatusFound)}

	matches := FindPotentialMatches(target, pool, models.StatusLost, DefaultThreshold)

	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if !almostEqual(matches[0].Score, 0.985) {
		t.Fatalf("expected score 0.985, got %v", matches[0].Score)
	}
	if !matches[0].IsHighPotentialMatch {
		t.Fatal("expected high potential match")
	}
	if matches[0].Item.ID != "found-1" {
		t.Fatalf("expected candidate found-1, got %s", matches[0].Item.ID)
	}
}

func TestFindPotentialMatches_OnlyOppositeStatus(t *testing.T) {
	target := backpackItem("lost-1", models.StatusLost)
	pool := []models.Item{
		backpackItem("lost-2", models.StatusLost),
		backpackItem("found-1", models.StatusFound),
		backpackItem("claimed-1", models.StatusClaimed),
		backpackItem("returned-1", models.StatusReturned),
	}

	matches := FindPotentialMatches(target, pool, models.StatusLost, 0)

	if len(matches) != 1 {
		t.Fatalf("expected only the found item, got %d matches", len(matches))
	}
	if matches[0].Item.Status != models.StatusFound {
		t.Fatalf("expected found candidate, got %s", matches[0].Item.Status)
	}
}

func TestFindPotentialMatches_FoundTargetSearchesLostPool(t *testing.T) {
	target := backpackItem("found-1", models.StatusFound)
	pool := []models.Item{
		backpackItem("lost-1", models.StatusLost),
		backpackItem("found-2", models.StatusFound),
	}

	matches := FindPotentialMatches(target, pool, models.StatusFound, DefaultThreshold)

	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Item.ID != "lost-1" {
		t.Fatalf("expected lost-1, got %s", matches[0].Item.ID)
	}
}

func TestFindPotentialMatches_ThresholdFilters(t *testing.T) {
	target := backpackItem("lost-1", models.StatusLost)
	weak := models.Item{
		ID:       "found-weak",
		Title:    "Red Umbrella",
		Category: "other",
		Status:   models.StatusFound,
	}
	pool := []models.Item{weak, backpackItem("found-strong", models.StatusFound)}

	matches := FindPotentialMatches(target, pool, models.StatusLost, 0.5)

	for _, m := range matches {
		if m.Score < 0.5 {
			t.Errorf("match %s below threshold: %v", m.Item.ID, m.Score)
		}
	}
	if len(matches) != 1 || matches[0].Item.ID != "found-strong" {
		t.Fatalf("expected only the strong candidate, got %+v", matches)
	}
}

func TestFindPotentialMatches_SortedBestFirst(t *testing.T) {
	target := backpackItem("lost-1", models.StatusLost)

	similar := backpackItem("found-similar", models.StatusFound)
	similar.Title = "Blue Backpak"

	different := backpackItem("found-different", models.StatusFound)
	different.Title = "Dark Blue Bag"
	different.Location = "Cafeteria"

	pool := []models.Item{different, similar, backpackItem("found-exact", models.StatusFound)}

	matches := FindPotentialMatches(target, pool, models.StatusLost, 0)

	if !sort.SliceIsSorted(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	}) {
		t.Fatalf("matches not sorted by descending score: %+v", matches)
	}
	if matches[0].Item.ID != "found-exact" {
		t.Fatalf("expected exact candidate first, got %s", matches[0].Item.ID)
	}
}

func TestFindPotentialMatches_TieBreaksByID(t *testing.T) {
	target := backpackItem("lost-1", models.StatusLost)
	pool := []models.Item{
		backpackItem("found-b", models.StatusFound),
		backpackItem("found-a", models.StatusFound),
	}

	matches := FindPotentialMatches(target, pool, models.StatusLost, 0)

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Item.ID != "found-a" || matches[1].Item.ID != "found-b" {
		t.Fatalf("expected tie broken by id ascending, got %s, %s", matches[0].Item.ID, matches[1].Item.ID)
	}
}

func TestFindPotentialMatches_EmptyPool(t *testing.T) {
	target := backpackItem("lost-1", models.StatusLost)

	matches := FindPotentialMatches(target, nil, models.StatusLost, DefaultThreshold)

	if len(matches) != 0 {
		t.Fatalf("expected no matches for empty pool, got %d", len(matches))
	}
}

// The search does not exclude the target's own id: an item present in the pool
// with the opposite status (say, after a status flip) will match itself.
// Callers own de-duplication.
func TestFindPotentialMatches_NoSelfExclusionByID(t *testing.T) {
	target := backpackItem("item-1", models.StatusLost)
	flipped := backpackItem("item-1", models.StatusFound)

	matches := FindPotentialMatches(target, []models.Item{flipped}, models.StatusLost, DefaultThreshold)

	if len(matches) != 1 || matches[0].Item.ID != "item-1" {
		t.Fatalf("expected the flipped duplicate to self-match, got %+v", matches)
	}
}
