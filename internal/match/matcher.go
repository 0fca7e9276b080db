package match

import (
	"math"
	"sort"

	"github.com/Ayush-Kotlin-Dev/lostandfound/internal/models"
)

// Weights for combining the per-field scores. They must sum to exactly 1.0 so
// the aggregate stays in [0,1].
const (
	weightTitle       = 0.30
	weightDescription = 0.25
	weightCategory    = 0.20
	weightLocation    = 0.15
	weightDate        = 0.10
)

// DefaultThreshold is the minimum aggregate score a candidate needs to be
// returned from a search when the caller doesn't supply one.
const DefaultThreshold = 0.5

// highPotentialThreshold is the aggregate score above which a pairing is
// flagged as a strong-confidence match.
const highPotentialThreshold = 0.70

// Details breaks the aggregate down per field, each independently rounded to a
// whole percentage. The rounded parts need not sum to the rounded aggregate.
type Details struct {
	TitleMatch       int `json:"titleMatch"`
	DescriptionMatch int `json:"descriptionMatch"`
	CategoryMatch    int `json:"categoryMatch"`
	LocationMatch    int `json:"locationMatch"`
	DateMatch        int `json:"dateMatch"`
}

// Result is the outcome of scoring one lost item against one found item.
type Result struct {
	Score                float64 `json:"score"`
	MatchPercentage      int     `json:"matchPercentage"`
	Details              Details `json:"details"`
	IsHighPotentialMatch bool    `json:"isHighPotentialMatch"`
}

// Match pairs a candidate item with its scoring result.
type Match struct {
	Item models.Item `json:"item"`
	Result
}

// Score computes the weighted aggregate match score between a lost and a
// found item. Pure function; malformed fields degrade to their neutral or
// zero score instead of failing.
func Score(lost, found models.Item) Result {
	titleScore := StringSimilarity(lost.Title, found.Title)
	descriptionScore := StringSimilarity(lost.Description, found.Description)
	categoryScore := CategorySimilarity(lost.Category, found.Category)
	locationScore := LocationSimilarity(lost.Location, found.Location)
	dateScore := DateProximity(lost.Date, found.Date)

	total := titleScore*weightTitle +
		descriptionScore*weightDescription +
		categoryScore*weightCategory +
		locationScore*weightLocation +
		dateScore*weightDate

	return Result{
		Score:           total,
		MatchPercentage: roundPercent(total),
		Details: Details{
			TitleMatch:       roundPercent(titleScore),
			DescriptionMatch: roundPercent(descriptionScore),
			CategoryMatch:    roundPercent(categoryScore),
			LocationMatch:    roundPercent(locationScore),
			DateMatch:        roundPercent(dateScore),
		},
		IsHighPotentialMatch: total >= highPotentialThreshold,
	}
}

// FindPotentialMatches scores target against every opposite-status item in
// pool and returns the candidates at or above threshold, best score first.
// Equal scores order by candidate ID so ranking is deterministic. Items whose
// status is neither lost nor found (claimed, returned) never appear. The pool
// is not de-duplicated against the target's own id; callers own that.
func FindPotentialMatches(target models.Item, pool []models.Item, targetType models.Status, threshold float64) []Match {
	oppositeType := targetType.Opposite()

	var matches []Match
	for _, candidate := range pool {
		if candidate.Status != oppositeType {
			continue
		}

		var result Result
		if targetType == models.StatusLost {
			result = Score(target, candidate)
		} else {
			result = Score(candidate, target)
		}

		if result.Score >= threshold {
			matches = append(matches, Match{Item: candidate, Result: result})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Item.ID < matches[j].Item.ID
	})

	return matches
}

func roundPercent(score float64) int {
	return int(math.Round(score * 100))
}
