package match

import (
	"math"
	"strings"
	"time"
)

// significantPlaces are campus landmarks that commonly anchor a free-text
// location. When both locations mention the same one, they almost certainly
// refer to the same area regardless of the surrounding words.
var significantPlaces = []string{
	"library", "cafeteria", "dorm", "hall", "building",
	"classroom", "lab", "gym", "field", "center", "court", "parking", "auditorium",
}

// StringSimilarity scores two free-text values in [0,1] using normalized
// Levenshtein distance over the case-folded inputs. Missing input scores 0.
func StringSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	s1 := []rune(strings.ToLower(a))
	s2 := []rune(strings.ToLower(b))

	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}
	if maxLen == 0 {
		return 1
	}

	track := make([][]int, len(s2)+1)
	for j := range track {
		track[j] = make([]int, len(s1)+1)
	}
	for i := 0; i <= len(s1); i++ {
		track[0][i] = i
	}
	for j := 0; j <= len(s2); j++ {
		track[j][0] = j
	}

	for j := 1; j <= len(s2); j++ {
		for i := 1; i <= len(s1); i++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			track[j][i] = minInt(
				track[j][i-1]+1,      // deletion
				track[j-1][i]+1,      // insertion
				track[j-1][i-1]+cost, // substitution
			)
		}
	}

	return 1 - float64(track[len(s2)][len(s1)])/float64(maxLen)
}

// DateProximity scores how close two reported dates are, decaying linearly to
// zero at 30 days apart. A missing or unparseable date scores the neutral 0.5
// so one bad record never sinks a whole scoring pass.
func DateProximity(d1, d2 string) float64 {
	if d1 == "" || d2 == "" {
		return 0.5
	}

	t1, ok := parseItemDate(d1)
	if !ok {
		return 0.5
	}
	t2, ok := parseItemDate(d2)
	if !ok {
		return 0.5
	}

	diff := t2.Sub(t1)
	if diff < 0 {
		diff = -diff
	}
	days := math.Ceil(diff.Hours() / 24)

	return math.Max(0, 1-days/30)
}

// LocationSimilarity scores two free-text locations. Missing input gets a
// partial-credit floor of 0.3 rather than zero: many valid reports omit
// location detail. A shared significant place token short-circuits to 0.9;
// otherwise the score scales with word overlap.
func LocationSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0.3
	}

	loc1 := strings.ToLower(a)
	loc2 := strings.ToLower(b)

	for _, place := range significantPlaces {
		if strings.Contains(loc1, place) && strings.Contains(loc2, place) {
			return 0.9
		}
	}

	words1 := strings.Fields(loc1)
	words2 := strings.Fields(loc2)

	union := make(map[string]struct{}, len(words1)+len(words2))
	inSecond := make(map[string]struct{}, len(words2))
	for _, w := range words2 {
		union[w] = struct{}{}
		inSecond[w] = struct{}{}
	}

	common := 0
	for _, w := range words1 {
		union[w] = struct{}{}
		if _, ok := inSecond[w]; ok {
			common++
		}
	}

	if len(union) == 0 {
		return 0.3
	}

	// Repeated words in the first location can push the overlap ratio past 1;
	// cap so the score stays in contract range.
	return math.Min(0.3+0.6*float64(common)/float64(len(union)), 1)
}

// CategorySimilarity is binary: categories either match exactly or not at all.
func CategorySimilarity(a, b string) float64 {
	if a == b && a != "" {
		return 1.0
	}
	return 0.0
}

// itemDateFormats are the layouts accepted for an item's reported date, most
// specific first.
var itemDateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

func parseItemDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, format := range itemDateFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
