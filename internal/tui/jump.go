package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/launchdeck/internal/launch"
)

// bestMatch returns the index of the record whose mission name is closest to
// query. A name containing the query outranks any edit distance; ties go to
// the earliest record.
func bestMatch(records []launch.Record, query string) (int, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(records) == 0 {
		return -1, false
	}
	best, bestScore := -1, 0
	for i, r := range records {
		name := strings.ToLower(r.MissionName)
		score := 0
		if !strings.Contains(name, q) {
			score = 1 + levenshtein.ComputeDistance(q, name)
		}
		if best < 0 || score < bestScore {
			best, bestScore = i, score
		}
	}
	return best, true
}
