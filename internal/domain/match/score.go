package match

import (
	"fmt"
	"strconv"
	"strings"
)

// DeriveScore returns the record's "H-A" score. An explicit score wins;
// otherwise goals are counted from the encoded fields, one per ";" entry on
// the home side and one per "," token on the away side.
func DeriveScore(r Record) string {
	if score := strings.TrimSpace(r.Score); score != "" {
		return score
	}
	return FormatScore(countEntries(r.GoalsFor, ";"), countEntries(r.GoalsAgainst, ","))
}

func FormatScore(home, away int) string {
	return fmt.Sprintf("%d-%d", home, away)
}

// ParseScore reads "H-A" with optional whitespace around both numbers.
func ParseScore(score string) (home, away int, ok bool) {
	parts := strings.Split(score, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}

	home, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	away, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return home, away, true
}

func countEntries(field EventField, sep string) int {
	if !field.Present() {
		return 0
	}
	return len(strings.Split(field.Raw(), sep))
}
