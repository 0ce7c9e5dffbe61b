package match

import (
	"regexp"
	"strconv"
	"strings"
)

type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

type Kind string

const (
	KindGoal         Kind = "goal"
	KindYellowCard   Kind = "yellow_card"
	KindRedCard      Kind = "red_card"
	KindSubstitution Kind = "substitution"
)

// Kinds lists every event kind in decode order.
func Kinds() []Kind {
	return []Kind{KindGoal, KindYellowCard, KindRedCard, KindSubstitution}
}

// Label is the human readable name of the kind. ok is false for kinds outside
// the closed set.
func (k Kind) Label() (label string, ok bool) {
	switch k {
	case KindGoal:
		return "Goal", true
	case KindYellowCard:
		return "Yellow card", true
	case KindRedCard:
		return "Red card", true
	case KindSubstitution:
		return "Substitution", true
	default:
		return "", false
	}
}

// Icon is the glyph drawn on the timeline for the kind.
func (k Kind) Icon() (icon string, ok bool) {
	switch k {
	case KindGoal:
		return "⚽️", true
	case KindYellowCard:
		return "🟨", true
	case KindRedCard:
		return "🟥", true
	case KindSubstitution:
		return "🔄", true
	default:
		return "", false
	}
}

// Event is one decoded, minute-stamped occurrence attributed to a side.
type Event struct {
	// Minute keeps the source spelling, stoppage suffix included ("45+2").
	Minute    string
	Side      Side
	Kind      Kind
	Player    string
	PlayerOut string
	PlayerIn  string
	Tooltip   string
}

// MinuteValue is the integer minute used for grouping and layout. Stoppage
// time is folded onto its base minute.
func (e Event) MinuteValue() int {
	value, _ := ParseMinute(e.Minute)
	return value
}

var minutePattern = regexp.MustCompile(`^(\d+)(?:\+(\d+))?$`)

// ParseMinute validates a trimmed minute token. Accepted forms are "37" and
// "45+2"; the returned value is the base minute.
func ParseMinute(token string) (int, bool) {
	parts := minutePattern.FindStringSubmatch(strings.TrimSpace(token))
	if parts == nil {
		return 0, false
	}
	value, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return value, true
}

// DescribeEvent returns the one-line tooltip for e, falling back to the kind
// label when the player names are unknown.
func DescribeEvent(e Event) string {
	switch e.Kind {
	case KindGoal:
		if e.Player != "" {
			return "Scorer: " + e.Player
		}
	case KindYellowCard:
		if e.Player != "" {
			return "Warned: " + e.Player
		}
	case KindRedCard:
		if e.Player != "" {
			return "Sent off: " + e.Player
		}
	case KindSubstitution:
		if e.PlayerOut != "" && e.PlayerIn != "" {
			return e.PlayerOut + " → " + e.PlayerIn
		}
	}

	label, ok := e.Kind.Label()
	if !ok {
		return capitalize(string(e.Kind))
	}
	return label
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
