package match

import (
	"strings"
	"time"
)

// EventField is one encoded event column after ingestion. The zero value is
// an absent field: the exporter wrote one of its "no events" sentinels.
type EventField struct {
	raw     string
	present bool
}

// ParseEventField maps a raw spreadsheet cell to an EventField. The sentinels
// "-1", "-1,-1", blank, "None" and "nan" all decode to an absent field.
func ParseEventField(raw string) EventField {
	value := strings.TrimSpace(raw)
	if isSentinel(value) {
		return EventField{}
	}
	return EventField{raw: value, present: true}
}

// PresentField builds a field without sentinel detection. Intended for tests
// and callers that already validated the value.
func PresentField(raw string) EventField {
	return EventField{raw: raw, present: true}
}

func (f EventField) Present() bool {
	return f.present
}

// Raw returns the encoded value, or "" for an absent field.
func (f EventField) Raw() string {
	return f.raw
}

func isSentinel(value string) bool {
	switch {
	case value == "", value == "-1", value == "-1,-1":
		return true
	case strings.EqualFold(value, "none"), strings.EqualFold(value, "nan"):
		return true
	default:
		return false
	}
}

// Record is one ingested match row.
type Record struct {
	ID       string
	Date     time.Time
	HomeTeam string
	AwayTeam string
	// Score is the "H-A" value supplied by the loader. Empty means derive it
	// from the goal fields.
	Score string

	GoalsFor           EventField
	GoalsAgainst       EventField
	YellowCardsFor     EventField
	YellowCardsAgainst EventField
	RedCardsFor        EventField
	RedCardsAgainst    EventField
	ChangesFor         EventField
	ChangesAgainst     EventField

	Stats Stats
}

// Result is the summary row shown in the results table.
type Result struct {
	ID       string
	Date     time.Time
	HomeTeam string
	AwayTeam string
	Score    string
}

// Result projects the record onto its results-table row.
func (r Record) Result() Result {
	return Result{
		ID:       r.ID,
		Date:     r.Date,
		HomeTeam: r.HomeTeam,
		AwayTeam: r.AwayTeam,
		Score:    DeriveScore(r),
	}
}

// Involves reports whether team played on either side.
func (r Record) Involves(team string) bool {
	return r.HomeTeam == team || r.AwayTeam == team
}
