package match

import (
	"math"
	"strconv"
)

// Stats holds the per-match team statistics exported next to the events.
type Stats struct {
	ShotsHome          int
	ShotsAway          int
	ShotsOnTargetHome  int
	ShotsOnTargetAway  int
	PassesForward      int
	PassesBackward     int
	PassesLeft         int
	PassesRight        int
	PassesAway         int
	OffsidesHome       int
	OffsidesAway       int
	FoulsCommittedHome int
	FoulsCommittedAway int
	FreeKicksHome      int
	FreeKicksAway      int
	CornersHome        int
	CornersAway        int
}

// PassesHome sums the four directional pass counters.
func (s Stats) PassesHome() int {
	return s.PassesForward + s.PassesBackward + s.PassesLeft + s.PassesRight
}

// Possession approximates possession from pass share, rounded to one decimal.
func (s Stats) Possession() (home, away float64) {
	total := s.PassesHome() + s.PassesAway
	if total <= 0 {
		return 0, 0
	}
	home = roundTo(float64(s.PassesHome())/float64(total)*100, 1)
	away = roundTo(float64(s.PassesAway)/float64(total)*100, 1)
	return home, away
}

// StatRow is one line of the head-to-head statistics table.
type StatRow struct {
	Label    string
	Home     string
	Away     string
	HomeBold bool
	AwayBold bool
	Zebra    bool
}

// BuildStatRows lays out the comparison table. The strictly larger side of
// each row is bolded; ties bold neither.
func BuildStatRows(s Stats) []StatRow {
	possessionHome, possessionAway := s.Possession()

	type line struct {
		label      string
		home, away float64
		decimals   int
	}
	lines := []line{
		{"Possession %", possessionHome, possessionAway, 1},
		{"Shots on target", float64(s.ShotsOnTargetHome), float64(s.ShotsOnTargetAway), 0},
		{"Shots", float64(s.ShotsHome), float64(s.ShotsAway), 0},
		{"Passes", float64(s.PassesHome()), float64(s.PassesAway), 0},
		{"Offsides", float64(s.OffsidesHome), float64(s.OffsidesAway), 0},
		{"Free kicks", float64(s.FreeKicksHome), float64(s.FreeKicksAway), 0},
		{"Corners", float64(s.CornersHome), float64(s.CornersAway), 0},
		{"Fouls committed", float64(s.FoulsCommittedHome), float64(s.FoulsCommittedAway), 0},
	}

	rows := make([]StatRow, 0, len(lines))
	for i, l := range lines {
		rows = append(rows, StatRow{
			Label:    l.label,
			Home:     strconv.FormatFloat(l.home, 'f', l.decimals, 64),
			Away:     strconv.FormatFloat(l.away, 'f', l.decimals, 64),
			HomeBold: l.home > l.away,
			AwayBold: l.away > l.home,
			Zebra:    i%2 == 1,
		})
	}
	return rows
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
