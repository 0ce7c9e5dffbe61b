package scoreboard

import (
	"strings"

	"github.com/soccerstatsqc/league-dashboard/internal/domain/match"
)

// Row is one display triple of the results table. Home and Away carry the
// winner emphasis markup.
type Row struct {
	MatchID string
	Home    string
	Score   string
	Away    string
}

// Highlight filters results to those involving team (all results when team
// is empty) and emphasizes the winner's name. Draws and unparseable scores
// leave both names plain.
func Highlight(results []match.Result, team string) []Row {
	team = strings.TrimSpace(team)

	rows := make([]Row, 0, len(results))
	for _, r := range results {
		if team != "" && r.HomeTeam != team && r.AwayTeam != team {
			continue
		}
		rows = append(rows, highlightRow(r))
	}
	return rows
}

func highlightRow(r match.Result) Row {
	row := Row{
		MatchID: r.ID,
		Home:    r.HomeTeam,
		Score:   r.Score,
		Away:    r.AwayTeam,
	}

	home, away, ok := match.ParseScore(r.Score)
	if !ok {
		return row
	}

	switch {
	case home > away:
		row.Home = Emphasize(r.HomeTeam)
	case away > home:
		row.Away = Emphasize(r.AwayTeam)
	}
	return row
}

func Emphasize(name string) string {
	return "**" + name + "**"
}

// Plain strips winner emphasis, for renderers that style the winner
// themselves.
func Plain(name string) string {
	if len(name) >= 4 && strings.HasPrefix(name, "**") && strings.HasSuffix(name, "**") {
		return name[2 : len(name)-2]
	}
	return name
}

// IsEmphasized reports whether name carries winner emphasis.
func IsEmphasized(name string) bool {
	return Plain(name) != name
}
