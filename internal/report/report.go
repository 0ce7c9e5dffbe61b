// Package report renders results, timelines and statistics as terminal
// tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/soccerstatsqc/league-dashboard/internal/domain/match"
	"github.com/soccerstatsqc/league-dashboard/internal/domain/scoreboard"
	"github.com/soccerstatsqc/league-dashboard/internal/domain/timeline"
)

const winnerMark = "*"

func newTable(w io.Writer, align tw.Align) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: align},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// WriteResults prints the results table. The emphasis markup is turned into
// a trailing star so the table stays aligned.
func WriteResults(w io.Writer, rows []scoreboard.Row) error {
	table := newTable(w, tw.AlignLeft)
	table.Header("MATCH", "HOME", "SCORE", "AWAY")

	for _, row := range rows {
		if err := table.Append(row.MatchID, terminalName(row.Home), row.Score, terminalName(row.Away)); err != nil {
			return fmt.Errorf("append result %s: %w", row.MatchID, err)
		}
	}
	return table.Render()
}

func terminalName(name string) string {
	if scoreboard.IsEmphasized(name) {
		return scoreboard.Plain(name) + " " + winnerMark
	}
	return name
}

func WriteTeams(w io.Writer, teams []string) error {
	table := newTable(w, tw.AlignLeft)
	table.Header("#", "TEAM")

	for i, team := range teams {
		if err := table.Append(strconv.Itoa(i+1), team); err != nil {
			return fmt.Errorf("append team %q: %w", team, err)
		}
	}
	return table.Render()
}

// WriteMatchHeader prints the one-line match banner.
func WriteMatchHeader(w io.Writer, r match.Result) {
	fmt.Fprintf(w, "\n%s  |  %s %s %s  |  %s\n\n",
		r.Date.Format("2006-01-02"), r.HomeTeam, r.Score, r.AwayTeam, r.ID)
}

// WriteTimeline prints one line per marker, in axis order.
func WriteTimeline(w io.Writer, tl timeline.Timeline) error {
	fmt.Fprintf(w, "%s %.0f%%  |  %s (%s) vs %s (%s)  |  %s %.0f%%\n",
		tl.Kickoff.Text, tl.Kickoff.Percent,
		tl.Home.Name, tl.Home.Anchor, tl.Away.Name, tl.Away.Anchor,
		tl.FullTime.Text, tl.FullTime.Percent,
	)

	table := newTable(w, tw.AlignRight)
	table.Header("MIN", "SIDE", "EVENT", "DETAIL", "POS%", "OFFSET", "MOVED")

	for _, m := range tl.Markers {
		moved := ""
		if m.Adjusted {
			moved = "yes"
		}
		offset := fmt.Sprintf("%d %s", m.Offset, m.Direction)
		if err := table.Append(
			m.Event.Minute+"'",
			string(m.Event.Side),
			m.Icon,
			m.Event.Tooltip,
			fmt.Sprintf("%.1f", m.Percent),
			offset,
			moved,
		); err != nil {
			return fmt.Errorf("append marker at %s: %w", m.Event.Minute, err)
		}
	}
	return table.Render()
}

// WriteStats prints the head-to-head table. The larger side of a row gets
// the winner mark.
func WriteStats(w io.Writer, homeTeam, awayTeam string, rows []match.StatRow) error {
	table := newTable(w, tw.AlignCenter)
	table.Header(homeTeam, "STAT", awayTeam)

	for _, row := range rows {
		home, away := row.Home, row.Away
		if row.HomeBold {
			home += " " + winnerMark
		}
		if row.AwayBold {
			away += " " + winnerMark
		}
		if err := table.Append(home, row.Label, away); err != nil {
			return fmt.Errorf("append stat %q: %w", row.Label, err)
		}
	}
	return table.Render()
}
