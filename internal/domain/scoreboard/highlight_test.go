package scoreboard

import (
	"testing"

	"github.com/soccerstatsqc/league-dashboard/internal/domain/match"
)

func TestHighlight_Winners(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		score    string
		wantHome string
		wantAway string
	}{
		{name: "home win", score: "3-1", wantHome: "**Alpha**", wantAway: "Beta"},
		{name: "away win", score: "0-2", wantHome: "Alpha", wantAway: "**Beta**"},
		{name: "draw", score: "2-2", wantHome: "Alpha", wantAway: "Beta"},
		{name: "spaced score", score: "3 - 1", wantHome: "**Alpha**", wantAway: "Beta"},
		{name: "garbage score", score: "abc", wantHome: "Alpha", wantAway: "Beta"},
		{name: "empty score", score: "", wantHome: "Alpha", wantAway: "Beta"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rows := Highlight([]match.Result{{ID: "m1", HomeTeam: "Alpha", AwayTeam: "Beta", Score: tt.score}}, "")
			if len(rows) != 1 {
				t.Fatalf("unexpected row count: got=%d want=1", len(rows))
			}
			row := rows[0]
			if row.Home != tt.wantHome || row.Away != tt.wantAway {
				t.Fatalf("unexpected names: got=(%q,%q) want=(%q,%q)", row.Home, row.Away, tt.wantHome, tt.wantAway)
			}
			if row.Score != tt.score || row.MatchID != "m1" {
				t.Fatalf("unexpected row: %+v", row)
			}
		})
	}
}

func TestHighlight_FiltersByTeam(t *testing.T) {
	t.Parallel()

	results := []match.Result{
		{ID: "1", HomeTeam: "Alpha", AwayTeam: "Beta", Score: "1-0"},
		{ID: "2", HomeTeam: "Gamma", AwayTeam: "Delta", Score: "1-0"},
		{ID: "3", HomeTeam: "Delta", AwayTeam: "Alpha", Score: "0-0"},
	}

	rows := Highlight(results, "Alpha")
	if len(rows) != 2 {
		t.Fatalf("unexpected row count: got=%d want=2", len(rows))
	}
	if rows[0].MatchID != "1" || rows[1].MatchID != "3" {
		t.Fatalf("unexpected order: %+v", rows)
	}

	if got := Highlight(results, ""); len(got) != len(results) {
		t.Fatalf("empty team must not filter: got=%d want=%d", len(got), len(results))
	}
	if got := Highlight(results, "Nobody"); len(got) != 0 {
		t.Fatalf("unexpected rows for unknown team: %+v", got)
	}
}

func TestPlain(t *testing.T) {
	t.Parallel()

	if got := Plain("**Alpha**"); got != "Alpha" {
		t.Fatalf("unexpected plain name: %q", got)
	}
	if got := Plain("Alpha"); got != "Alpha" {
		t.Fatalf("unexpected plain name: %q", got)
	}
	if !IsEmphasized(Emphasize("Beta")) || IsEmphasized("Beta") {
		t.Fatal("unexpected emphasis detection")
	}
}
