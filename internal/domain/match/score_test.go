package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveScore(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   string
	}{
		{
			name: "counts goal entries",
			record: Record{
				GoalsFor:     ParseEventField("Dupont,23;Tremblay,45"),
				GoalsAgainst: ParseEventField("12,67,88"),
			},
			want: "2-3",
		},
		{
			name: "sentinels count as zero",
			record: Record{
				GoalsFor:     ParseEventField("-1"),
				GoalsAgainst: ParseEventField("-1,-1"),
			},
			want: "0-0",
		},
		{
			name: "explicit score wins",
			record: Record{
				Score:    " 4-1 ",
				GoalsFor: ParseEventField("Dupont,23"),
			},
			want: "4-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveScore(tt.record))
		})
	}
}

func TestParseScore(t *testing.T) {
	home, away, ok := ParseScore("3 - 1")
	assert.True(t, ok)
	assert.Equal(t, 3, home)
	assert.Equal(t, 1, away)

	for _, bad := range []string{"abc", "", "3-", "-1-2", "1-2-3"} {
		_, _, ok := ParseScore(bad)
		assert.Falsef(t, ok, "expected %q to be rejected", bad)
	}
}

func TestBuildStatRows(t *testing.T) {
	stats := Stats{
		ShotsHome:         10,
		ShotsAway:         4,
		ShotsOnTargetHome: 3,
		ShotsOnTargetAway: 3,
		PassesForward:     100,
		PassesBackward:    50,
		PassesLeft:        25,
		PassesRight:       25,
		PassesAway:        100,
		CornersAway:       6,
	}

	rows := BuildStatRows(stats)
	if len(rows) != 8 {
		t.Fatalf("unexpected row count: got=%d want=8", len(rows))
	}

	possession := rows[0]
	if possession.Home != "66.7" || possession.Away != "33.3" || !possession.HomeBold || possession.AwayBold {
		t.Fatalf("unexpected possession row: %+v", possession)
	}
	if shotsOn := rows[1]; shotsOn.HomeBold || shotsOn.AwayBold || !shotsOn.Zebra {
		t.Fatalf("tie must not be bolded and row 2 must be zebra: %+v", shotsOn)
	}
	if passes := rows[3]; passes.Home != "200" || passes.Away != "100" {
		t.Fatalf("unexpected passes row: %+v", passes)
	}
	if corners := rows[6]; corners.Label != "Corners" || !corners.AwayBold {
		t.Fatalf("unexpected corners row: %+v", corners)
	}
}

func TestStats_PossessionWithoutPasses(t *testing.T) {
	home, away := Stats{}.Possession()
	if home != 0 || away != 0 {
		t.Fatalf("unexpected possession: home=%v away=%v", home, away)
	}
}
