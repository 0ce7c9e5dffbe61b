package sqlstore

import (
	"time"

	"github.com/soccerstatsqc/league-dashboard/internal/domain/match"
)

const matchesTable = "matches"

// absentFieldValue is what the exporter writes for an empty event column.
const absentFieldValue = "-1"

var matchColumns = []string{
	"id", "public_id", "played_at", "home_team", "away_team", "score",
	"goals_for", "goals_against",
	"yellow_cards_for", "yellow_cards_against",
	"red_cards_for", "red_cards_against",
	"changes_for", "changes_against",
	"shots_home", "shots_away", "shots_on_target_home", "shots_on_target_away",
	"passes_forward", "passes_backward", "passes_left", "passes_right", "passes_away",
	"offsides_home", "offsides_away", "fouls_home", "fouls_away",
	"free_kicks_home", "free_kicks_away", "corners_home", "corners_away",
	"deleted_at",
}

// matchTableModel mirrors one row of the matches table. Event columns keep
// the raw export encoding, sentinels included.
type matchTableModel struct {
	ID       int64     `db:"id,readonly"`
	PublicID string    `db:"public_id"`
	PlayedAt time.Time `db:"played_at"`
	HomeTeam string    `db:"home_team"`
	AwayTeam string    `db:"away_team"`
	Score    string    `db:"score"`

	GoalsFor           string `db:"goals_for"`
	GoalsAgainst       string `db:"goals_against"`
	YellowCardsFor     string `db:"yellow_cards_for"`
	YellowCardsAgainst string `db:"yellow_cards_against"`
	RedCardsFor        string `db:"red_cards_for"`
	RedCardsAgainst    string `db:"red_cards_against"`
	ChangesFor         string `db:"changes_for"`
	ChangesAgainst     string `db:"changes_against"`

	ShotsHome         int `db:"shots_home"`
	ShotsAway         int `db:"shots_away"`
	ShotsOnTargetHome int `db:"shots_on_target_home"`
	ShotsOnTargetAway int `db:"shots_on_target_away"`
	PassesForward     int `db:"passes_forward"`
	PassesBackward    int `db:"passes_backward"`
	PassesLeft        int `db:"passes_left"`
	PassesRight       int `db:"passes_right"`
	PassesAway        int `db:"passes_away"`
	OffsidesHome      int `db:"offsides_home"`
	OffsidesAway      int `db:"offsides_away"`
	FoulsHome         int `db:"fouls_home"`
	FoulsAway         int `db:"fouls_away"`
	FreeKicksHome     int `db:"free_kicks_home"`
	FreeKicksAway     int `db:"free_kicks_away"`
	CornersHome       int `db:"corners_home"`
	CornersAway       int `db:"corners_away"`

	DeletedAt *time.Time `db:"deleted_at,readonly"`
}

func (m matchTableModel) toDomain() match.Record {
	return match.Record{
		ID:                 m.PublicID,
		Date:               m.PlayedAt.UTC(),
		HomeTeam:           m.HomeTeam,
		AwayTeam:           m.AwayTeam,
		Score:              m.Score,
		GoalsFor:           match.ParseEventField(m.GoalsFor),
		GoalsAgainst:       match.ParseEventField(m.GoalsAgainst),
		YellowCardsFor:     match.ParseEventField(m.YellowCardsFor),
		YellowCardsAgainst: match.ParseEventField(m.YellowCardsAgainst),
		RedCardsFor:        match.ParseEventField(m.RedCardsFor),
		RedCardsAgainst:    match.ParseEventField(m.RedCardsAgainst),
		ChangesFor:         match.ParseEventField(m.ChangesFor),
		ChangesAgainst:     match.ParseEventField(m.ChangesAgainst),
		Stats: match.Stats{
			ShotsHome:          m.ShotsHome,
			ShotsAway:          m.ShotsAway,
			ShotsOnTargetHome:  m.ShotsOnTargetHome,
			ShotsOnTargetAway:  m.ShotsOnTargetAway,
			PassesForward:      m.PassesForward,
			PassesBackward:     m.PassesBackward,
			PassesLeft:         m.PassesLeft,
			PassesRight:        m.PassesRight,
			PassesAway:         m.PassesAway,
			OffsidesHome:       m.OffsidesHome,
			OffsidesAway:       m.OffsidesAway,
			FoulsCommittedHome: m.FoulsHome,
			FoulsCommittedAway: m.FoulsAway,
			FreeKicksHome:      m.FreeKicksHome,
			FreeKicksAway:      m.FreeKicksAway,
			CornersHome:        m.CornersHome,
			CornersAway:        m.CornersAway,
		},
	}
}

func matchModelFromDomain(r match.Record) matchTableModel {
	s := r.Stats
	return matchTableModel{
		PublicID:           r.ID,
		PlayedAt:           r.Date.UTC(),
		HomeTeam:           r.HomeTeam,
		AwayTeam:           r.AwayTeam,
		Score:              r.Score,
		GoalsFor:           encodeField(r.GoalsFor),
		GoalsAgainst:       encodeField(r.GoalsAgainst),
		YellowCardsFor:     encodeField(r.YellowCardsFor),
		YellowCardsAgainst: encodeField(r.YellowCardsAgainst),
		RedCardsFor:        encodeField(r.RedCardsFor),
		RedCardsAgainst:    encodeField(r.RedCardsAgainst),
		ChangesFor:         encodeField(r.ChangesFor),
		ChangesAgainst:     encodeField(r.ChangesAgainst),
		ShotsHome:          s.ShotsHome,
		ShotsAway:          s.ShotsAway,
		ShotsOnTargetHome:  s.ShotsOnTargetHome,
		ShotsOnTargetAway:  s.ShotsOnTargetAway,
		PassesForward:      s.PassesForward,
		PassesBackward:     s.PassesBackward,
		PassesLeft:         s.PassesLeft,
		PassesRight:        s.PassesRight,
		PassesAway:         s.PassesAway,
		OffsidesHome:       s.OffsidesHome,
		OffsidesAway:       s.OffsidesAway,
		FoulsHome:          s.FoulsCommittedHome,
		FoulsAway:          s.FoulsCommittedAway,
		FreeKicksHome:      s.FreeKicksHome,
		FreeKicksAway:      s.FreeKicksAway,
		CornersHome:        s.CornersHome,
		CornersAway:        s.CornersAway,
	}
}

func encodeField(f match.EventField) string {
	if !f.Present() {
		return absentFieldValue
	}
	return f.Raw()
}
