package httpapi

import (
	"time"

	"github.com/soccerstatsqc/league-dashboard/internal/domain/match"
	"github.com/soccerstatsqc/league-dashboard/internal/domain/scoreboard"
	"github.com/soccerstatsqc/league-dashboard/internal/domain/timeline"
	"github.com/soccerstatsqc/league-dashboard/internal/usecase"
)

type resultRowDTO struct {
	MatchID string `json:"matchId"`
	Home    string `json:"home"`
	Score   string `json:"score"`
	Away    string `json:"away"`
}

type resultDTO struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	HomeTeam string    `json:"homeTeam"`
	AwayTeam string    `json:"awayTeam"`
	Score    string    `json:"score"`
}

type axisLabelDTO struct {
	Text    string  `json:"text"`
	Percent float64 `json:"percent"`
}

type teamLabelDTO struct {
	Name   string `json:"name"`
	Anchor string `json:"anchor"`
}

type minuteGroupDTO struct {
	Minute   int     `json:"minute"`
	Label    string  `json:"label"`
	Percent  float64 `json:"percent"`
	Adjusted bool    `json:"adjusted"`
}

type markerDTO struct {
	Minute    string  `json:"minute"`
	Side      string  `json:"side"`
	Kind      string  `json:"kind"`
	Player    string  `json:"player,omitempty"`
	PlayerOut string  `json:"playerOut,omitempty"`
	PlayerIn  string  `json:"playerIn,omitempty"`
	Tooltip   string  `json:"tooltip"`
	Icon      string  `json:"icon"`
	Percent   float64 `json:"percent"`
	Offset    int     `json:"offset"`
	Direction string  `json:"direction"`
	Adjusted  bool    `json:"adjusted"`
}

type timelineDTO struct {
	Kickoff  axisLabelDTO     `json:"kickoff"`
	FullTime axisLabelDTO     `json:"fullTime"`
	Home     teamLabelDTO     `json:"home"`
	Away     teamLabelDTO     `json:"away"`
	Groups   []minuteGroupDTO `json:"groups"`
	Markers  []markerDTO      `json:"markers"`
}

type statRowDTO struct {
	Label    string `json:"label"`
	Home     string `json:"home"`
	Away     string `json:"away"`
	HomeBold bool   `json:"homeBold"`
	AwayBold bool   `json:"awayBold"`
	Zebra    bool   `json:"zebra"`
}

type matchDetailsDTO struct {
	Match    resultDTO    `json:"match"`
	Timeline timelineDTO  `json:"timeline"`
	Stats    []statRowDTO `json:"stats"`
}

type teamTimelineDTO struct {
	Match    resultDTO   `json:"match"`
	Timeline timelineDTO `json:"timeline"`
}

func resultRowToDTO(v scoreboard.Row) resultRowDTO {
	return resultRowDTO{
		MatchID: v.MatchID,
		Home:    v.Home,
		Score:   v.Score,
		Away:    v.Away,
	}
}

func resultToDTO(v match.Result) resultDTO {
	return resultDTO{
		ID:       v.ID,
		Date:     v.Date,
		HomeTeam: v.HomeTeam,
		AwayTeam: v.AwayTeam,
		Score:    v.Score,
	}
}

func timelineToDTO(v timeline.Timeline) timelineDTO {
	out := timelineDTO{
		Kickoff:  axisLabelDTO{Text: v.Kickoff.Text, Percent: v.Kickoff.Percent},
		FullTime: axisLabelDTO{Text: v.FullTime.Text, Percent: v.FullTime.Percent},
		Home:     teamLabelDTO{Name: v.Home.Name, Anchor: string(v.Home.Anchor)},
		Away:     teamLabelDTO{Name: v.Away.Name, Anchor: string(v.Away.Anchor)},
		Groups:   make([]minuteGroupDTO, 0, len(v.Groups)),
		Markers:  make([]markerDTO, 0, len(v.Markers)),
	}
	for _, g := range v.Groups {
		out.Groups = append(out.Groups, minuteGroupDTO{
			Minute:   g.Minute,
			Label:    g.Label,
			Percent:  g.Percent,
			Adjusted: g.Adjusted,
		})
	}
	for _, m := range v.Markers {
		out.Markers = append(out.Markers, markerDTO{
			Minute:    m.Event.Minute,
			Side:      string(m.Event.Side),
			Kind:      string(m.Event.Kind),
			Player:    m.Event.Player,
			PlayerOut: m.Event.PlayerOut,
			PlayerIn:  m.Event.PlayerIn,
			Tooltip:   m.Event.Tooltip,
			Icon:      m.Icon,
			Percent:   m.Percent,
			Offset:    m.Offset,
			Direction: string(m.Direction),
			Adjusted:  m.Adjusted,
		})
	}

	return out
}

func matchDetailsToDTO(v usecase.MatchDetails) matchDetailsDTO {
	stats := make([]statRowDTO, 0, len(v.Stats))
	for _, row := range v.Stats {
		stats = append(stats, statRowDTO{
			Label:    row.Label,
			Home:     row.Home,
			Away:     row.Away,
			HomeBold: row.HomeBold,
			AwayBold: row.AwayBold,
			Zebra:    row.Zebra,
		})
	}

	return matchDetailsDTO{
		Match:    resultToDTO(v.Result),
		Timeline: timelineToDTO(v.Timeline),
		Stats:    stats,
	}
}
