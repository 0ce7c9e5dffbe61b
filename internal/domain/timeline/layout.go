package timeline

import (
	"math"
	"sort"
	"strconv"

	"github.com/soccerstatsqc/league-dashboard/internal/domain/match"
)

type Anchor string

const (
	AnchorTop    Anchor = "top"
	AnchorBottom Anchor = "bottom"
)

// Direction tells the renderer which way a side's markers stack.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// AxisLabel is a fixed caption placed on the axis.
type AxisLabel struct {
	Text    string
	Percent float64
}

type TeamLabel struct {
	Name   string
	Anchor Anchor
}

// Marker is a positioned event ready for rendering.
type Marker struct {
	Event     match.Event
	Icon      string
	Percent   float64
	Offset    int
	Direction Direction
	// Adjusted is set when collision resolution moved the marker's group.
	Adjusted bool
}

// MinuteGroup is the minute caption drawn once per group of events.
type MinuteGroup struct {
	Minute   int
	Label    string
	Percent  float64
	Adjusted bool
}

type Timeline struct {
	Kickoff  AxisLabel
	FullTime AxisLabel
	Home     TeamLabel
	Away     TeamLabel
	Groups   []MinuteGroup
	Markers  []Marker
}

// Layout positions events along the match axis with the default geometry.
func Layout(events []match.Event, homeTeam, awayTeam string) Timeline {
	return LayoutWithOptions(events, homeTeam, awayTeam, DefaultOptions())
}

// LayoutWithOptions groups events by minute, maps each group onto the axis
// and separates groups that would render too close together. Events of an
// unknown kind are skipped.
func LayoutWithOptions(events []match.Event, homeTeam, awayTeam string, opts Options) Timeline {
	opts = opts.Normalize()

	out := Timeline{
		Kickoff:  AxisLabel{Text: opts.KickoffLabel, Percent: opts.KickoffPercent},
		FullTime: AxisLabel{Text: opts.FullTimeLabel, Percent: opts.FullTimePercent},
		Home:     TeamLabel{Name: homeTeam, Anchor: AnchorTop},
		Away:     TeamLabel{Name: awayTeam, Anchor: AnchorBottom},
	}

	grouped := make(map[int][]match.Event)
	for _, e := range events {
		if _, ok := e.Kind.Icon(); !ok {
			continue
		}
		minute := e.MinuteValue()
		grouped[minute] = append(grouped[minute], e)
	}

	minutes := make([]int, 0, len(grouped))
	for minute := range grouped {
		minutes = append(minutes, minute)
	}
	sort.Ints(minutes)

	out.Groups = make([]MinuteGroup, 0, len(minutes))
	out.Markers = make([]Marker, 0, len(events))

	state := newPlacements(len(minutes))
	for _, minute := range minutes {
		var (
			percent  float64
			adjusted bool
		)
		percent, adjusted, state = state.place(opts, minute, MinuteToPercent(minute, opts))

		out.Groups = append(out.Groups, MinuteGroup{
			Minute:   minute,
			Label:    strconv.Itoa(minute) + "'",
			Percent:  percent,
			Adjusted: adjusted,
		})
		out.Markers = append(out.Markers, stackGroup(grouped[minute], percent, adjusted, opts)...)
	}

	return out
}

// MinuteToPercent maps a minute onto the playable part of the axis. Minutes
// past AxisMinutes saturate.
func MinuteToPercent(minute int, opts Options) float64 {
	m := math.Min(math.Max(float64(minute), 0), float64(opts.AxisMinutes))
	raw := m / float64(opts.AxisMinutes) * 100 * opts.AxisScale
	return math.Min(math.Max(raw, 0), opts.MaxPercent)
}

func stackGroup(group []match.Event, percent float64, adjusted bool, opts Options) []Marker {
	markers := make([]Marker, 0, len(group))
	homeIdx, awayIdx := 0, 0

	for _, e := range group {
		icon, _ := e.Kind.Icon()
		marker := Marker{
			Event:    e,
			Icon:     icon,
			Percent:  percent,
			Adjusted: adjusted,
		}

		if e.Side == match.SideAway {
			awayIdx++
			marker.Offset = opts.StackStep * awayIdx
			marker.Direction = DirectionDown
		} else {
			homeIdx++
			marker.Offset = opts.StackStep * homeIdx
			marker.Direction = DirectionUp
		}
		markers = append(markers, marker)
	}

	return markers
}
