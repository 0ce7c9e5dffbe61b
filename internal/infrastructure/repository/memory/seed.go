package memory

import (
	"time"

	"github.com/soccerstatsqc/league-dashboard/internal/domain/match"
)

const (
	TeamMontRoyal  = "CS Mont-Royal Outremont"
	TeamLaval      = "CS Laval"
	TeamBlainville = "AS Blainville"
	TeamBoisbriand = "FC Boisbriand"
)

func seedDate(month time.Month, day int) time.Time {
	return time.Date(2025, month, day, 19, 30, 0, 0, time.UTC)
}

// SeedMatches returns a small season in the spreadsheet export encoding,
// sentinels included.
func SeedMatches() []match.Record {
	return []match.Record{
		{
			ID:                 "2025-r01-mro-bla",
			Date:               seedDate(time.May, 10),
			HomeTeam:           TeamMontRoyal,
			AwayTeam:           TeamBlainville,
			GoalsFor:           match.ParseEventField("Dupont,23;Tremblay,45"),
			GoalsAgainst:       match.ParseEventField("67"),
			YellowCardsFor:     match.ParseEventField("Gagnon,40"),
			YellowCardsAgainst: match.ParseEventField("12,44"),
			RedCardsFor:        match.ParseEventField("-1"),
			RedCardsAgainst:    match.ParseEventField("-1,-1"),
			ChangesFor:         match.ParseEventField("Lavoie,Côté,60;Bélanger,Pelletier,75"),
			ChangesAgainst:     match.ParseEventField("None"),
			Stats: match.Stats{
				ShotsHome: 14, ShotsAway: 8,
				ShotsOnTargetHome: 6, ShotsOnTargetAway: 3,
				PassesForward: 180, PassesBackward: 95, PassesLeft: 60, PassesRight: 72,
				PassesAway: 310,
				OffsidesHome: 2, OffsidesAway: 4,
				FoulsCommittedHome: 11, FoulsCommittedAway: 13,
				FreeKicksHome: 13, FreeKicksAway: 11,
				CornersHome: 7, CornersAway: 3,
			},
		},
		{
			ID:                 "2025-r02-lav-mro",
			Date:               seedDate(time.May, 17),
			HomeTeam:           TeamLaval,
			AwayTeam:           TeamMontRoyal,
			GoalsFor:           match.ParseEventField("Roy,10"),
			GoalsAgainst:       match.ParseEventField("11,90+3"),
			YellowCardsFor:     match.ParseEventField("Roy,12;Morin,88"),
			YellowCardsAgainst: match.ParseEventField("-1"),
			RedCardsFor:        match.ParseEventField("nan"),
			RedCardsAgainst:    match.ParseEventField("89"),
			ChangesFor:         match.ParseEventField("Morin,Fortin,70"),
			ChangesAgainst:     match.ParseEventField(",,46;,,80"),
			Stats: match.Stats{
				ShotsHome: 9, ShotsAway: 12,
				ShotsOnTargetHome: 4, ShotsOnTargetAway: 5,
				PassesForward: 140, PassesBackward: 80, PassesLeft: 55, PassesRight: 50,
				PassesAway: 402,
				OffsidesHome: 1, OffsidesAway: 1,
				FoulsCommittedHome: 15, FoulsCommittedAway: 9,
				FreeKicksHome: 9, FreeKicksAway: 15,
				CornersHome: 2, CornersAway: 6,
			},
		},
		{
			ID:                 "2025-r02-bla-boi",
			Date:               seedDate(time.May, 18),
			HomeTeam:           TeamBlainville,
			AwayTeam:           TeamBoisbriand,
			GoalsFor:           match.ParseEventField("-1"),
			GoalsAgainst:       match.ParseEventField("-1,-1"),
			YellowCardsFor:     match.ParseEventField("Bouchard,33"),
			YellowCardsAgainst: match.ParseEventField("33,34,35"),
			RedCardsFor:        match.ParseEventField(""),
			RedCardsAgainst:    match.ParseEventField(""),
			ChangesFor:         match.ParseEventField("-1"),
			ChangesAgainst:     match.ParseEventField("-1"),
			Stats: match.Stats{
				ShotsHome: 6, ShotsAway: 6,
				ShotsOnTargetHome: 1, ShotsOnTargetAway: 2,
				PassesForward: 120, PassesBackward: 70, PassesLeft: 40, PassesRight: 40,
				PassesAway: 270,
				CornersHome: 4, CornersAway: 4,
			},
		},
		{
			ID:                 "2025-r03-boi-mro",
			Date:               seedDate(time.May, 24),
			HomeTeam:           TeamBoisbriand,
			AwayTeam:           TeamMontRoyal,
			GoalsFor:           match.ParseEventField("Ouellet,44;Ouellet,44;Girard,44"),
			GoalsAgainst:       match.ParseEventField("2,5,81"),
			YellowCardsFor:     match.ParseEventField("-1"),
			YellowCardsAgainst: match.ParseEventField("44"),
			RedCardsFor:        match.ParseEventField("-1"),
			RedCardsAgainst:    match.ParseEventField("-1"),
			ChangesFor:         match.ParseEventField("Girard,Lapointe,61"),
			ChangesAgainst:     match.ParseEventField("-1"),
		},
	}
}
