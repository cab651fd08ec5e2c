package oddsfeed

import (
	"time"

	"github.com/elitepicks/picksbot/internal/pkg/models"
)

// SamplePicks is the static fallback candidate set used when the provider is
// unavailable or returned too few events and the deployment opts in to
// degraded runs. Kickoffs are spread over the hours after now so the set
// passes the time-window filter unchanged.
func SamplePicks(now time.Time) []models.Pick {
	base := now.UTC().Truncate(time.Hour)

	fixtures := []struct {
		home       string
		away       string
		selection  string
		odds       float64
		bookmaker  string
		hoursAhead int
	}{
		{"Liverpool", "Real Madrid", "AH -1.5", 2.10, "Bet365", 4},
		{"Manchester United", "Chelsea", "Over 2.5", 1.95, "Bwin", 5},
		{"Arsenal", "Manchester City", "ML", 1.80, "Bet365", 6},
		{"Bayern Munich", "Borussia Dortmund", "Over 3.5", 2.25, "Bwin", 7},
		{"PSG", "Monaco", "ML", 1.70, "Bet365", 8},
	}

	picks := make([]models.Pick, 0, len(fixtures))
	for _, f := range fixtures {
		picks = append(picks, models.Pick{
			Match:      models.MatchLabel(f.home, f.away),
			Home:       f.home,
			Away:       f.away,
			Selection:  f.selection,
			Odds:       f.odds,
			Bookmaker:  f.bookmaker,
			KickoffUTC: base.Add(time.Duration(f.hoursAhead) * time.Hour),
		})
	}
	return picks
}
