package pipeline

import (
	"time"

	"github.com/elitepicks/picksbot/internal/pkg/models"
)

// Window is the forward eligibility window for kickoffs.
type Window struct {
	Now     time.Time
	Horizon time.Duration
	// EndOfDay extends the horizon end to 23:59:59 UTC of its calendar day,
	// for "through end of day" deployments.
	EndOfDay bool
}

// End returns the inclusive upper bound of the window.
func (w Window) End() time.Time {
	end := w.Now.Add(w.Horizon).UTC()
	if w.EndOfDay {
		end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, time.UTC)
	}
	return end
}

// FilterWindow keeps picks with now < kickoff ≤ end. Past and in-progress
// fixtures are excluded unconditionally; there is no live-market handling.
func FilterWindow(picks []models.Pick, w Window) []models.Pick {
	end := w.End()
	out := make([]models.Pick, 0, len(picks))
	for _, p := range picks {
		if p.KickoffUTC.After(w.Now) && !p.KickoffUTC.After(end) {
			out = append(out, p)
		}
	}
	return out
}
