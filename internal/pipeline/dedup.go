package pipeline

import (
	"github.com/elitepicks/picksbot/internal/pkg/models"
)

// Dedup collapses picks sharing a dedup key in a single left-to-right pass.
// First seen wins: a later entry never replaces an earlier one, even at
// better odds.
func Dedup(picks []models.Pick, mode models.DedupMode) []models.Pick {
	seen := make(map[string]struct{}, len(picks))
	out := make([]models.Pick, 0, len(picks))
	for _, p := range picks {
		key := p.DedupKey(mode)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}
