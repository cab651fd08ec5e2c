package annotation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/elitepicks/picksbot/internal/pkg/models"
)

const rankMaxTokens = 200

// Ranker reorders candidates by estimated audience appeal with a single LLM
// call. It is strictly best-effort: any failure, malformed response included,
// yields the input order. It never drops or invents picks.
type Ranker struct {
	completer Completer
	marquee   []string
}

func NewRanker(completer Completer, marqueeClubs []string) *Ranker {
	return &Ranker{completer: completer, marquee: marqueeClubs}
}

func (r *Ranker) Rank(ctx context.Context, picks []models.Pick) []models.Pick {
	if len(picks) < 2 {
		return picks
	}

	raw, err := r.completer.Complete(ctx, r.buildPrompt(picks), rankMaxTokens)
	if err != nil {
		slog.Warn("Ranking call failed, keeping input order", "error", err)
		return picks
	}

	ranked := matchLines(raw, picks)
	slog.Debug("Ranking applied", "picks", len(picks))
	return ranked
}

func (r *Ranker) buildPrompt(picks []models.Pick) string {
	var b strings.Builder
	b.WriteString("Rank these football fixtures from most to least interesting for a general betting audience. ")
	b.WriteString("Prefer continental competitions over domestic ones")
	if len(r.marquee) > 0 {
		fmt.Fprintf(&b, " and fixtures involving %s", strings.Join(r.marquee, ", "))
	}
	b.WriteString(". Reply with one fixture per line, exactly as written, nothing else.\n\n")
	for _, p := range picks {
		b.WriteString(p.Match)
		b.WriteByte('\n')
	}
	return b.String()
}

// matchLines maps response lines back to picks by case-insensitive substring
// containment, first match wins. Picks the model skipped or mangled are
// appended afterwards in their original order, so the output is always a
// permutation of the input.
func matchLines(response string, picks []models.Pick) []models.Pick {
	used := make([]bool, len(picks))
	out := make([]models.Pick, 0, len(picks))

	for _, line := range strings.Split(response, "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" {
			continue
		}
		for i, p := range picks {
			if used[i] {
				continue
			}
			match := strings.ToLower(p.Match)
			if strings.Contains(line, match) || strings.Contains(match, line) {
				used[i] = true
				out = append(out, p)
				break
			}
		}
	}

	for i, p := range picks {
		if !used[i] {
			out = append(out, p)
		}
	}
	return out
}
