package annotation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elitepicks/picksbot/internal/pkg/models"
)

// FallbackRationale is used whenever the model cannot produce a usable
// sentence. A digest carries a rationale for every pick, no exceptions.
const FallbackRationale = "Strong statistical edge."

// Annotator produces one short rationale per pick. It never returns an
// error: model trouble degrades to the fallback sentence.
type Annotator struct {
	completer Completer
	maxTokens int
}

func NewAnnotator(completer Completer, maxTokens int) *Annotator {
	return &Annotator{completer: completer, maxTokens: maxTokens}
}

func (a *Annotator) Rationale(ctx context.Context, p models.Pick) string {
	prompt := fmt.Sprintf(
		"You are a football betting analyst. In one short sentence, give a plausible reason to back %s at odds %.2f in %s. "+
			"Plain text only, no emoji, no markup, at most 20 words.",
		p.Selection, p.Odds, p.Match,
	)

	raw, err := a.completer.Complete(ctx, prompt, a.maxTokens)
	if err != nil {
		slog.Warn("Rationale generation failed, using fallback", "match", p.Match, "error", err)
		return FallbackRationale
	}

	text := Sanitize(raw)
	if text == "" {
		slog.Warn("Rationale came back empty after sanitizing, using fallback", "match", p.Match)
		return FallbackRationale
	}
	return text
}
