package digest

import (
	"fmt"
	"strings"
	"time"

	"github.com/elitepicks/picksbot/internal/pkg/models"
)

const footer = "_18+ | Entertainment only | Bet responsibly_"

// FormatFree renders the free-tier digest in Telegram legacy Markdown.
func FormatFree(picks []models.Pick, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*FREE PICKS* — %d today • %s UTC\n\n", len(picks), now.UTC().Format("15:04"))
	for _, p := range picks {
		writePick(&b, p)
	}
	b.WriteString(footer)
	return b.String()
}

// FormatPremium renders the premium-tier digest with the subscription CTA
// after the pick list.
func FormatPremium(picks []models.Pick, cta string) string {
	var b strings.Builder
	b.WriteString("*PREMIUM PICKS* (early access)\n\n")
	for _, p := range picks {
		writePick(&b, p)
	}
	if cta != "" {
		fmt.Fprintf(&b, "_%s_\n\n", escapeMarkdown(cta))
	}
	b.WriteString(footer)
	return b.String()
}

func writePick(b *strings.Builder, p models.Pick) {
	if p.Exclusive {
		b.WriteString("🔒 ")
	} else {
		b.WriteString("• ")
	}
	fmt.Fprintf(b, "*%s* → %s @ %.2f (%s)\n",
		escapeMarkdown(p.Match), escapeMarkdown(p.Selection), p.Odds, escapeMarkdown(p.Bookmaker))
	if !p.KickoffLocal.IsZero() {
		fmt.Fprintf(b, "  %s local kick-off\n", p.KickoffLocal.Format("Mon 15:04"))
	}
	if p.Rationale != "" {
		fmt.Fprintf(b, "  _%s_\n", escapeMarkdown(p.Rationale))
	}
	b.WriteByte('\n')
}

var markupStripper = strings.NewReplacer("*", "", "_", "", "`", "", "\\", "")

// StripMarkup produces the plain-text rendering used when Telegram rejects
// the Markdown body. Content survives, formatting does not.
func StripMarkup(s string) string {
	return markupStripper.Replace(s)
}

var markdownEscaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

// escapeMarkdown guards dynamic text inserted into a legacy-Markdown
// message.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
