package digest

import (
	"strings"
	"testing"
	"time"

	"github.com/elitepicks/picksbot/internal/pkg/models"
)

var digestNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func digestPicks() []models.Pick {
	return []models.Pick{
		{
			Match:     "Arsenal vs Chelsea",
			Selection: "ML",
			Odds:      1.85,
			Bookmaker: "Bet365",
			Rationale: "Strong home form.",
		},
		{
			Match:     "PSG vs Monaco",
			Selection: "Over 2.5",
			Odds:      1.95,
			Bookmaker: "Bwin",
			Exclusive: true,
		},
	}
}

func TestFormatFree(t *testing.T) {
	got := FormatFree(digestPicks()[:1], digestNow)

	for _, want := range []string{
		"*FREE PICKS* — 1 today • 09:30 UTC",
		"*Arsenal vs Chelsea* → ML @ 1.85 (Bet365)",
		"_Strong home form._",
		"_18+ | Entertainment only | Bet responsibly_",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("free digest missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "🔒") {
		t.Error("free digest must not carry the exclusive marker")
	}
}

func TestFormatPremium(t *testing.T) {
	got := FormatPremium(digestPicks(), "Join for every pick.")

	for _, want := range []string{
		"*PREMIUM PICKS* (early access)",
		"• *Arsenal vs Chelsea*",
		"🔒 *PSG vs Monaco* → Over 2.5 @ 1.95 (Bwin)",
		"_Join for every pick._",
		"_18+ | Entertainment only | Bet responsibly_",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("premium digest missing %q:\n%s", want, got)
		}
	}
}

func TestFormatPremiumEmptyCTA(t *testing.T) {
	got := FormatPremium(digestPicks(), "")
	if strings.Contains(got, "__") {
		t.Errorf("empty CTA must render nothing:\n%s", got)
	}
}

func TestWritePickLocalKickoff(t *testing.T) {
	p := digestPicks()[0]
	p.KickoffLocal = time.Date(2026, 3, 11, 22, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))

	got := FormatFree([]models.Pick{p}, digestNow)
	if !strings.Contains(got, "Wed 22:00 local kick-off") {
		t.Errorf("missing local kick-off line:\n%s", got)
	}
}

func TestEscapeMarkdownInDynamicText(t *testing.T) {
	p := models.Pick{
		Match:     "Brighton_Albion vs West*Ham",
		Selection: "ML",
		Odds:      2.00,
		Bookmaker: "Bet365",
	}
	got := FormatFree([]models.Pick{p}, digestNow)
	if !strings.Contains(got, `Brighton\_Albion vs West\*Ham`) {
		t.Errorf("markdown not escaped:\n%s", got)
	}
}

func TestStripMarkup(t *testing.T) {
	rich := FormatFree(digestPicks()[:1], digestNow)
	plain := StripMarkup(rich)

	for _, ch := range []string{"*", "_", "`", "\\"} {
		if strings.Contains(plain, ch) {
			t.Errorf("plain rendering still contains %q:\n%s", ch, plain)
		}
	}
	if !strings.Contains(plain, "Arsenal vs Chelsea") || !strings.Contains(plain, "FREE PICKS") {
		t.Errorf("content lost while stripping:\n%s", plain)
	}
}
