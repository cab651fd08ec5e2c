package pipeline

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/elitepicks/picksbot/internal/oddsfeed"
	"github.com/elitepicks/picksbot/internal/pkg/models"
)

// NormalizeOptions fixes the admission policy for raw provider records.
type NormalizeOptions struct {
	// Bookmakers is the allow-list; records from any other book are ignored.
	Bookmakers []string
	// MinOdds is the admission floor. For 1X2 triples the floor applies to
	// the lowest of the three prices.
	MinOdds float64
	// TripleMode emits one 1X2 row per (match, bookmaker) carrying all three
	// prices instead of per-selection picks. Pairs with match-only dedup.
	TripleMode bool
	// DisplayUTCOffsetHours projects kickoff into a fixed display zone when
	// non-zero.
	DisplayUTCOffsetHours int
}

// Normalize converts raw provider events into canonical Picks. Malformed
// records are dropped, never partially emitted: an event without a parseable
// kickoff is skipped whole, a 1X2 triple missing a side is skipped whole.
// Prices are rounded to 2 decimals here and nowhere else.
func Normalize(events []oddsfeed.RawEvent, opts NormalizeOptions) []models.Pick {
	allowed := make(map[string]bool, len(opts.Bookmakers))
	for _, b := range opts.Bookmakers {
		allowed[strings.ToLower(b)] = true
	}

	var picks []models.Pick
	for _, ev := range events {
		kickoff, err := time.Parse(time.RFC3339, ev.CommenceTime)
		if err != nil || kickoff.IsZero() {
			slog.Debug("Dropping event without parseable kickoff",
				"home", ev.HomeTeam, "away", ev.AwayTeam, "commence_time", ev.CommenceTime)
			continue
		}
		if ev.HomeTeam == "" || ev.AwayTeam == "" {
			continue
		}
		kickoff = kickoff.UTC()

		for _, bk := range ev.Bookmakers {
			if len(allowed) > 0 && !allowed[strings.ToLower(bk.Key)] && !allowed[strings.ToLower(bk.Title)] {
				continue
			}
			picks = append(picks, normalizeBookmaker(ev, bk, kickoff, opts)...)
		}
	}
	return picks
}

func normalizeBookmaker(ev oddsfeed.RawEvent, bk oddsfeed.RawBookmaker, kickoff time.Time, opts NormalizeOptions) []models.Pick {
	var out []models.Pick
	for _, mkt := range bk.Markets {
		var pick models.Pick
		var ok bool

		switch mkt.Key {
		case oddsfeed.MarketH2H:
			if opts.TripleMode {
				pick, ok = buildTriple(ev, bk, mkt, opts.MinOdds)
			} else {
				pick, ok = buildMoneyline(ev, bk, mkt, opts.MinOdds)
			}
		case oddsfeed.MarketTotals:
			pick, ok = buildTotalsOver(ev, bk, mkt, opts.MinOdds)
		case oddsfeed.MarketSpreads:
			pick, ok = buildHandicap(ev, bk, mkt, opts.MinOdds)
		default:
			continue
		}
		if !ok {
			continue
		}

		pick.Match = models.MatchLabel(ev.HomeTeam, ev.AwayTeam)
		pick.Home = ev.HomeTeam
		pick.Away = ev.AwayTeam
		pick.Bookmaker = bk.Title
		if pick.Bookmaker == "" {
			pick.Bookmaker = bk.Key
		}
		pick.KickoffUTC = kickoff
		pick.KickoffLocal = models.LocalKickoff(kickoff, opts.DisplayUTCOffsetHours)
		out = append(out, pick)
	}
	return out
}

// buildMoneyline emits the home side of a h2h market as an "ML" pick.
func buildMoneyline(ev oddsfeed.RawEvent, _ oddsfeed.RawBookmaker, mkt oddsfeed.RawMarket, minOdds float64) (models.Pick, bool) {
	for _, o := range mkt.Outcomes {
		if o.Name != ev.HomeTeam {
			continue
		}
		price := models.RoundPrice(o.Price)
		if price < minOdds || price < 1.0 {
			return models.Pick{}, false
		}
		return models.Pick{Selection: "ML", Odds: price}, true
	}
	return models.Pick{}, false
}

// buildTriple emits the full 1X2 row for one bookmaker. All three outcomes
// must be present; an incomplete triple is dropped entirely.
func buildTriple(ev oddsfeed.RawEvent, _ oddsfeed.RawBookmaker, mkt oddsfeed.RawMarket, minOdds float64) (models.Pick, bool) {
	var home, draw, away float64
	for _, o := range mkt.Outcomes {
		price := models.RoundPrice(o.Price)
		switch o.Name {
		case ev.HomeTeam:
			home = price
		case ev.AwayTeam:
			away = price
		case oddsfeed.OutcomeDraw:
			draw = price
		}
	}
	if home < 1.0 || draw < 1.0 || away < 1.0 {
		return models.Pick{}, false
	}
	lowest := home
	if draw < lowest {
		lowest = draw
	}
	if away < lowest {
		lowest = away
	}
	if lowest < minOdds {
		return models.Pick{}, false
	}
	return models.Pick{
		Selection: fmt.Sprintf("1X2 %.2f/%.2f/%.2f", home, draw, away),
		Odds:      home,
	}, true
}

// buildTotalsOver emits the Over side of a totals market, e.g. "Over 2.5".
func buildTotalsOver(_ oddsfeed.RawEvent, _ oddsfeed.RawBookmaker, mkt oddsfeed.RawMarket, minOdds float64) (models.Pick, bool) {
	for _, o := range mkt.Outcomes {
		if o.Name != oddsfeed.OutcomeOver || o.Point == nil {
			continue
		}
		price := models.RoundPrice(o.Price)
		if price < minOdds || price < 1.0 {
			return models.Pick{}, false
		}
		return models.Pick{Selection: fmt.Sprintf("Over %.1f", *o.Point), Odds: price}, true
	}
	return models.Pick{}, false
}

// buildHandicap emits the home side of a spreads market, e.g. "AH -1.5".
func buildHandicap(ev oddsfeed.RawEvent, _ oddsfeed.RawBookmaker, mkt oddsfeed.RawMarket, minOdds float64) (models.Pick, bool) {
	for _, o := range mkt.Outcomes {
		if o.Name != ev.HomeTeam || o.Point == nil {
			continue
		}
		price := models.RoundPrice(o.Price)
		if price < minOdds || price < 1.0 {
			return models.Pick{}, false
		}
		return models.Pick{Selection: fmt.Sprintf("AH %+.1f", *o.Point), Odds: price}, true
	}
	return models.Pick{}, false
}
