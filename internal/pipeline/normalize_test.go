package pipeline

import (
	"testing"
	"time"

	"github.com/elitepicks/picksbot/internal/oddsfeed"
)

func floatPtr(v float64) *float64 { return &v }

func h2hEvent(home, away string, homePrice, drawPrice, awayPrice float64) oddsfeed.RawEvent {
	return oddsfeed.RawEvent{
		ID:           "ev1",
		SportKey:     "soccer_epl",
		CommenceTime: "2026-03-11T19:00:00Z",
		HomeTeam:     home,
		AwayTeam:     away,
		Bookmakers: []oddsfeed.RawBookmaker{{
			Key:   "bet365",
			Title: "Bet365",
			Markets: []oddsfeed.RawMarket{{
				Key: oddsfeed.MarketH2H,
				Outcomes: []oddsfeed.RawOutcome{
					{Name: home, Price: homePrice},
					{Name: oddsfeed.OutcomeDraw, Price: drawPrice},
					{Name: away, Price: awayPrice},
				},
			}},
		}},
	}
}

func TestNormalizeMoneyline(t *testing.T) {
	events := []oddsfeed.RawEvent{h2hEvent("Arsenal", "Chelsea", 1.857, 3.4, 4.2)}
	picks := Normalize(events, NormalizeOptions{Bookmakers: []string{"bet365"}, MinOdds: 1.70})

	if len(picks) != 1 {
		t.Fatalf("got %d picks, want 1", len(picks))
	}
	p := picks[0]
	if p.Match != "Arsenal vs Chelsea" || p.Selection != "ML" || p.Bookmaker != "Bet365" {
		t.Errorf("unexpected pick %+v", p)
	}
	if p.Odds != 1.86 {
		t.Errorf("odds = %v, want rounded 1.86", p.Odds)
	}
	want := time.Date(2026, 3, 11, 19, 0, 0, 0, time.UTC)
	if !p.KickoffUTC.Equal(want) {
		t.Errorf("kickoff = %v, want %v", p.KickoffUTC, want)
	}
}

func TestNormalizeDropsBelowFloor(t *testing.T) {
	events := []oddsfeed.RawEvent{h2hEvent("Arsenal", "Chelsea", 1.45, 4.2, 6.5)}
	picks := Normalize(events, NormalizeOptions{MinOdds: 1.70})
	if len(picks) != 0 {
		t.Errorf("got %d picks, want 0 (home price below floor)", len(picks))
	}
}

func TestNormalizeDropsUnparseableKickoff(t *testing.T) {
	ev := h2hEvent("Arsenal", "Chelsea", 1.85, 3.4, 4.2)
	ev.CommenceTime = "tomorrow evening"
	if picks := Normalize([]oddsfeed.RawEvent{ev}, NormalizeOptions{MinOdds: 1.70}); len(picks) != 0 {
		t.Errorf("got %d picks, want 0", len(picks))
	}
}

func TestNormalizeDropsMissingTeam(t *testing.T) {
	ev := h2hEvent("Arsenal", "", 1.85, 3.4, 4.2)
	if picks := Normalize([]oddsfeed.RawEvent{ev}, NormalizeOptions{MinOdds: 1.70}); len(picks) != 0 {
		t.Errorf("got %d picks, want 0", len(picks))
	}
}

func TestNormalizeBookmakerAllowList(t *testing.T) {
	ev := h2hEvent("Arsenal", "Chelsea", 1.85, 3.4, 4.2)
	if picks := Normalize([]oddsfeed.RawEvent{ev}, NormalizeOptions{Bookmakers: []string{"bwin"}, MinOdds: 1.70}); len(picks) != 0 {
		t.Errorf("got %d picks from a disallowed bookmaker, want 0", len(picks))
	}
}

func TestNormalizeTripleMode(t *testing.T) {
	events := []oddsfeed.RawEvent{h2hEvent("Arsenal", "Chelsea", 2.10, 3.40, 3.60)}
	picks := Normalize(events, NormalizeOptions{MinOdds: 1.70, TripleMode: true})

	if len(picks) != 1 {
		t.Fatalf("got %d picks, want 1", len(picks))
	}
	if picks[0].Selection != "1X2 2.10/3.40/3.60" {
		t.Errorf("selection = %q", picks[0].Selection)
	}
	if picks[0].Odds != 2.10 {
		t.Errorf("odds = %v, want the home price", picks[0].Odds)
	}
}

func TestNormalizeTripleFloorOnLowest(t *testing.T) {
	// Home clears the floor but the draw does not; the whole row drops.
	events := []oddsfeed.RawEvent{h2hEvent("Arsenal", "Chelsea", 2.10, 1.50, 3.60)}
	if picks := Normalize(events, NormalizeOptions{MinOdds: 1.70, TripleMode: true}); len(picks) != 0 {
		t.Errorf("got %d picks, want 0", len(picks))
	}
}

func TestNormalizeTripleIncompleteDropped(t *testing.T) {
	ev := h2hEvent("Arsenal", "Chelsea", 2.10, 3.40, 3.60)
	ev.Bookmakers[0].Markets[0].Outcomes = ev.Bookmakers[0].Markets[0].Outcomes[:2] // no away price
	if picks := Normalize([]oddsfeed.RawEvent{ev}, NormalizeOptions{MinOdds: 1.70, TripleMode: true}); len(picks) != 0 {
		t.Errorf("got %d picks, want 0", len(picks))
	}
}

func TestNormalizeTotalsAndSpreads(t *testing.T) {
	ev := oddsfeed.RawEvent{
		ID:           "ev2",
		CommenceTime: "2026-03-11T19:00:00Z",
		HomeTeam:     "Bayern Munich",
		AwayTeam:     "Borussia Dortmund",
		Bookmakers: []oddsfeed.RawBookmaker{{
			Key:   "bwin",
			Title: "Bwin",
			Markets: []oddsfeed.RawMarket{
				{
					Key: oddsfeed.MarketTotals,
					Outcomes: []oddsfeed.RawOutcome{
						{Name: oddsfeed.OutcomeOver, Price: 1.95, Point: floatPtr(2.5)},
						{Name: oddsfeed.OutcomeUnder, Price: 1.85, Point: floatPtr(2.5)},
					},
				},
				{
					Key: oddsfeed.MarketSpreads,
					Outcomes: []oddsfeed.RawOutcome{
						{Name: "Bayern Munich", Price: 2.05, Point: floatPtr(-1.5)},
						{Name: "Borussia Dortmund", Price: 1.78, Point: floatPtr(1.5)},
					},
				},
			},
		}},
	}

	picks := Normalize([]oddsfeed.RawEvent{ev}, NormalizeOptions{MinOdds: 1.70})
	if len(picks) != 2 {
		t.Fatalf("got %d picks, want 2", len(picks))
	}
	if picks[0].Selection != "Over 2.5" {
		t.Errorf("totals selection = %q", picks[0].Selection)
	}
	if picks[1].Selection != "AH -1.5" {
		t.Errorf("spreads selection = %q", picks[1].Selection)
	}
}

func TestNormalizeDisplayOffset(t *testing.T) {
	events := []oddsfeed.RawEvent{h2hEvent("Arsenal", "Chelsea", 1.85, 3.4, 4.2)}

	picks := Normalize(events, NormalizeOptions{MinOdds: 1.70, DisplayUTCOffsetHours: 3})
	if len(picks) != 1 {
		t.Fatalf("got %d picks, want 1", len(picks))
	}
	if got := picks[0].KickoffLocal.Hour(); got != 22 {
		t.Errorf("local hour = %d, want 22", got)
	}

	picks = Normalize(events, NormalizeOptions{MinOdds: 1.70})
	if !picks[0].KickoffLocal.IsZero() {
		t.Error("zero offset must leave KickoffLocal unset")
	}
}
