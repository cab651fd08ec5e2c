package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Event is one fixture as reported by the odds provider.
// Identity across the pipeline is the (home, away) pair.
type Event struct {
	Home       string    `json:"home"`
	Away       string    `json:"away"`
	KickoffUTC time.Time `json:"kickoff_utc"`
}

// MarketQuote is one bookmaker's price for one outcome of one market.
type MarketQuote struct {
	Selection string  `json:"selection"`
	Price     float64 `json:"price"`
	Bookmaker string  `json:"bookmaker"`
}

// Pick is the canonical betting opportunity flowing through the pipeline:
// one fixture, one selection, one price, one bookmaker. Picks live in memory
// for a single run and carry no identity across runs.
type Pick struct {
	Match        string    `json:"match"`
	Home         string    `json:"home"`
	Away         string    `json:"away"`
	Selection    string    `json:"selection"`
	Odds         float64   `json:"odds"`
	Bookmaker    string    `json:"bookmaker"`
	KickoffUTC   time.Time `json:"kickoff_utc"`
	KickoffLocal time.Time `json:"kickoff_local,omitempty"`
	Rationale    string    `json:"rationale,omitempty"`
	Exclusive    bool      `json:"exclusive,omitempty"`
}

// DedupMode selects the key used to decide two Picks are "the same".
type DedupMode string

const (
	// DedupByMatch keeps the first pick seen per fixture. Used with the 1X2
	// triple representation (one row per match carrying all three prices).
	DedupByMatch DedupMode = "match"
	// DedupBySelection keeps the first pick seen per
	// (match, selection, bookmaker) tuple.
	DedupBySelection DedupMode = "selection"
)

// MatchLabel builds the display label for a fixture, e.g. "Liverpool vs Real Madrid".
func MatchLabel(home, away string) string {
	return collapseSpaces(home) + " vs " + collapseSpaces(away)
}

// DedupKey returns the uniqueness key for the configured mode.
// Comparison is case-insensitive and whitespace-normalized, the same way
// cross-source match keys are built.
func (p Pick) DedupKey(mode DedupMode) string {
	key := strings.ToLower(collapseSpaces(p.Match))
	if mode == DedupBySelection {
		key += "|" + strings.ToLower(collapseSpaces(p.Selection)) + "|" + strings.ToLower(collapseSpaces(p.Bookmaker))
	}
	return key
}

// String renders the one-line odds summary used in logs.
func (p Pick) String() string {
	return fmt.Sprintf("%s → %s @ %.2f (%s)", p.Match, p.Selection, p.Odds, p.Bookmaker)
}

// RoundPrice rounds a decimal price to 2 places. Prices are rounded once at
// ingestion, never again downstream.
func RoundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}

// LocalKickoff projects a UTC kickoff into a fixed-offset display zone.
func LocalKickoff(kickoff time.Time, offsetHours int) time.Time {
	if offsetHours == 0 {
		return time.Time{}
	}
	zone := time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*3600)
	return kickoff.In(zone)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
