package oddsfeed

// Raw provider records, one RawEvent per fixture with nested
// bookmaker → market → outcome quotes. CommenceTime stays a string so one
// malformed timestamp drops one event during normalization, not the batch.

type RawEvent struct {
	ID           string         `json:"id"`
	SportKey     string         `json:"sport_key"`
	SportTitle   string         `json:"sport_title"`
	CommenceTime string         `json:"commence_time"`
	HomeTeam     string         `json:"home_team"`
	AwayTeam     string         `json:"away_team"`
	Bookmakers   []RawBookmaker `json:"bookmakers"`
}

type RawBookmaker struct {
	Key     string      `json:"key"`
	Title   string      `json:"title"`
	Markets []RawMarket `json:"markets"`
}

type RawMarket struct {
	Key      string       `json:"key"`
	Outcomes []RawOutcome `json:"outcomes"`
}

// RawOutcome is one priced outcome. Point carries the totals/handicap line
// and is nil for h2h outcomes.
type RawOutcome struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Point *float64 `json:"point,omitempty"`
}

// Market keys as the provider reports them.
const (
	MarketH2H     = "h2h"
	MarketTotals  = "totals"
	MarketSpreads = "spreads"
)

// Outcome names used by totals markets.
const (
	OutcomeOver  = "Over"
	OutcomeUnder = "Under"
	OutcomeDraw  = "Draw"
)
