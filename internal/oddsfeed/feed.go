package oddsfeed

import (
	"context"
	"log/slog"
	"sync"
)

// Feed fans one provider client out over the configured leagues.
type Feed struct {
	client  *Client
	leagues []string
}

func NewFeed(client *Client, leagues []string) *Feed {
	return &Feed{client: client, leagues: leagues}
}

// FetchAll queries every league in parallel and merges the results. A league
// that fails is logged and skipped; the others still contribute. Merge order
// between leagues is unspecified; the pipeline sorts by kickoff afterwards.
func (f *Feed) FetchAll(ctx context.Context) []RawEvent {
	if len(f.leagues) == 0 {
		return nil
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		merged []RawEvent
	)

	for _, league := range f.leagues {
		league := league
		wg.Add(1)
		go func() {
			defer wg.Done()

			events, err := f.client.FetchLeagueOdds(ctx, league)
			if err != nil {
				if ctx.Err() == nil {
					slog.Warn("League fetch failed, skipping", "league", league, "error", err)
				}
				return
			}

			mu.Lock()
			merged = append(merged, events...)
			mu.Unlock()

			slog.Debug("League fetched", "league", league, "events", len(events))
		}()
	}

	wg.Wait()
	return merged
}
