package pipeline

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/elitepicks/picksbot/internal/digest"
	"github.com/elitepicks/picksbot/internal/oddsfeed"
	"github.com/elitepicks/picksbot/internal/pkg/config"
	"github.com/elitepicks/picksbot/internal/pkg/models"
)

// Status is the terminal state of one run.
type Status string

const (
	// StatusSent means the run reached dispatch; per-tier flags in the
	// Report say what was actually delivered.
	StatusSent Status = "sent"
	// StatusAbortedInsufficientData means fewer than the minimum picks
	// survived filtering; no dispatch was attempted.
	StatusAbortedInsufficientData Status = "aborted_insufficient_data"
	// StatusAbortedConfig means required configuration was missing; no
	// fetch was attempted. Produced by the entrypoint, not by Run.
	StatusAbortedConfig Status = "aborted_config"
)

// Report summarizes one run.
type Report struct {
	Status      Status
	Candidates  int
	FreeSent    bool
	PremiumSent bool
}

// Fetcher is the odds provider boundary.
type Fetcher interface {
	FetchAll(ctx context.Context) []oddsfeed.RawEvent
}

// Ranker reorders candidates by estimated importance. It never fails; on any
// trouble it returns the input order.
type Ranker interface {
	Rank(ctx context.Context, picks []models.Pick) []models.Pick
}

// Annotator supplies a one-sentence, already-sanitized rationale per pick.
type Annotator interface {
	Rationale(ctx context.Context, p models.Pick) string
}

// Deliverer posts one tier body to one channel, handling the rich/plain
// fallback internally.
type Deliverer interface {
	Deliver(ctx context.Context, channel, body string) error
}

// Runner wires the stages of one pipeline run. All policy comes from the
// config value handed in at construction; Run reads no ambient state.
type Runner struct {
	cfg      *config.Config
	fetch    Fetcher
	rank     Ranker
	annotate Annotator
	deliver  Deliverer
	now      func() time.Time
}

func NewRunner(cfg *config.Config, fetch Fetcher, rank Ranker, annotate Annotator, deliver Deliverer) *Runner {
	return &Runner{
		cfg:      cfg,
		fetch:    fetch,
		rank:     rank,
		annotate: annotate,
		deliver:  deliver,
		now:      time.Now,
	}
}

// WithClock overrides the run clock. Tests only.
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

// Run executes one pass of
// Fetch → Normalize → Filter → Dedup → Rank → Distribute → Annotate →
// Format → Dispatch. Per-league and per-item failures are absorbed along the
// way; only insufficient total data stops the run.
func (r *Runner) Run(ctx context.Context) Report {
	now := r.now().UTC()
	cfg := r.cfg.Pipeline

	raw := r.fetch.FetchAll(ctx)
	candidates := r.prepare(Normalize(raw, NormalizeOptions{
		Bookmakers:            r.cfg.Provider.Bookmakers,
		MinOdds:               cfg.MinOdds,
		TripleMode:            cfg.DedupMode == string(models.DedupByMatch),
		DisplayUTCOffsetHours: cfg.DisplayUTCOffsetHours,
	}), now)
	slog.Info("Candidates assembled", "raw_events", len(raw), "candidates", len(candidates))

	if len(candidates) < cfg.MinPicks && cfg.UseSampleFallback {
		slog.Warn("Too few candidates, falling back to sample set", "candidates", len(candidates))
		candidates = r.prepare(oddsfeed.SamplePicks(now), now)
	}
	if len(candidates) < cfg.MinPicks {
		slog.Warn("Run aborted: insufficient candidates",
			"candidates", len(candidates), "min_picks", cfg.MinPicks)
		return Report{Status: StatusAbortedInsufficientData, Candidates: len(candidates)}
	}

	ranked := candidates
	if r.rank != nil {
		ranked = r.rank.Rank(ctx, candidates)
	}
	if len(ranked) > cfg.MaxPicks {
		ranked = ranked[:cfg.MaxPicks]
	}

	tiers := Distribute(ranked)
	r.annotateTiers(ctx, &tiers)

	freeBody := digest.FormatFree(tiers.Free, now)
	premiumBody := digest.FormatPremium(tiers.Premium, cfg.PremiumCTA)

	report := Report{Status: StatusSent, Candidates: len(ranked)}
	report.FreeSent = r.deliverTier(ctx, "free", r.cfg.Telegram.FreeChannel, freeBody)
	report.PremiumSent = r.deliverTier(ctx, "premium", r.cfg.Telegram.PremiumChannel, premiumBody)
	return report
}

// prepare applies the freshness, uniqueness, ordering and cap invariants to
// a candidate set. Used for both provider data and the sample fallback.
func (r *Runner) prepare(picks []models.Pick, now time.Time) []models.Pick {
	cfg := r.cfg.Pipeline
	picks = FilterWindow(picks, Window{Now: now, Horizon: cfg.Horizon(), EndOfDay: cfg.EndOfDay})
	picks = Dedup(picks, models.DedupMode(cfg.DedupMode))
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].KickoffUTC.Before(picks[j].KickoffUTC)
	})
	if len(picks) > cfg.MaxPicks {
		picks = picks[:cfg.MaxPicks]
	}
	return picks
}

// annotateTiers fills rationales after distribution. Free picks shared with
// the premium list reuse the premium rationale instead of a second call.
func (r *Runner) annotateTiers(ctx context.Context, tiers *Tiers) {
	if r.annotate == nil {
		return
	}
	mode := models.DedupMode(r.cfg.Pipeline.DedupMode)

	byKey := make(map[string]string, len(tiers.Premium))
	for i := range tiers.Premium {
		p := &tiers.Premium[i]
		p.Rationale = r.annotate.Rationale(ctx, *p)
		byKey[p.DedupKey(mode)] = p.Rationale
	}
	for i := range tiers.Free {
		p := &tiers.Free[i]
		if text, ok := byKey[p.DedupKey(mode)]; ok {
			p.Rationale = text
			continue
		}
		p.Rationale = r.annotate.Rationale(ctx, *p)
	}
}

func (r *Runner) deliverTier(ctx context.Context, tier, channel, body string) bool {
	if err := r.deliver.Deliver(ctx, channel, body); err != nil {
		slog.Error("Tier delivery failed", "tier", tier, "channel", channel, "error", err)
		return false
	}
	slog.Info("Tier delivered", "tier", tier, "channel", channel)
	return true
}
