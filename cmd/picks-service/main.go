package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/elitepicks/picksbot/internal/annotation"
	"github.com/elitepicks/picksbot/internal/dispatch"
	"github.com/elitepicks/picksbot/internal/oddsfeed"
	"github.com/elitepicks/picksbot/internal/pipeline"
	"github.com/elitepicks/picksbot/internal/pkg/config"
	"github.com/elitepicks/picksbot/internal/pkg/logging"
)

const defaultConfigPath = "configs/production.yaml"

// dryRunDeliverer logs digest bodies instead of posting them. Used for
// rehearsing a run against live odds without touching the channels.
type dryRunDeliverer struct{}

func (dryRunDeliverer) Deliver(_ context.Context, channel, body string) error {
	slog.Info("Dry run: digest not sent", "channel", channel, "length", len(body))
	os.Stdout.WriteString("--- " + channel + " ---\n" + body + "\n")
	return nil
}

func main() {
	configPath, dryRun := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", "path", configPath,
			"status", pipeline.StatusAbortedConfig, "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging, "picks-service")
	slog.Info("Config loaded", "path", configPath,
		"leagues", len(cfg.Provider.Leagues), "dry_run", dryRun)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, cancelling run...")
		cancel()
	}()

	runner, err := buildRunner(cfg, dryRun)
	if err != nil {
		slog.Error("Failed to initialize services",
			"status", pipeline.StatusAbortedConfig, "error", err)
		os.Exit(1)
	}

	report := runner.Run(ctx)
	slog.Info("Run finished", "status", report.Status,
		"candidates", report.Candidates,
		"free_sent", report.FreeSent, "premium_sent", report.PremiumSent)

	if report.Status != pipeline.StatusSent || !(report.FreeSent || report.PremiumSent) {
		os.Exit(1)
	}
}

func parseFlags() (configPath string, dryRun bool) {
	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.BoolVar(&dryRun, "dry-run", false, "Print digests to stdout instead of sending to Telegram")
	flag.Parse()
	return configPath, dryRun
}

func buildRunner(cfg *config.Config, dryRun bool) (*pipeline.Runner, error) {
	feed := oddsfeed.NewFeed(oddsfeed.NewClient(cfg.Provider), cfg.Provider.Leagues)

	llm := annotation.NewOpenAIClient(cfg.Annotation)
	annotator := annotation.NewAnnotator(llm, cfg.Annotation.RationaleMaxTokens)

	var ranker pipeline.Ranker
	if !cfg.Annotation.DisableRanking {
		ranker = annotation.NewRanker(llm, cfg.Pipeline.MarqueeClubs)
	}

	var deliverer pipeline.Deliverer
	if dryRun {
		deliverer = dryRunDeliverer{}
	} else {
		sender, err := dispatch.NewTelegramSender(cfg.Telegram.BotToken)
		if err != nil {
			return nil, err
		}
		deliverer = dispatch.NewDispatcher(sender, cfg.Telegram.SendInterval)
	}

	return pipeline.NewRunner(cfg, feed, ranker, annotator, deliverer), nil
}
