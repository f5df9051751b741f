// Command cardgen builds the flashcard dataset: it resolves every word of the
// Oxford 3000 list to a Russian translation over the Mueller and FreeDict
// corpora, merges the listing metadata (CEFR level, parts of speech,
// pronunciation audio), and writes the cards JSON file.
//
// Flags:
//
//	--config  path to YAML config file (sets CONFIG_PATH)
//
// Exit codes: 0 = success, 1 = error or unresolved words.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/wordforge/oxcards/internal/app"
	"github.com/wordforge/oxcards/internal/app/builder"
	"github.com/wordforge/oxcards/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	if *configFlag != "" {
		os.Setenv("CONFIG_PATH", *configFlag)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting dataset build", slog.String("version", app.BuildVersion()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	result, err := builder.Run(ctx, cfg, logger)
	if err != nil {
		logger.Error("build failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if result.HasUnresolved() {
		logger.Warn("build completed with unresolved words",
			slog.Int("unresolved", result.Unresolved),
			slog.Int("resolved", result.Resolved),
		)
		os.Exit(1)
	}

	logger.Info("build completed successfully", slog.Int("cards", result.Resolved))
}
