// Command lookup resolves English words against the dictionary corpora and
// prints each translation with its source tag. It is a debugging aid for
// inspecting how a word travels through the fallback cascade.
//
// Usage:
//
//	lookup [--config path] word [word ...]
//
// Exit codes: 0 = all words resolved, 1 = unresolved word or error,
// 2 = usage error.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/wordforge/oxcards/internal/app"
	"github.com/wordforge/oxcards/internal/config"
	"github.com/wordforge/oxcards/internal/dict/freedict"
	"github.com/wordforge/oxcards/internal/dict/mueller"
	"github.com/wordforge/oxcards/internal/resolve"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	words := flag.Args()
	if len(words) == 0 {
		fmt.Fprintln(os.Stderr, "usage: lookup [--config path] word [word ...]")
		os.Exit(2)
	}

	if *configFlag != "" {
		os.Setenv("CONFIG_PATH", *configFlag)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	m, err := mueller.Parse(cfg.Corpora.MuellerPath)
	if err != nil {
		logger.Error("parse mueller corpus", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fd, err := freedict.Parse(cfg.Corpora.FreeDictPath)
	if err != nil {
		logger.Error("parse freedict corpus", slog.String("error", err.Error()))
		os.Exit(1)
	}

	resolver := resolve.New(m, fd)

	missed := false
	for _, word := range words {
		res, err := resolver.Lookup(word)
		if err != nil {
			fmt.Printf("%s: not found\n", word)
			missed = true
			continue
		}
		fmt.Printf("%s [%s]: %s\n", word, res.Source, res.Translation)
	}
	if missed {
		os.Exit(1)
	}
}
