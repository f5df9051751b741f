// Package builder orchestrates the dataset build: it parses both dictionary
// corpora, resolves every word of the target list to a Russian translation,
// merges the Oxford listing metadata, and writes the cards file.
package builder

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/wordforge/oxcards/internal/config"
	"github.com/wordforge/oxcards/internal/dict/freedict"
	"github.com/wordforge/oxcards/internal/dict/mueller"
	"github.com/wordforge/oxcards/internal/domain"
	"github.com/wordforge/oxcards/internal/oxford"
	"github.com/wordforge/oxcards/internal/resolve"
)

// Result holds dataset build statistics.
type Result struct {
	TotalWords int
	Resolved   int
	Unresolved int
	// BySource counts resolved words per strategy family: "manual",
	// "mueller" or "freedict".
	BySource map[string]int
}

// HasUnresolved reports whether any word of the list failed to resolve.
func (r Result) HasUnresolved() bool {
	return r.Unresolved > 0
}

// Run builds the flashcard dataset. Unresolved words are logged and skipped
// rather than aborting the build; the caller decides what the presence of
// unresolved words means for the exit code. Cards keep the word list order.
func Run(ctx context.Context, cfg *config.Config, log *slog.Logger) (Result, error) {
	result := Result{BySource: make(map[string]int)}

	log.Info("parsing mueller corpus", slog.String("path", cfg.Corpora.MuellerPath))
	m, err := mueller.Parse(cfg.Corpora.MuellerPath)
	if err != nil {
		return result, fmt.Errorf("parse mueller: %w", err)
	}
	log.Info("mueller corpus parsed",
		slog.Int("entries", m.Stats.Entries),
		slog.Int("unique_words", m.Stats.UniqueWords),
		slog.Int("lines", len(m.Lines)),
	)

	log.Info("parsing freedict corpus", slog.String("path", cfg.Corpora.FreeDictPath))
	fd, err := freedict.Parse(cfg.Corpora.FreeDictPath)
	if err != nil {
		return result, fmt.Errorf("parse freedict: %w", err)
	}
	log.Info("freedict corpus parsed",
		slog.Int("entries", fd.Stats.Entries),
		slog.Int("unique_words", fd.Stats.UniqueWords),
	)

	words, err := oxford.ReadWordList(cfg.Build.WordListPath)
	if err != nil {
		return result, fmt.Errorf("load word list: %w", err)
	}
	result.TotalWords = len(words)
	log.Info("word list loaded", slog.Int("count", len(words)))

	fetcher := oxford.NewFetcher(cfg.Oxford.HTMLURL, cfg.Oxford.HTMLPath, cfg.Oxford.FetchTimeout, log)
	metadata, err := fetcher.Load(ctx)
	if err != nil {
		return result, fmt.Errorf("load oxford metadata: %w", err)
	}
	log.Info("oxford metadata loaded", slog.Int("words", len(metadata)))

	resolver := resolve.New(m, fd)

	cards := make([]domain.Card, 0, len(words))
	for _, word := range words {
		res, err := resolver.Lookup(word)
		if err != nil {
			log.Warn("word not resolved", slog.String("word", word))
			result.Unresolved++
			continue
		}
		result.Resolved++
		result.BySource[sourceFamily(res.Source)]++
		cards = append(cards, newCard(word, res, metadata[word]))
	}

	if err := writeCards(cfg.Build.OutputPath, cards); err != nil {
		return result, err
	}

	log.Info("dataset written",
		slog.String("path", cfg.Build.OutputPath),
		slog.Int("cards", len(cards)),
		slog.Int("resolved", result.Resolved),
		slog.Int("unresolved", result.Unresolved),
	)
	return result, nil
}

// sourceFamily reduces a source tag to its strategy family: "mueller:Head"
// and "mueller:line" both count as "mueller".
func sourceFamily(source string) string {
	if i := strings.IndexByte(source, ':'); i >= 0 {
		return source[:i]
	}
	return source
}

// newCard merges a resolution with the listing metadata for the word. Cards
// for words without metadata carry empty arrays and null level/audio.
func newCard(word string, res domain.Resolution, meta *oxford.Metadata) domain.Card {
	card := domain.Card{
		Word:        word,
		Translation: res.Translation,
		Source:      res.Source,
		POS:         []string{},
		OxfordURLs:  []string{},
	}
	if meta == nil {
		return card
	}
	if meta.Level != "" {
		level := meta.Level
		card.Level = &level
	}
	if len(meta.POS) > 0 {
		card.POS = meta.POS
	}
	if len(meta.URLs) > 0 {
		card.OxfordURLs = meta.URLs
	}
	if meta.AudioUK != "" {
		uk := meta.AudioUK
		card.Audio.UK = &uk
	}
	if meta.AudioUS != "" {
		us := meta.AudioUS
		card.Audio.US = &us
	}
	return card
}

func writeCards(path string, cards []domain.Card) error {
	data, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cards: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write cards: %w", err)
	}
	return nil
}
