// Package oxford loads the Oxford 3000 listing page and extracts per-word
// metadata: CEFR level, parts of speech, dictionary links and pronunciation
// audio links.
package oxford

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// baseURL prefixes the relative hrefs and audio paths found in the listing.
const baseURL = "https://www.oxfordlearnersdictionaries.com"

// Metadata holds everything known about one headword of the listing. A
// headword can appear in several list items (one per part of speech); their
// attributes are merged.
type Metadata struct {
	// Level is the lowest CEFR level seen for the word (A1 < A2 < B1 < B2),
	// or empty when no item carries one.
	Level string
	// POS is the sorted, deduplicated set of part-of-speech labels.
	POS []string
	// URLs is the sorted, deduplicated set of absolute dictionary links.
	URLs []string
	// AudioUK and AudioUS are absolute mp3 links, first occurrence wins.
	AudioUK string
	AudioUS string
}

// levelRank orders CEFR levels so the lowest one can be kept; levels outside
// the Oxford 3000 range sort last.
func levelRank(level string) int {
	switch level {
	case "A1":
		return 0
	case "A2":
		return 1
	case "B1":
		return 2
	case "B2":
		return 3
	default:
		return 99
	}
}

// ParseMetadata extracts headword metadata from the listing HTML. Headwords
// are taken verbatim from the data-hw attribute; callers look them up by the
// same raw spelling used in the word list.
func ParseMetadata(r io.Reader) (map[string]*Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse listing html: %w", err)
	}

	entries := make(map[string]*Metadata)
	posSets := make(map[string]map[string]struct{})
	urlSets := make(map[string]map[string]struct{})

	doc.Find("li[data-hw]").Each(func(_ int, item *goquery.Selection) {
		word := strings.TrimSpace(item.AttrOr("data-hw", ""))
		if word == "" {
			return
		}

		meta := entries[word]
		if meta == nil {
			meta = &Metadata{}
			entries[word] = meta
			posSets[word] = make(map[string]struct{})
			urlSets[word] = make(map[string]struct{})
		}

		if level := strings.ToUpper(item.AttrOr("data-ox3000", "")); level != "" {
			if meta.Level == "" || levelRank(level) < levelRank(meta.Level) {
				meta.Level = level
			}
		}

		if pos := strings.TrimSpace(item.Find(".pos").First().Text()); pos != "" {
			posSets[word][pos] = struct{}{}
		}

		if href, ok := item.Find("a").First().Attr("href"); ok && href != "" {
			urlSets[word][href] = struct{}{}
		}

		item.Find(".sound").Each(func(_ int, pron *goquery.Selection) {
			src, ok := pron.Attr("data-src-mp3")
			if !ok || src == "" {
				return
			}
			switch {
			case pron.HasClass("pron-uk"):
				if meta.AudioUK == "" {
					meta.AudioUK = baseURL + src
				}
			case pron.HasClass("pron-us"):
				if meta.AudioUS == "" {
					meta.AudioUS = baseURL + src
				}
			}
		})
	})

	for word, meta := range entries {
		meta.POS = sortedKeys(posSets[word])
		urls := sortedKeys(urlSets[word])
		for i, u := range urls {
			urls[i] = baseURL + u
		}
		meta.URLs = urls
	}

	return entries, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
