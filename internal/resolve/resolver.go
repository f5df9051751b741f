// Package resolve implements the translation fallback cascade: exact index
// hits first, then spelling and morphology variants tried recursively, then
// a substring search over the raw dictionary lines for set phrases.
package resolve

import (
	"fmt"
	"strings"

	"github.com/wordforge/oxcards/internal/dict/freedict"
	"github.com/wordforge/oxcards/internal/dict/mueller"
	"github.com/wordforge/oxcards/internal/domain"
)

const (
	// punctCutset is stripped from both ends of a word when deriving the
	// bare-word candidate ("ok." resolves via "ok").
	punctCutset = ".;:!,?()"
	// phraseCutset is stripped from the text following a phrase match:
	// spaces, hyphen-minus, colon, semicolon, en dash and em dash.
	phraseCutset = " -:;–—"
)

// Resolver resolves English words to Russian translations over two parsed
// corpora. The Mueller index wins over FreeDict on exact hits; manual
// overrides win over both. Fields are exported so tests can substitute
// smaller rule tables.
type Resolver struct {
	Mueller  *mueller.Dict
	FreeDict *freedict.Dict
	Manual   map[string]string
	Variants map[string]string
	Suffixes []SuffixRule
}

// New returns a Resolver over the two corpora wired with the default rule
// tables.
func New(m *mueller.Dict, f *freedict.Dict) *Resolver {
	return &Resolver{
		Mueller:  m,
		FreeDict: f,
		Manual:   manualTranslations,
		Variants: americanToBritish,
		Suffixes: suffixRules,
	}
}

// Lookup resolves word to a translation. The input is lowercased first;
// every fallback strategy that produces a candidate word re-enters the
// cascade recursively, with a visited set guaranteeing termination. When
// all strategies are exhausted Lookup returns an error wrapping
// domain.ErrNotFound.
func (r *Resolver) Lookup(word string) (domain.Resolution, error) {
	return r.lookup(word, make(map[string]bool))
}

func (r *Resolver) lookup(word string, visited map[string]bool) (domain.Resolution, error) {
	lower := strings.ToLower(word)
	if visited[lower] {
		return domain.Resolution{}, fmt.Errorf("no translation for %q: %w", word, domain.ErrNotFound)
	}
	visited[lower] = true

	if text, ok := r.Manual[lower]; ok {
		return domain.Resolution{Translation: text, Source: "manual"}, nil
	}
	if entries := r.Mueller.Entries[lower]; len(entries) > 0 {
		e := entries[0]
		return domain.Resolution{Translation: Clean(e.Body), Source: "mueller:" + e.Head}, nil
	}
	if entries := r.FreeDict.Entries[lower]; len(entries) > 0 {
		e := entries[0]
		return domain.Resolution{Translation: Clean(e.Body), Source: "freedict:" + e.Head}, nil
	}

	// Punctuation variants: "ok." or "(well)" resolve via the bare word.
	if stripped := strings.Trim(lower, punctCutset); stripped != lower {
		if res, ok := r.retry(stripped, visited); ok {
			return res, nil
		}
	}

	// Numbered senses and phrases: "close 1" resolves via "close".
	if sp := strings.IndexByte(lower, ' '); sp >= 0 {
		if res, ok := r.retry(lower[:sp], visited); ok {
			return res, nil
		}
	}

	if variant, ok := r.Variants[lower]; ok {
		if res, ok := r.retry(variant, visited); ok {
			return res, nil
		}
	}

	// Hyphen and spacing variants, joined form first.
	if strings.Contains(lower, "-") {
		if res, ok := r.retry(strings.ReplaceAll(lower, "-", ""), visited); ok {
			return res, nil
		}
		if res, ok := r.retry(strings.ReplaceAll(lower, "-", " "), visited); ok {
			return res, nil
		}
	}
	if strings.Contains(lower, " ") {
		if res, ok := r.retry(strings.ReplaceAll(lower, " ", ""), visited); ok {
			return res, nil
		}
	}

	for _, rule := range r.Suffixes {
		if !strings.HasSuffix(lower, rule.Suffix) || len(lower) <= len(rule.Suffix)+2 {
			continue
		}
		candidate := lower[:len(lower)-len(rule.Suffix)] + rule.Replacement
		if res, ok := r.retry(candidate, visited); ok {
			return res, nil
		}
	}

	// Last resort: phrasal verbs and set phrases live inside Mueller article
	// bodies rather than under their own headwords.
	if res, ok := r.searchLines(lower); ok {
		return res, nil
	}

	return domain.Resolution{}, fmt.Errorf("no translation for %q: %w", word, domain.ErrNotFound)
}

// retry re-enters the cascade with a derived candidate. A failed branch or
// an empty translation reports false so the caller moves on to the next
// strategy.
func (r *Resolver) retry(candidate string, visited map[string]bool) (domain.Resolution, bool) {
	res, err := r.lookup(candidate, visited)
	if err != nil || res.Translation == "" {
		return domain.Resolution{}, false
	}
	return res, true
}

// searchLines scans the Mueller line stream for the first line containing
// phrase as a substring, case-insensitively. The translation is the text
// after the match with leading and trailing dash punctuation stripped; a
// line where nothing usable follows the match is skipped.
func (r *Resolver) searchLines(phrase string) (domain.Resolution, bool) {
	for _, line := range r.Mueller.Lines {
		idx := strings.Index(strings.ToLower(line), phrase)
		if idx < 0 {
			continue
		}
		// The offset is from the lowered line, which can be longer than the
		// original: case mapping is not length-preserving for every rune.
		// Clamping keeps the slice in bounds; an overlong match degrades to
		// an empty remainder and the scan moves on.
		end := idx + len(phrase)
		if end > len(line) {
			end = len(line)
		}
		remainder := strings.Trim(line[end:], phraseCutset)
		if cleaned := Clean(remainder); cleaned != "" {
			return domain.Resolution{Translation: cleaned, Source: "mueller:line"}, true
		}
	}
	return domain.Resolution{}, false
}
