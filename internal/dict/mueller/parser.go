// Package mueller parses the Mueller English-Russian dictionary (plain-text
// dictd export) into an in-memory headword index.
// Pure function: file path in, domain structs out.
package mueller

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/wordforge/oxcards/internal/domain"
)

// Dict holds the parsed Mueller dictionary: a headword index plus the flat
// line stream used for phrase searches.
type Dict struct {
	// Entries maps lowercased headwords to their articles in file order.
	Entries map[string][]domain.DictionaryEntry
	// Lines is every trimmed, non-empty line of the file in order, headword
	// and body lines alike. Substring searches for phrasal entries scan it.
	Lines []string
	Stats Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines  int
	BlankLines  int
	Entries     int
	UniqueWords int
}

// Parse reads a Mueller dictd export and returns the headword index.
//
// The format is line-oriented: a line with no leading whitespace starts a new
// article and carries the headword; indented lines below it form the article
// body. Truly empty lines are ignored and never close an article, so bodies
// may span blank-separated blocks. Whitespace-only lines count as indented
// and contribute an empty body line.
func Parse(filePath string) (*Dict, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	d := &Dict{
		Entries: make(map[string][]domain.DictionaryEntry),
	}

	var (
		head string
		body []string
	)

	// An article is recorded only when its headword has at least one body
	// line; a headword immediately followed by another headword is dropped.
	flush := func() {
		if head == "" || len(body) == 0 {
			return
		}
		key := strings.ToLower(head)
		d.Entries[key] = append(d.Entries[key], domain.DictionaryEntry{
			Head: head,
			Body: strings.Join(body, "\n"),
		})
		d.Stats.Entries++
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		d.Stats.TotalLines++
		line := scanner.Text()

		if line == "" {
			d.Stats.BlankLines++
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			d.Lines = append(d.Lines, trimmed)
		}

		if line[0] == ' ' || line[0] == '\t' {
			// Body lines are stored trimmed; a whitespace-only line adds an
			// empty one. Indented lines before the first headword have no
			// article to attach to and are discarded by flush.
			body = append(body, trimmed)
			continue
		}

		flush()
		head = trimmed
		body = nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}

	flush()
	d.Stats.UniqueWords = len(d.Entries)

	return d, nil
}
