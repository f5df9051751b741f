// Package freedict parses the FreeDict eng-rus dictionary (plain-text dictd
// export) into an in-memory headword index.
// Pure function: file path in, domain structs out.
package freedict

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/wordforge/oxcards/internal/domain"
)

// Dict holds the parsed FreeDict dictionary keyed by lowercased headword.
type Dict struct {
	Entries map[string][]domain.DictionaryEntry
	Stats   Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines  int
	Entries     int
	UniqueWords int
}

// Parse reads a FreeDict dictd export and returns the headword index.
//
// After dropping blank lines the file alternates headword and translation
// lines. A headword line carries the word followed by a slash-delimited
// phonetic transcription; the next line is the translation. Metadata blocks
// ("00-database-*") and label lines ending with a colon are skipped, as are
// translations that themselves end with a colon (continuation labels).
func Parse(filePath string) (*Dict, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	d := &Dict{
		Entries: make(map[string][]domain.DictionaryEntry),
	}

	var lines []string

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		d.Stats.TotalLines++
		if trimmed := strings.TrimSpace(scanner.Text()); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}

	// The last line can never start a pair, so scanning stops one short.
	for i := 0; i < len(lines)-1; {
		head := lines[i]

		if strings.HasPrefix(head, "00-database") || strings.HasSuffix(head, ":") {
			i++
			continue
		}

		if !strings.Contains(head, "/") {
			i++
			continue
		}

		// Headword is everything before the first space; the transcription
		// and any grammar notes after it are discarded.
		word := head
		if sp := strings.IndexByte(head, ' '); sp >= 0 {
			word = head[:sp]
		}

		translation := lines[i+1]
		if strings.HasSuffix(translation, ":") {
			// A label line follows instead of a translation. Advance one
			// line; the label is then skipped and this headword is dropped.
			i++
			continue
		}

		key := strings.ToLower(word)
		d.Entries[key] = append(d.Entries[key], domain.DictionaryEntry{
			Head: word,
			Body: translation,
		})
		d.Stats.Entries++
		i += 2
	}

	d.Stats.UniqueWords = len(d.Entries)

	return d, nil
}
