package oxford

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ReadWordList reads the target word list: a JSON array of headword strings.
// Entries are trimmed and blank ones dropped; order is preserved because the
// output dataset keeps the list's ordering.
func ReadWordList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode word list: %w", err)
	}

	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}
