// Package skills provides the canonical skill vocabulary and the
// case-normalized set operations used by extraction and matching.
package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Vocabulary is the ordered, fixed set of canonical skill names used as
// the matching dictionary. It is loaded once at process start and is
// read-only afterwards; changing it invalidates any extraction results
// computed under the old vocabulary.
type Vocabulary []string

// Default returns the built-in vocabulary used when no vocabulary file
// is configured.
func Default() Vocabulary {
	return Vocabulary{
		"JavaScript",
		"Python",
		"Java",
		"React",
		"Node.js",
		"AWS",
		"SQL",
		"Machine Learning",
	}
}

// Load reads a vocabulary from a JSON array file. Entries are trimmed;
// empty entries and case-insensitive duplicates are dropped, first
// occurrence wins so the file's order is preserved.
func Load(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}

	vocab := make(Vocabulary, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, entry := range raw {
		name := strings.TrimSpace(entry)
		if name == "" {
			continue
		}
		key := Normalize(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		vocab = append(vocab, name)
	}

	if len(vocab) == 0 {
		return nil, fmt.Errorf("vocabulary file %s contains no entries", path)
	}
	return vocab, nil
}

// Normalize returns the canonical membership key for a skill name.
// All set membership tests in this module go through this.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
