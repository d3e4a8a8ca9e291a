// Package extraction turns normalized resume text into structured profile
// fragments. Every extractor is a pure, total function: absent data yields
// an empty or zero result, never an error.
package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/talent-screen/internal/layout"
	"github.com/jonathan/talent-screen/internal/skills"
	"github.com/jonathan/talent-screen/internal/types"
)

var (
	experiencePattern  = regexp.MustCompile(`(?i)(\d+)[\s-]*years? of experience`)
	educationPattern   = regexp.MustCompile(`([A-Za-z\s]+) from ([A-Za-z\s]+) .*?(\d{4})`)
	workHistoryPattern = regexp.MustCompile(`([A-Za-z\s]+) - ([A-Za-z\s]+) \((.*?)\)`)
)

// Normalize joins the textual lines of a laid-out document into a single
// string in reading order. Non-text lines are skipped. The result is the
// NormalizedText every extractor operates on.
func Normalize(lines []layout.DocumentLine) string {
	var sb strings.Builder
	first := true
	for _, line := range lines {
		if line.Kind != layout.LineText {
			continue
		}
		if !first {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.Text)
		first = false
	}
	return sb.String()
}

// ExtractSkills returns the vocabulary entries found in text by
// case-insensitive substring containment, in vocabulary order, without
// duplicates. The output is always a subset of the vocabulary.
//
// Known limitation: substring matching over-matches. A vocabulary entry
// that is embedded in a longer term (e.g. "Java" inside "JavaScript")
// registers as present. Stored analytics depend on this loose behavior,
// so it is kept as the contract rather than tightened to word boundaries.
func ExtractSkills(text string, vocab skills.Vocabulary) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, len(vocab))
	seen := make(map[string]bool, len(vocab))
	for _, skill := range vocab {
		key := skills.Normalize(skill)
		if seen[key] {
			continue
		}
		if strings.Contains(lower, key) {
			seen[key] = true
			found = append(found, skill)
		}
	}
	return found
}

// ExtractExperienceYears returns the integer from the first occurrence of
// "<n> years of experience" (case-insensitive, optional hyphen or spaces
// before "years"), or 0 when no such phrase exists. Later occurrences are
// ignored.
func ExtractExperienceYears(text string) int {
	m := experiencePattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	years, err := strconv.Atoi(m[1])
	if err != nil || years < 0 {
		return 0
	}
	return years
}

// ExtractEducation returns education entries matched by the
// "<degree> from <institution> ... <year>" pattern, non-overlapping and
// left to right. Entries keep the order of first occurrence in the text,
// which is not necessarily chronological.
func ExtractEducation(text string) []types.Education {
	matches := educationPattern.FindAllStringSubmatch(text, -1)
	entries := make([]types.Education, 0, len(matches))
	for _, m := range matches {
		year, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}
		entries = append(entries, types.Education{
			Degree:      strings.TrimSpace(m[1]),
			Institution: strings.TrimSpace(m[2]),
			Year:        year,
		})
	}
	return entries
}

// ExtractWorkHistory returns work entries matched by the
// "<company> - <role> (<duration>)" pattern, non-overlapping and left to
// right. Responsibilities is always empty: the pattern carries no
// responsibility lines, a documented gap of the extraction rules.
func ExtractWorkHistory(text string) []types.WorkEntry {
	matches := workHistoryPattern.FindAllStringSubmatch(text, -1)
	entries := make([]types.WorkEntry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, types.WorkEntry{
			Company:          strings.TrimSpace(m[1]),
			Role:             strings.TrimSpace(m[2]),
			Duration:         strings.TrimSpace(m[3]),
			Responsibilities: []string{},
		})
	}
	return entries
}
