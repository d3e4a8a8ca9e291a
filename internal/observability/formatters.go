// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-screen/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func joinTruncated(items []string, limit int) string {
	joined := strings.Join(items, ", ")
	if len(joined) > limit {
		joined = joined[:limit-3] + "..."
	}
	return joined
}

// PrintProfile outputs a human-readable summary of an extracted
// candidate profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Experience:  %d years\n", profile.ExperienceYears))
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(profile.Education), 3)
		for i := 0; i < count; i++ {
			edu := profile.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s (%d)\n", edu.Degree, edu.Institution, edu.Year))
		}
		if len(profile.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Education)-3))
		}
		sb.WriteString("\n")
	}

	if len(profile.WorkHistory) > 0 {
		sb.WriteString("Work History:\n")
		count := min(len(profile.WorkHistory), 3)
		for i := 0; i < count; i++ {
			w := profile.WorkHistory[i]
			sb.WriteString(fmt.Sprintf("  • %s at %s (%s)\n", w.Role, w.Company, w.Duration))
		}
		if len(profile.WorkHistory) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.WorkHistory)-3))
		}
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the ranked job matches with scores and skill sets.
func (p *Printer) PrintMatches(matches []types.MatchResult) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs matched: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, m.Title))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", m.MatchScore))
		if len(m.MatchedSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Matched: %s\n", joinTruncated(m.MatchedSkills, 40)))
		}
		if len(m.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", joinTruncated(m.MissingSkills, 40)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(matches)-maxItemsToShow))
	}

	p.printBox("RANKED JOB MATCHES", sb.String())
}

// PrintAnalytics outputs an interview analytics summary.
func (p *Printer) PrintAnalytics(summary *types.AnalyticsSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Questions:      %d\n", summary.TotalQuestions))
	sb.WriteString(fmt.Sprintf("Answered:       %d\n", summary.AnsweredQuestions))
	sb.WriteString(fmt.Sprintf("Response rate:  %.0f%%\n", summary.ResponseRatePercent))
	if summary.OverallScore != nil {
		sb.WriteString(fmt.Sprintf("Overall score:  %.1f\n", *summary.OverallScore))
	}

	if len(summary.AverageScoreByType) > 0 {
		sb.WriteString("\nAverage by type:\n")
		for _, qt := range []types.QuestionType{types.QuestionTechnical, types.QuestionBehavioral, types.QuestionExperience} {
			if avg, ok := summary.AverageScoreByType[qt]; ok {
				sb.WriteString(fmt.Sprintf("  • %-12s %.1f\n", strings.ToLower(string(qt)), avg))
			}
		}
	}

	p.printBox("INTERVIEW ANALYTICS", strings.TrimSuffix(sb.String(), "\n"))
}
