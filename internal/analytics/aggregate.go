// Package analytics derives summary statistics from interview question
// records. Everything here is pure arithmetic over the caller's data,
// recomputed on demand and never cached.
package analytics

import (
	"github.com/jonathan/talent-screen/internal/types"
)

// Aggregate summarizes one interview's question records. Questions with
// a nil score are excluded from every average; overallScore is the
// interview's frozen completion-time score and is passed through as-is
// rather than recomputed, so it may differ from the live per-type
// averages.
//
// An interview with zero questions yields a response rate of 0.
func Aggregate(questions []types.Question, overallScore *float64) types.AnalyticsSummary {
	summary := types.AnalyticsSummary{
		TotalQuestions:     len(questions),
		AverageScoreByType: averageScoreByType(questions),
		OverallScore:       overallScore,
	}

	for _, q := range questions {
		if q.Response != nil {
			summary.AnsweredQuestions++
		}
	}
	if summary.TotalQuestions > 0 {
		summary.ResponseRatePercent = 100 * float64(summary.AnsweredQuestions) / float64(summary.TotalQuestions)
	}

	return summary
}

// OverallScore computes the unweighted mean of all non-nil question
// scores. ok is false when no question has been scored. This is the
// value frozen onto an interview at completion time.
func OverallScore(questions []types.Question) (score float64, ok bool) {
	sum, count := 0, 0
	for _, q := range questions {
		if q.Score == nil {
			continue
		}
		sum += *q.Score
		count++
	}
	if count == 0 {
		return 0, false
	}
	return float64(sum) / float64(count), true
}

// AggregateCandidate summarizes a candidate's full interview history.
// questions spans all of the candidate's interviews and feeds the
// per-type skills assessment; the average score is the mean of the
// interviews' frozen overall scores, 0 when none are scored.
func AggregateCandidate(interviews []types.Interview, questions []types.Question) types.CandidateAnalytics {
	result := types.CandidateAnalytics{
		TotalInterviews:  len(interviews),
		SkillsAssessment: averageScoreByType(questions),
	}

	sum := 0.0
	for _, iv := range interviews {
		if iv.Score == nil {
			continue
		}
		sum += *iv.Score
		result.CompletedInterviews++
	}
	if result.CompletedInterviews > 0 {
		result.AverageScore = sum / float64(result.CompletedInterviews)
	}

	return result
}

func averageScoreByType(questions []types.Question) map[types.QuestionType]float64 {
	sums := make(map[types.QuestionType]int)
	counts := make(map[types.QuestionType]int)
	for _, q := range questions {
		if q.Score == nil {
			continue
		}
		sums[q.Type] += *q.Score
		counts[q.Type]++
	}

	averages := make(map[types.QuestionType]float64, len(sums))
	for qt, sum := range sums {
		averages[qt] = float64(sum) / float64(counts[qt])
	}
	return averages
}
