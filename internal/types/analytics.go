package types

// AnalyticsSummary is the derived per-interview analytics view.
// It is recomputed on demand and never cached across calls.
type AnalyticsSummary struct {
	TotalQuestions      int                      `json:"total_questions"`
	AnsweredQuestions   int                      `json:"answered_questions"`
	ResponseRatePercent float64                  `json:"response_rate_percent"`
	AverageScoreByType  map[QuestionType]float64 `json:"average_score_by_type"`
	OverallScore        *float64                 `json:"overall_score,omitempty"`
}

// CandidateAnalytics aggregates across all interviews of one candidate.
// AverageScore is the mean of the interviews' frozen overall scores,
// 0 when none have been scored.
type CandidateAnalytics struct {
	TotalInterviews     int                      `json:"total_interviews"`
	CompletedInterviews int                      `json:"completed_interviews"`
	AverageScore        float64                  `json:"average_score"`
	SkillsAssessment    map[QuestionType]float64 `json:"skills_assessment"`
}
