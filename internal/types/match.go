package types

import "github.com/google/uuid"

// SkillMatch is the scorer's breakdown for one candidate/job pair.
// Matched and Missing are computed locally from the two skill sets and
// together always partition the job's requirements; Score comes from the
// compatibility oracle and is clamped to [0,100].
type SkillMatch struct {
	Score   int      `json:"score"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// MatchResult is one entry of a candidate's job ranking.
type MatchResult struct {
	JobID         uuid.UUID `json:"job_id"`
	Title         string    `json:"title"`
	MatchScore    int       `json:"match_score"`
	MatchedSkills []string  `json:"matched_skills"`
	MissingSkills []string  `json:"missing_skills"`
}
