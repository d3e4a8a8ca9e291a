// Package matching scores candidate skill sets against job requirements
// and ranks a candidate across all active jobs.
package matching

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/talent-screen/internal/ai"
	"github.com/jonathan/talent-screen/internal/metrics"
	"github.com/jonathan/talent-screen/internal/skills"
	"github.com/jonathan/talent-screen/internal/types"
)

// ScoreOracle is the compatibility oracle contract: given two skill sets
// it returns a raw score representation, expected but not guaranteed to
// be a clean integer in [0,100].
type ScoreOracle interface {
	AnalyzeSkillMatch(ctx context.Context, candidateSkills, jobSkills []string) (string, error)
}

// Scorer produces skill match breakdowns. The matched/missing sets are
// pure local set arithmetic and are always consistent with the inputs;
// only the numeric score involves the oracle. Safe for concurrent use.
type Scorer struct {
	oracle ScoreOracle
	log    *zap.Logger
}

// NewScorer creates a scorer over the given oracle.
func NewScorer(oracle ScoreOracle, log *zap.Logger) *Scorer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scorer{oracle: oracle, log: log}
}

// Score computes the match breakdown for one candidate/job pair. The
// oracle's raw value is parsed (first embedded digit run) and clamped to
// [0,100]; output with no digits at all defaults to 0 and is recorded as
// a fallback, distinct from a genuine zero, in logs and metrics.
//
// When the oracle itself is unreachable the returned breakdown still
// carries the locally computed sets with score 0, alongside the error,
// so callers can degrade to a best-effort result.
func (s *Scorer) Score(ctx context.Context, candidateSkills, jobSkills []string) (types.SkillMatch, error) {
	matched, missing := skills.Match(candidateSkills, jobSkills)
	match := types.SkillMatch{Score: 0, Matched: matched, Missing: missing}

	raw, err := s.oracle.AnalyzeSkillMatch(ctx, candidateSkills, jobSkills)
	if err != nil {
		return match, err
	}

	score, ok := ai.ParseScore(raw)
	if !ok {
		metrics.OracleScoreFallbacks.Inc()
		s.log.Warn("compatibility oracle returned unparsable score, defaulting to 0",
			zap.String("raw", raw))
		return match, nil
	}

	match.Score = ai.ClampScore(score)
	return match, nil
}
