package matching

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-screen/internal/types"
)

// defaultConcurrency bounds the oracle fan-out per ranking call.
const defaultConcurrency = 4

// Ranker fans the scorer out across a candidate's job list.
type Ranker struct {
	scorer      *Scorer
	log         *zap.Logger
	concurrency int
}

// NewRanker creates a ranker over the given scorer.
func NewRanker(scorer *Scorer, log *zap.Logger) *Ranker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ranker{scorer: scorer, log: log, concurrency: defaultConcurrency}
}

// Rank scores the candidate's skills against every job and returns
// results sorted by match score descending. Equal scores order by
// ascending job ID, so identical inputs always produce an identical
// ranking regardless of fan-out completion order.
//
// A failed oracle call degrades that job to its locally computed skill
// breakdown with score 0 instead of failing the batch. Rank only returns
// an error when the context is cancelled.
func (r *Ranker) Rank(ctx context.Context, candidateSkills []string, jobs []types.JobDescription) ([]types.MatchResult, error) {
	results := make([]types.MatchResult, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			match, err := r.scorer.Score(gctx, candidateSkills, job.Skills)
			if err != nil {
				// Best effort: keep the local breakdown, surface the failure
				// in logs only.
				r.log.Warn("skill match scoring failed, using degraded result",
					zap.String("job_id", job.ID.String()),
					zap.Error(err))
			}

			results[i] = types.MatchResult{
				JobID:         job.ID,
				Title:         job.Title,
				MatchScore:    match.Score,
				MatchedSkills: match.Matched,
				MissingSkills: match.Missing,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].MatchScore != results[j].MatchScore {
			return results[i].MatchScore > results[j].MatchScore
		}
		return results[i].JobID.String() < results[j].JobID.String()
	})

	return results, nil
}
