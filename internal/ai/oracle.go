// Package ai implements the external oracle contracts: skill
// compatibility scoring, interview question generation, and response
// evaluation. Each oracle is a single narrow operation over the llm
// client, with output validation at this boundary; nothing downstream
// trusts raw oracle output.
package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/talent-screen/internal/llm"
	"github.com/jonathan/talent-screen/internal/metrics"
)

// DefaultQuestionCount is the number of questions requested per job.
const DefaultQuestionCount = 10

// Oracle bundles the three oracle operations over one llm client.
// Safe for concurrent use; each call is stateless.
type Oracle struct {
	client llm.Client
	log    *zap.Logger
}

// NewOracle creates an oracle over the given client.
func NewOracle(client llm.Client, log *zap.Logger) *Oracle {
	if log == nil {
		log = zap.NewNop()
	}
	return &Oracle{client: client, log: log}
}

// AnalyzeSkillMatch asks the compatibility oracle to score a candidate's
// skills against a job's required skills. The raw response is returned
// as-is: the oracle is expected but not guaranteed to answer with a clean
// integer in [0,100], and the scorer owns the parse-and-clamp step.
func (o *Oracle) AnalyzeSkillMatch(ctx context.Context, candidateSkills, jobSkills []string) (string, error) {
	prompt := fmt.Sprintf(skillMatchPrompt,
		strings.Join(candidateSkills, ", "),
		strings.Join(jobSkills, ", "))

	raw, err := o.client.GenerateContent(ctx, prompt, llm.TierFast)
	if err != nil {
		metrics.OracleCalls.WithLabelValues("skill_match", "error").Inc()
		return "", &UnavailableError{Op: "skill match", Cause: err}
	}

	metrics.OracleCalls.WithLabelValues("skill_match", "ok").Inc()
	return raw, nil
}
