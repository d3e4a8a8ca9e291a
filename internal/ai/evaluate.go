package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"github.com/jonathan/talent-screen/internal/llm"
	"github.com/jonathan/talent-screen/internal/metrics"
	"github.com/jonathan/talent-screen/internal/types"
)

var digitRun = regexp.MustCompile(`\d+`)

// EvaluateResponse asks the evaluation oracle to score a candidate's
// answer to one question. The returned score is clamped to [0,100]
// whatever the oracle produced; an unparsable score field yields a
// ResponseError rather than a silent default, because feedback without a
// trustworthy score is not persisted.
func (o *Oracle) EvaluateResponse(ctx context.Context, questionText, responseText, jobRequirements string) (types.Evaluation, error) {
	prompt := fmt.Sprintf(evaluateResponsePrompt, questionText, responseText, jobRequirements)

	raw, err := o.client.GenerateJSON(ctx, prompt, llm.TierQuality)
	if err != nil {
		metrics.OracleCalls.WithLabelValues("evaluate_response", "error").Inc()
		return types.Evaluation{}, &UnavailableError{Op: "response evaluation", Cause: err}
	}

	var payload struct {
		Score    any    `json:"score"`
		Feedback string `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		metrics.OracleCalls.WithLabelValues("evaluate_response", "invalid").Inc()
		return types.Evaluation{}, &ResponseError{Op: "response evaluation", Raw: raw, Cause: err}
	}

	score, ok := coerceScore(payload.Score)
	if !ok {
		metrics.OracleCalls.WithLabelValues("evaluate_response", "invalid").Inc()
		o.log.Warn("evaluation oracle returned unparsable score",
			zap.Any("raw_score", payload.Score))
		return types.Evaluation{}, &ResponseError{Op: "response evaluation", Raw: raw}
	}

	metrics.OracleCalls.WithLabelValues("evaluate_response", "ok").Inc()
	return types.Evaluation{
		Score:    ClampScore(score),
		Feedback: payload.Feedback,
	}, nil
}

// ClampScore bounds a score to [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ParseScore extracts an integer score from a raw oracle value: a clean
// integer is used directly, otherwise the first embedded run of digits.
// ok is false when no digits exist at all.
func ParseScore(raw string) (score int, ok bool) {
	digits := digitRun.FindString(raw)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		// Digit run longer than an int; treat as out-of-range high.
		return 100, true
	}
	return n, true
}

// coerceScore accepts the score representations seen in the wild: JSON
// numbers and numeric strings.
func coerceScore(v any) (int, bool) {
	switch val := v.(type) {
	case float64:
		return int(val), true
	case string:
		return ParseScore(val)
	default:
		return 0, false
	}
}
