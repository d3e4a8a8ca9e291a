package ai

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/jonathan/talent-screen/internal/llm"
	"github.com/jonathan/talent-screen/internal/metrics"
	"github.com/jonathan/talent-screen/internal/types"
)

//go:embed generated_questions.schema.json
var generatedQuestionsSchema string

// GenerateQuestions asks the question-generation oracle for a question
// list for the given job. The JSON response is validated against the
// question-list schema before it is accepted.
func (o *Oracle) GenerateQuestions(ctx context.Context, job types.JobDescription) ([]types.GeneratedQuestion, error) {
	prompt := fmt.Sprintf(generateQuestionsPrompt,
		DefaultQuestionCount,
		job.Title,
		job.Requirements,
		strings.Join(job.Skills, ", "))

	raw, err := o.client.GenerateJSON(ctx, prompt, llm.TierQuality)
	if err != nil {
		metrics.OracleCalls.WithLabelValues("generate_questions", "error").Inc()
		return nil, &UnavailableError{Op: "question generation", Cause: err}
	}

	if err := validateQuestionsJSON(raw); err != nil {
		metrics.OracleCalls.WithLabelValues("generate_questions", "invalid").Inc()
		o.log.Warn("question generation returned invalid shape",
			zap.String("job_id", job.ID.String()),
			zap.Error(err))
		return nil, &ResponseError{Op: "question generation", Raw: raw, Cause: err}
	}

	var questions []types.GeneratedQuestion
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		metrics.OracleCalls.WithLabelValues("generate_questions", "invalid").Inc()
		return nil, &ResponseError{Op: "question generation", Raw: raw, Cause: err}
	}

	metrics.OracleCalls.WithLabelValues("generate_questions", "ok").Inc()
	return questions, nil
}

func validateQuestionsJSON(raw string) error {
	schema := gojsonschema.NewStringLoader(generatedQuestionsSchema)
	document := gojsonschema.NewStringLoader(raw)

	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return fmt.Errorf("failed to validate question list: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("question list does not match schema: %s", strings.Join(msgs, "; "))
	}
	return nil
}
