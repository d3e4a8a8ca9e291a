package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-screen/internal/ai"
	"github.com/jonathan/talent-screen/internal/extraction"
	"github.com/jonathan/talent-screen/internal/layout"
	"github.com/jonathan/talent-screen/internal/llm"
	"github.com/jonathan/talent-screen/internal/logger"
	"github.com/jonathan/talent-screen/internal/matching"
	"github.com/jonathan/talent-screen/internal/observability"
	"github.com/jonathan/talent-screen/internal/skills"
	"github.com/jonathan/talent-screen/internal/types"
)

var (
	matchResume     string
	matchJobs       string
	matchVocabulary string
	matchAPIKey     string
	matchJSON       bool
	matchVerbose    bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank jobs against a candidate resume",
	Long: `Extract a profile from a resume and rank a set of jobs by skill fit.
The deterministic overlap score decides the ranking; the scoring oracle
adds a qualitative analysis per job.

The jobs file is a JSON array of job descriptions with at least a
"title" and a "skills" list per entry.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume text file (required)")
	matchCmd.Flags().StringVarP(&matchJobs, "jobs", "j", "", "Path to jobs JSON file (required)")
	matchCmd.Flags().StringVar(&matchVocabulary, "vocabulary", "", "Path to skill vocabulary JSON (default built-in set)")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print match results as JSON instead of a summary box")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = matchCmd.MarkFlagRequired("resume")
	_ = matchCmd.MarkFlagRequired("jobs")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	apiKey := matchAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (use --api-key or GEMINI_API_KEY env var)")
	}

	vocab := skills.Default()
	if matchVocabulary != "" {
		var err error
		vocab, err = skills.Load(matchVocabulary)
		if err != nil {
			return fmt.Errorf("failed to load skill vocabulary: %w", err)
		}
	}

	jobs, err := loadJobs(matchJobs)
	if err != nil {
		return err
	}

	ctx := context.Background()

	lines, err := layout.FileProvider{}.Lines(ctx, matchResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	profile, err := extraction.AssembleProfile(extraction.Normalize(lines), vocab)
	if err != nil {
		return fmt.Errorf("failed to extract profile: %w", err)
	}

	log, err := logger.New(false, matchVerbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer client.Close()

	oracle := ai.NewOracle(client, log)
	ranker := matching.NewRanker(matching.NewScorer(oracle, log), log)

	results, err := ranker.Rank(ctx, profile.Skills, jobs)
	if err != nil {
		return fmt.Errorf("failed to rank jobs: %w", err)
	}

	if matchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintMatches(results)
	return nil
}

func loadJobs(path string) ([]types.JobDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file: %w", err)
	}
	var jobs []types.JobDescription
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse jobs JSON: %w", err)
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("jobs file contains no jobs")
	}
	return jobs, nil
}
