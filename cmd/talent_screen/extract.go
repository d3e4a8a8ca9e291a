package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-screen/internal/extraction"
	"github.com/jonathan/talent-screen/internal/layout"
	"github.com/jonathan/talent-screen/internal/observability"
	"github.com/jonathan/talent-screen/internal/skills"
)

var (
	extractResume     string
	extractVocabulary string
	extractJSON       bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured profile from a resume text file",
	Long: `Read a plain-text resume and extract skills, years of experience,
education and work history. The extraction is deterministic: the same
input always produces the same profile.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractResume, "resume", "r", "", "Path to resume text file (required)")
	extractCmd.Flags().StringVar(&extractVocabulary, "vocabulary", "", "Path to skill vocabulary JSON (default built-in set)")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Print the profile as JSON instead of a summary box")
	_ = extractCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	vocab := skills.Default()
	if extractVocabulary != "" {
		var err error
		vocab, err = skills.Load(extractVocabulary)
		if err != nil {
			return fmt.Errorf("failed to load skill vocabulary: %w", err)
		}
	}

	lines, err := layout.FileProvider{}.Lines(context.Background(), extractResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	text := extraction.Normalize(lines)
	profile, err := extraction.AssembleProfile(text, vocab)
	if err != nil {
		return fmt.Errorf("failed to extract profile: %w", err)
	}

	if extractJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintProfile(&profile)
	return nil
}
