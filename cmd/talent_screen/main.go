// Package main provides the entry point for the Talent Screen HTTP API
// server and CLI tools.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talent_screen",
	Short: "Talent Screen HTTP API Server",
	Long:  "Talent Screen extracts structured candidate profiles from resumes, ranks candidates against open jobs, and runs scored interview workflows via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
