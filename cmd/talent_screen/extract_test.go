package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
Senior Software Engineer

SKILLS
Go, Python, PostgreSQL, Docker, Kubernetes

EXPERIENCE
8 years of experience building backend services.

Acme Corp
Led the platform team.

EDUCATION
B.S. Computer Science, State University
`

func writeTempResume(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleResume), 0o644))
	return path
}

func TestExtractCommand(t *testing.T) {
	extractResume = writeTempResume(t)
	extractVocabulary = ""
	extractJSON = false
	defer func() { extractResume = "" }()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runExtract(cmd, nil))

	out := buf.String()
	assert.Contains(t, out, "EXTRACTED PROFILE")
	assert.Contains(t, out, "Python")
	// "PostgreSQL" contains the vocabulary entry "SQL" as a substring
	assert.Contains(t, out, "SQL")
}

func TestExtractCommandMissingFile(t *testing.T) {
	extractResume = filepath.Join(t.TempDir(), "does-not-exist.txt")
	extractJSON = false
	defer func() { extractResume = "" }()

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runExtract(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resume")
}
