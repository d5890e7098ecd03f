package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"job-use-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSeedCommand(t *testing.T) {
	out, err := execute(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Jobs present: 2")
}

func TestIngestCommand(t *testing.T) {
	dir := t.TempDir()

	t.Run("Should ingest a valid file", func(t *testing.T) {
		path := filepath.Join(dir, "profile.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"email": "cli@example.com",
			"password": "pw",
			"questions": [{"questionId": "q1", "name": "Do you drive?", "answer": "Yes"}]
		}`), 0o600))

		out, err := execute(t, "ingest", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Ingested cli@example.com")
		assert.Contains(t, out, "questions: 1")
		assert.NotContains(t, out, "work experience")
	})

	t.Run("Should list schema problems for a malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"email": "x@example.com"}`), 0o600))

		out, err := execute(t, "ingest", path)
		require.Error(t, err)
		assert.Contains(t, out, "password")
	})

	t.Run("Should fail on a missing file", func(t *testing.T) {
		_, err := execute(t, "ingest", filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}

func TestRenderTables(t *testing.T) {
	var buf bytes.Buffer
	renderJobs(&buf, []domain.Job{{ID: "j1", Title: "Assistant Manager", Company: "Hollister Co.", Status: "active"}})
	assert.Contains(t, buf.String(), "Assistant Manager")
	assert.Contains(t, buf.String(), "Jobs (1)")

	buf.Reset()
	renderApplications(&buf, []domain.Application{{ID: "a1", CandidateID: "c1", JobID: "j1", Status: "pending",
		QuestionsDetected: make([]domain.DetectedQuestion, 15)}})
	assert.Contains(t, buf.String(), "pending")
	assert.Contains(t, buf.String(), "15")
}
