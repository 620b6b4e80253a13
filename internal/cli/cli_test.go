package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/judgeboard/internal/adapters/repository"
	"github.com/okian/judgeboard/internal/adapters/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("JUDGEBOARD_CONFIG", "")
	t.Setenv("JUDGEBOARD_TIMEZONE", "UTC")

	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version: dev")
	assert.Contains(t, out, "Commit:  none")
}

func TestTeamsCommand(t *testing.T) {
	out, err := run(t, "teams")
	require.NoError(t, err)
	assert.Contains(t, out, "Teams: 4")
	assert.Contains(t, out, "Transit Pulse")

	out, err = run(t, "teams", "--search", "WHISPER")
	require.NoError(t, err)
	assert.Contains(t, out, "Crop Whisperer")
	assert.NotContains(t, out, "Bazaar Bataye")
}

func TestShowCommand(t *testing.T) {
	t.Run("by index", func(t *testing.T) {
		out, err := run(t, "show", "1", "--section", terminal.SectionScores)
		require.NoError(t, err)
		assert.Contains(t, out, "Crop Whisperer")
		assert.Contains(t, out, "Evaluation Criteria Scores")
	})

	t.Run("by name", func(t *testing.T) {
		out, err := run(t, "show", "sahayak", "--section", terminal.SectionSummary)
		require.NoError(t, err)
		assert.Contains(t, out, "Sahayak")
		assert.Contains(t, out, "Executive Summary")
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := run(t, "show", "Nobody")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := run(t, "show", "9")
		assert.Error(t, err)
	})

	t.Run("unknown section", func(t *testing.T) {
		_, err := run(t, "show", "0", "--section", "charts")
		assert.ErrorIs(t, err, terminal.ErrUnknownSection)
	})
}

func TestShowPrefersNameOverIndex(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "digits.json")
	doc := `[
  {"team_name": "Alpha", "gemini_response": {"criteria_scores": {"impact_scalability": 7}}},
  {"team_name": "2048", "gemini_response": {"criteria_scores": {"impact_scalability": 9}}},
  {"team_name": "Gamma", "gemini_response": {"criteria_scores": {"impact_scalability": 5}}}
]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, err := run(t, "show", "2048", "--dataset", path, "--section", terminal.SectionScores)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2048 ("), "got %q", out)

	out, err = run(t, "show", "2", "--dataset", path, "--section", terminal.SectionScores)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Gamma ("), "got %q", out)
}

func TestLeaderboardCommand(t *testing.T) {
	out, err := run(t, "leaderboard", "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Crop Whisperer")
	assert.Contains(t, out, "Bazaar Bataye")
	assert.NotContains(t, out, "Sahayak")
	assert.Less(t, strings.Index(out, "Crop Whisperer"), strings.Index(out, "Bazaar Bataye"))

	_, err = run(t, "leaderboard", "--limit", "-1")
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestStatsCommand(t *testing.T) {
	out, err := run(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Teams: 4")
	assert.Contains(t, out, "Criteria Averages")
}

func TestDatasetFlag(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "teams", "--dataset", filepath.Join(dir, "missing.json"))
		assert.ErrorIs(t, err, repository.ErrLoadDataset)
	})

	t.Run("empty dataset", func(t *testing.T) {
		path := filepath.Join(dir, "empty.json")
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))
		_, err := run(t, "teams", "--dataset", path)
		assert.ErrorIs(t, err, repository.ErrEmptyDataset)
	})
}
