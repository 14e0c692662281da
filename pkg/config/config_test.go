package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoadsEmbeddedConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8, cfg.Policy.ScoreBlock)
	assert.Equal(t, 3, cfg.Policy.ScoreReview)
	assert.Equal(t, 4, cfg.Scanner.Workers)
	assert.True(t, cfg.Scanner.BatchMemoize)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMergesOverrideFileOverEmbeddedDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "safedoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("policy:\n  score_block: 20\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Policy.ScoreBlock)
	// Unset fields keep the embedded default.
	assert.Equal(t, 3, cfg.Policy.ScoreReview)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/safedoc.yaml")
	assert.Error(t, err)
}

func TestConfigYAMLRoundTripsThroughLoad(t *testing.T) {
	cfg := Default()
	out, err := cfg.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "score_block: 8")

	dir := t.TempDir()
	path := filepath.Join(dir, "roundtrip.yaml")
	require.NoError(t, os.WriteFile(path, out, 0o644))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Policy, reloaded.Policy)
}

func TestPolicyConfigToPolicyRoundTrips(t *testing.T) {
	pc := PolicyConfig{
		ScoreBlock:                      10,
		ScoreReview:                     4,
		BlockIfCPFCNPJValid:             true,
		ReviewIfPhoneSuspectWithContext: true,
	}
	p := pc.ToPolicy()
	assert.Equal(t, 10, p.ScoreBlock)
	assert.Equal(t, 4, p.ScoreReview)
	assert.True(t, p.BlockIfCPFCNPJValid)
	assert.True(t, p.ReviewIfPhoneSuspectWithCtx)
}
