package obs

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFallsBackToInfoOnUnknownLevel(t *testing.T) {
	l := New("not-a-level", false)
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestNewParsesKnownLevel(t *testing.T) {
	l := New("debug", false)
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())
}

func TestWithRunAttachesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	withRun := WithRun(base, "run-123")
	withRun.Info().Msg("hello")
	require.Contains(t, buf.String(), `"run_id":"run-123"`)
}

func TestWithMatchAttachesMatchFields(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	WithMatch(base, "cpf", 0, 11, 6).Msg("match")
	out := buf.String()
	assert.Contains(t, out, `"rule":"cpf"`)
	assert.Contains(t, out, `"weight":6`)
}
