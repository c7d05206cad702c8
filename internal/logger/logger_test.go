package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	log := NewLogger("test-role")
	require.NotNil(t, log)

	// must not panic on plain usage
	log.Debug().Msg("debug message")
	log.Info().Str("key", "value").Msg("info message")
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	log.Error().Msg("this should go nowhere")
}

func TestGetChildLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)

	log.Info().Msg("global logger fallback")
}

func TestFromContext_WithAttachedLogger(t *testing.T) {
	base := Nop()
	ctx := base.WithContext(context.Background())

	log := FromContext(ctx)
	require.NotNil(t, log)
}

func TestFromRequest(t *testing.T) {
	base := Nop()
	req := httptest.NewRequest("GET", "/webhooks/catalog", nil)
	req = req.WithContext(base.WithContext(req.Context()))

	log := FromRequest(req)
	require.NotNil(t, log)
}
