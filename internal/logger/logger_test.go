package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := New("server", &buf, zerolog.DebugLevel)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l := New("worker", &buf, zerolog.WarnLevel)
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.NotEmpty(t, buf.String())
}

func TestNewLogger_GlobalLevelIsDebug(t *testing.T) {
	require.NotNil(t, NewLogger("level-role"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("loud"))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New("inherited-role", &buf, zerolog.DebugLevel)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")
	assert.Equal(t, "inherited-role", decodeEntry(t, &buf)["role"])
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")
	assert.Equal(t, "abc", decodeEntry(t, &buf)["trace_id"])
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "req").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")
	assert.Equal(t, "req", decodeEntry(t, &buf)["trace_id"])
}
