package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	h, err := CreateHandler(&buf, "debug", "JSON")
	require.NoError(t, err)

	slog.New(h).Debug("mounted", slog.Int("progress", 3))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "mounted", rec["msg"])
	assert.EqualValues(t, 3, rec["progress"])
}

func TestCreateHandler_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	h, err := CreateHandler(&buf, "warn", "logfmt")
	require.NoError(t, err)

	l := slog.New(h)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestCreateHandler_Errors(t *testing.T) {
	_, err := CreateHandler(&bytes.Buffer{}, "loud", "text")
	assert.ErrorIs(t, err, ErrUnknownLevel)

	_, err = CreateHandler(&bytes.Buffer{}, "info", "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestValidFormat(t *testing.T) {
	assert.True(t, ValidFormat("text"))
	assert.True(t, ValidFormat("Json"))
	assert.False(t, ValidFormat("yaml"))
}
