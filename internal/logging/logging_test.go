package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, "json", "warn")
	log.Info().Msg("hidden")
	log.Warn().Str("parcel", "12").Msg("shown")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "warn", line["level"])
	require.Equal(t, "shown", line["message"])
	require.Equal(t, "12", line["parcel"])
}

func TestUnknownLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, "json", "chatty")
	log.Debug().Msg("hidden")
	require.Zero(t, buf.Len())
	log.Info().Msg("shown")
	require.NotZero(t, buf.Len())
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, "console", "info")
	log.Info().Msg("hello")
	require.Contains(t, buf.String(), "hello")
	require.NotContains(t, buf.String(), `"message"`)
}
