package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := out
	SetOutput(&buf)
	defer SetOutput(prev)

	l := New("sim")
	l.Info().Int("steps", 3).Msg("frame")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "sim", entry["component"])
	assert.Equal(t, "frame", entry["message"])
	assert.EqualValues(t, 3, entry["steps"])
}

func TestSetLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	assert.Equal(t, zerolog.DebugLevel, SetLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, SetLevel("WARN"))
	assert.Equal(t, zerolog.TraceLevel, SetLevel("Trace"))
	assert.Equal(t, zerolog.InfoLevel, SetLevel("loud"))
	assert.Equal(t, zerolog.InfoLevel, SetLevel(""))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
