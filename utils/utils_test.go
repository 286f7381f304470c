package utils

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestFormatCents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cents int64
		want  string
	}{
		{cents: 0, want: "$0.00"},
		{cents: 5, want: "$0.05"},
		{cents: 100, want: "$1.00"},
		{cents: 25500, want: "$255.00"},
		{cents: 123456, want: "$1,234.56"},
		{cents: 100000000, want: "$1,000,000.00"},
		{cents: -1999, want: "-$19.99"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.want, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, FormatCents(tc.cents))
		})
	}
}

func TestGenerateID(t *testing.T) {
	t.Parallel()

	a, b := GenerateID(), GenerateID()
	require.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

// Not parallel: mutates the global logger
func TestConfigureLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	t.Cleanup(func() {
		SetLogOutput(os.Stdout)
		require.NoError(t, ConfigureLogger("info", "json"))
	})

	require.NoError(t, ConfigureLogger("warn", "json"))
	Info("dropped", nil)
	Warn("kept", map[string]any{"listing_id": "listing-1"})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	require.Equal(t, "kept", entry["msg"])
	require.Equal(t, "listing-1", entry["listing_id"])

	require.Error(t, ConfigureLogger("loud", "json"))
	require.Error(t, ConfigureLogger("info", "xml"))
	require.NoError(t, ConfigureLogger("debug", "text"))
}
