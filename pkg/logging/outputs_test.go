package logging

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleOutputColor(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		color    bool
	}{
		{"ColorDebug", DEBUG, true},
		{"ColorInfo", INFO, true},
		{"ColorWarn", WARN, true},
		{"ColorError", ERROR, true},
		{"ColorFatal", FATAL, true},
		{"NoColor", INFO, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buffer := &bytes.Buffer{}
			console := &ConsoleOutput{
				writer: buffer,
				color:  tt.color,
			}

			entry := LogEntry{
				Time:       time.Now().UnixNano(),
				Severity:   tt.severity,
				Message:    "test message",
				Generation: -1,
			}

			require.NoError(t, console.Write(entry))

			output := buffer.String()
			assert.Contains(t, output, "test message")
			assert.Contains(t, output, tt.severity.String())
			if tt.color {
				assert.Contains(t, output, getSeverityColor(tt.severity))
			} else {
				assert.NotContains(t, output, "\033[")
			}
		})
	}
}

func TestConsoleOutputRunFields(t *testing.T) {
	buffer := &bytes.Buffer{}
	console := &ConsoleOutput{writer: buffer}

	entry := LogEntry{
		Time:       time.Now().UnixNano(),
		Severity:   INFO,
		Message:    "generation complete",
		RunID:      "run-7",
		Generation: 3,
		Fields: map[string]interface{}{
			"best_strength": 2.5,
		},
	}

	require.NoError(t, console.Write(entry))

	output := buffer.String()
	assert.Contains(t, output, "[run=run-7]")
	assert.Contains(t, output, "[gen=3]")
	assert.Contains(t, output, "best_strength=2.5")
}

func TestConsoleOutputTruncatesGenes(t *testing.T) {
	buffer := &bytes.Buffer{}
	console := &ConsoleOutput{writer: buffer}

	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	entry := LogEntry{
		Time:       time.Now().UnixNano(),
		Severity:   DEBUG,
		Message:    "best candidate",
		Generation: -1,
		Fields: map[string]interface{}{
			"genes": string(long),
		},
	}

	require.NoError(t, console.Write(entry))
	assert.Contains(t, buffer.String(), "...")
}

func TestFileOutputWritesAndAppends(t *testing.T) {
	path := t.TempDir() + "/run.log"

	out, err := NewFileOutput(path)
	require.NoError(t, err)

	entry := LogEntry{
		Time:       time.Now().UnixNano(),
		Severity:   INFO,
		Message:    "evolution terminated",
		RunID:      "run-9",
		Generation: 4,
	}
	require.NoError(t, out.Write(entry))
	require.NoError(t, out.Sync())
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "evolution terminated")
	assert.Contains(t, content, "[run=run-9]")
	assert.Contains(t, content, "[gen=4]")
	assert.NotContains(t, content, "\033[")
}

func TestNewConsoleOutputOptions(t *testing.T) {
	console := NewConsoleOutput(false, WithColor(false))
	assert.False(t, console.color)

	console = NewConsoleOutput(true)
	assert.True(t, console.color)
}
