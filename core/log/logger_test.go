package log

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "", want: slog.LevelInfo},
		{input: "INFO", want: slog.LevelInfo},
		{input: " warn ", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetOutput_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, slog.LevelWarn)
	defer SetLevel(slog.LevelInfo)

	Info("hidden")
	Warn("shown", "event_id", "evt_1")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "event_id=evt_1")
}

func TestSetOutput_ConcurrentWithLogging(t *testing.T) {
	defer SetLevel(slog.LevelInfo)
	SetOutput(io.Discard, slog.LevelDebug)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				Info("relaying", "n", j)
				With("event_id", "evt_1").Debug("detail")
			}
		}()
	}

	for i := 0; i < 50; i++ {
		SetOutput(io.Discard, slog.LevelInfo)
	}
	wg.Wait()

	assert.NotNil(t, With())
}
