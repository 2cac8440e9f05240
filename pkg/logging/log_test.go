package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleLog(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	tests := []struct {
		name  string
		entry *log.Entry
		want  string
	}{
		{
			name: "message only",
			entry: &log.Entry{
				Level:     log.InfoLevel,
				Message:   "screen opened",
				Timestamp: ts,
			},
			want: "2025-03-14 09:26:53 I screen opened\n",
		},
		{
			name: "fields are sorted",
			entry: &log.Entry{
				Level:     log.DebugLevel,
				Message:   "setting changed",
				Timestamp: ts,
				Fields:    log.Fields{"value": true, "field": "darkMode"},
			},
			want: "2025-03-14 09:26:53 D setting changed field=darkMode value=true\n",
		},
		{
			name: "warn level initial",
			entry: &log.Entry{
				Level:     log.WarnLevel,
				Message:   "font missing",
				Timestamp: ts,
			},
			want: "2025-03-14 09:26:53 W font missing\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := NewHandler(&buf)
			require.NoError(t, h.HandleLog(tt.entry))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    log.Level
		wantErr bool
	}{
		{in: "", want: log.InfoLevel},
		{in: "DEBUG", want: log.DebugLevel},
		{in: " warn ", want: log.WarnLevel},
		{in: "error", want: log.ErrorLevel},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
