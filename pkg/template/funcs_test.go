package template

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadableIndex(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected int
		wantErr  bool
	}{
		{"int", 0, 1, false},
		{"int64", int64(4), 5, false},
		{"float from json", float64(2), 3, false},
		{"numeric string", " 9 ", 10, false},
		{"bad string", "x", 0, true},
		{"unsupported", []int{1}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readableIndex(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatTime(t *testing.T) {
	vienna, err := time.LoadLocation("Europe/Vienna")
	require.NoError(t, err)
	format := formatTimeFunc(vienna)

	tests := []struct {
		name     string
		input    any
		layout   []string
		expected string
		wantErr  bool
	}{
		{"instant moves into configured zone", "2024-01-15T10:00:00Z", nil, "2024-01-15 11:00", false},
		{"offset is kept", "2024-01-15T10:00:00+05:00", nil, "2024-01-15 10:00", false},
		{"zone id is applied", "2024-01-15T10:00:00Z[America/New_York]", nil, "2024-01-15 05:00", false},
		{"fractional seconds", "2024-01-15T10:00:00.123Z", nil, "2024-01-15 11:00", false},
		{"minutes only", "2024-01-15T10:00Z", nil, "2024-01-15 11:00", false},
		{"custom layout", "2024-01-15T10:00:00Z", []string{"15:04"}, "11:00", false},
		{"time value", time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), nil, "2024-01-15 11:00", false},
		{"nil renders empty", nil, nil, "", false},
		{"too many layouts", "2024-01-15T10:00:00Z", []string{"a", "b"}, "", true},
		{"unparseable", "yesterday", nil, "", true},
		{"unknown zone", "2024-01-15T10:00:00Z[Nowhere/Land]", nil, "", true},
		{"unsupported type", 12, nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := format(tt.input, tt.layout...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEscape(t *testing.T) {
	got, err := escape(`<b> & "q"`)
	require.NoError(t, err)
	assert.Equal(t, "&lt;b&gt; &amp; &#34;q&#34;", got)

	got, err = escape(42)
	require.NoError(t, err)
	assert.Equal(t, "42", got)
}
