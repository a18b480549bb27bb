package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
		name  string
	}{
		{DebugLevel, "DEBUG", "debug"},
		{InfoLevel, "INFO", "info"},
		{WarnLevel, "WARN", "warn"},
		{ErrorLevel, "ERROR", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
			assert.Equal(t, tt.name, tt.level.Name())
			assert.True(t, tt.level.Valid())
		})
	}

	assert.Equal(t, "UNKNOWN", Level(42).String())
	assert.False(t, Level(42).Valid())
}

func TestLevel_Ordering(t *testing.T) {
	for i := 1; i < len(Levels); i++ {
		assert.Less(t, Levels[i-1], Levels[i])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"Warn", WarnLevel},
		{"warning", WarnLevel},
		{" error ", ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLevel_TextRoundTrip(t *testing.T) {
	var l Level
	require.NoError(t, l.UnmarshalText([]byte("WARN")))
	assert.Equal(t, WarnLevel, l)

	text, err := l.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "warn", string(text))

	assert.Error(t, l.UnmarshalText([]byte("loud")))
}

func TestEntryPool(t *testing.T) {
	e1 := GetEntry()
	require.NotNil(t, e1)
	assert.Empty(t, e1.Args)

	e1.Message = "test"
	e1.Context = "ctx"
	e1.Args = append(e1.Args, "value", 42)

	PutEntry(e1)

	e2 := GetEntry()
	require.NotNil(t, e2)
	assert.Empty(t, e2.Args)
	assert.Empty(t, e2.Message)
	assert.Empty(t, e2.Context)

	PutEntry(nil)
}
