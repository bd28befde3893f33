package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		json  bool
		debug bool
		level zapcore.Level
	}{
		{"console info", false, false, zapcore.InfoLevel},
		{"json debug", true, true, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.json, tt.debug)
			require.NoError(t, err)
			require.NotNil(t, l)
			assert.True(t, l.Core().Enabled(tt.level))
			if !tt.debug {
				assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
			}
		})
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithFields(zap.New(core), zap.String(FieldJobID, "job-1")).Info("scored")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "job-1", entries[0].ContextMap()[FieldJobID])

	assert.NotNil(t, WithFields(nil, zap.String("k", "v")))
}

func TestIDFields(t *testing.T) {
	fields := IDFields(FieldJobID, " job-1 ", FieldClientID, "  ", "", "x", FieldCandidateID)
	require.Len(t, fields, 1)
	assert.Equal(t, FieldJobID, fields[0].Key)
	assert.Equal(t, "job-1", fields[0].String)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "abc", Truncate("  abc ", 5))
	assert.Equal(t, "Lebe...", Truncate("Lebenslauf", 4))
	assert.Equal(t, "Gr...", Truncate("Grüße", 2))
}
