package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_WithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{name: "zero", in: Config{}, want: DefaultConfig()},
		{
			name: "model override",
			in:   Config{Model: "gemini-2.5-pro"},
			want: Config{Model: "gemini-2.5-pro", Temperature: DefaultTemperature, MaxOutputTokens: DefaultMaxOutputTokens},
		},
		{
			name: "all set",
			in:   Config{Model: "m", Temperature: 0.7, MaxOutputTokens: 100},
			want: Config{Model: "m", Temperature: 0.7, MaxOutputTokens: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.withDefaults())
		})
	}
}
