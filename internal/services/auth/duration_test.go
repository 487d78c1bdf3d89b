package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationSeconds(t *testing.T) {
	tests := []struct {
		spec string
		want int64
	}{
		{"1d", 86400},
		{"2d", 172800},
		{"1h", 3600},
		{"12h", 43200},
		{"30m", 1800},
		{"1m", 60},
		{"45s", 45},
		{"0s", 0},
		{"365d", 31536000},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseDurationSeconds(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDurationSecondsRejectsMalformed(t *testing.T) {
	for _, spec := range []string{
		"",
		"d",
		"1",
		"1w",
		"1.5h",
		"-1d",
		"5x",
		"1d ",
		" 1d",
		"1dd",
		"h1",
	} {
		t.Run("spec "+spec, func(t *testing.T) {
			_, err := ParseDurationSeconds(spec)
			assert.ErrorIs(t, err, ErrInvalidDuration)
		})
	}
}
