package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetValidator(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}

func TestLogLevelValidation(t *testing.T) {
	t.Parallel()

	v := GetValidator()

	tests := []struct {
		name     string
		level    string
		expected bool
	}{
		{"empty uses default", "", true},
		{"debug", "debug", true},
		{"upper case", "WARN", true},
		{"trace", "trace", true},
		{"unknown", "loud", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Var(tt.level, "loglevel")
			if tt.expected {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
