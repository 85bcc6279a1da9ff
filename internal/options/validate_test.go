package options

import (
	"testing"

	"github.com/erraggy/rad2oas/oaserrors"
	"github.com/stretchr/testify/assert"
)

func TestValidateSingleInputSource(t *testing.T) {
	tests := []struct {
		name    string
		sources []bool
		wantMsg string
	}{
		{"none set", []bool{false, false, false}, "no input"},
		{"no sources at all", nil, "no input"},
		{"one set", []bool{false, true, false}, ""},
		{"two set", []bool{true, true, false}, "too many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleInputSource("no input", "too many", tt.sources...)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, oaserrors.ErrConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
