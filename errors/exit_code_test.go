package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain error", err: ErrManifestParse, want: 1},
		{name: "explicit code", err: WithExitCode(ErrRangeMismatch, 2), want: 2},
		{name: "wrapped explicit code", err: fmt.Errorf("outer: %w", WithExitCode(ErrRangeMismatch, 4)), want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestWithExitCode_Nil(t *testing.T) {
	assert.NoError(t, WithExitCode(nil, 2))
}

func TestWithExitCode_PreservesMessage(t *testing.T) {
	err := WithExitCode(ErrCacheLocked, 5)

	assert.Equal(t, ErrCacheLocked.Error(), err.Error())
	assert.ErrorIs(t, err, ErrCacheLocked)
}
