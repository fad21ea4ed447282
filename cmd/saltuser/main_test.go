// Tests for the exit code mapping.
package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saltastro/saltuser/pkg/types"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"no error", nil, exitSuccess},
		{"unknown user", types.ErrUserNotFound, exitUserError},
		{"wrapped unknown user", fmt.Errorf("user %q: %w", "x", types.ErrUserNotFound), exitUserError},
		{"bad credentials", classify(types.ErrInvalidCredentials), exitUserError},
		{"unknown block", classify(types.ErrBlockNotFound), exitUserError},
		{"argument error", errors.New("accepts 3 arg(s), received 1"), exitUserError},
		{"query failure", classify(errors.New("driver: bad connection")), exitSysError},
		{"attach failure", sysErr(fmt.Errorf("attach store: %w", types.ErrDriverUnknown)), exitSysError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
