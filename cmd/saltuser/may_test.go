// Tests for the permission action dispatch behind the may command.
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltastro/saltuser/internal/sdb/sdbtest"
	"github.com/saltastro/saltuser/pkg/saltuser"
	"github.com/saltastro/saltuser/pkg/types"
)

func TestCheckPermission(t *testing.T) {
	s := sdbtest.Open(t)
	bob, err := saltuser.New(sdbtest.UserBob, s)
	require.NoError(t, err)
	frank, err := saltuser.New(sdbtest.UserFrank, s)
	require.NoError(t, err)

	tests := []struct {
		name   string
		u      *saltuser.User
		action string
		target string
		want   bool
	}{
		{"view own proposal", bob, "view-proposal", sdbtest.ProposalSci, true},
		{"edit own proposal", bob, "edit-proposal", sdbtest.ProposalSci, true},
		{"view foreign proposal", bob, "view-proposal", sdbtest.ProposalMlt, false},
		{"edit foreign proposal", frank, "edit-proposal", sdbtest.ProposalSci, false},
		{"view block of own proposal", bob, "view-block", "501", true},
		{"edit block of foreign proposal", bob, "edit-block", "502", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checkPermission(tt.u, tt.action, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckPermissionErrors(t *testing.T) {
	s := sdbtest.Open(t)
	bob, err := saltuser.New(sdbtest.UserBob, s)
	require.NoError(t, err)

	t.Run("unknown action", func(t *testing.T) {
		_, err := checkPermission(bob, "delete-proposal", sdbtest.ProposalSci)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown action")
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("malformed block id", func(t *testing.T) {
		_, err := checkPermission(bob, "view-block", "not-a-number")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid block id")
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("unknown block", func(t *testing.T) {
		_, err := checkPermission(bob, "view-block", "999")
		require.ErrorIs(t, err, types.ErrBlockNotFound)
		assert.Equal(t, exitUserError, exitCode(err))
	})
}
