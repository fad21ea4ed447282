// Tests for the User API: construction, role checks, and permission
// checks against a seeded Science Database snapshot.
package saltuser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltastro/saltuser/internal/sdb/sdbtest"
	"github.com/saltastro/saltuser/pkg/saltuser"
	"github.com/saltastro/saltuser/pkg/types"
)

func TestNew(t *testing.T) {
	s := sdbtest.Open(t)

	u, err := saltuser.New(sdbtest.UserBob, s)
	require.NoError(t, err)
	assert.Equal(t, sdbtest.UserBob, u.ID())
	assert.Equal(t, "Bob", u.GivenName())
	assert.Equal(t, "Baker", u.FamilyName())
	assert.Equal(t, "bob@saao.ac.za", u.Email())

	_, err = saltuser.New(9999, s)
	assert.ErrorIs(t, err, types.ErrUserNotFound)
}

func TestFindByUsername(t *testing.T) {
	s := sdbtest.Open(t)

	u, err := saltuser.FindByUsername("carol", s)
	require.NoError(t, err)
	assert.Equal(t, sdbtest.UserCarol, u.ID())

	_, err = saltuser.FindByUsername("nobody", s)
	assert.ErrorIs(t, err, types.ErrUserNotFound)
}

func TestVerify(t *testing.T) {
	s := sdbtest.Open(t)

	require.NoError(t, saltuser.Verify("eve", "eve-secret", s))
	assert.ErrorIs(t, saltuser.Verify("eve", "wrong", s), types.ErrInvalidCredentials)
}

func TestRoles(t *testing.T) {
	s := sdbtest.Open(t)

	alice, err := saltuser.New(sdbtest.UserAlice, s)
	require.NoError(t, err)
	carol, err := saltuser.New(sdbtest.UserCarol, s)
	require.NoError(t, err)
	dave, err := saltuser.New(sdbtest.UserDave, s)
	require.NoError(t, err)

	admin, err := alice.IsAdmin()
	require.NoError(t, err)
	assert.True(t, admin)

	admin, err = dave.IsAdmin()
	require.NoError(t, err)
	assert.False(t, admin, "zero-valued RightAdmin setting")

	board, err := dave.IsBoardMember()
	require.NoError(t, err)
	assert.True(t, board)

	// Cached; a second call must agree.
	board, err = dave.IsBoardMember()
	require.NoError(t, err)
	assert.True(t, board)

	assert.Equal(t, []string{sdbtest.PartnerRSA}, carol.TACs())
	assert.True(t, carol.IsTACMember(sdbtest.PartnerRSA))
	assert.True(t, carol.IsTACChair(sdbtest.PartnerRSA))
	assert.False(t, carol.IsTACMember(sdbtest.PartnerUW))
	assert.Empty(t, alice.TACs())
}

func TestIsProposalTACMember(t *testing.T) {
	s := sdbtest.Open(t)

	carol, err := saltuser.New(sdbtest.UserCarol, s)
	require.NoError(t, err)

	// ProposalSci has RSA investigators; carol serves on the RSA TAC.
	onTAC, err := carol.IsProposalTACMember(sdbtest.ProposalSci)
	require.NoError(t, err)
	assert.True(t, onTAC)

	// ProposalMlt's investigators are POL only.
	onTAC, err = carol.IsProposalTACMember(sdbtest.ProposalMlt)
	require.NoError(t, err)
	assert.False(t, onTAC)
}

func TestMayViewProposal(t *testing.T) {
	s := sdbtest.Open(t)

	tests := []struct {
		name     string
		userID   int64
		proposal string
		want     bool
	}{
		{"investigator", sdbtest.UserBob, sdbtest.ProposalSci, true},
		{"investigator, other proposal", sdbtest.UserBob, sdbtest.ProposalMlt, false},
		{"TAC member via requested time", sdbtest.UserCarol, sdbtest.ProposalSci, true},
		{"TAC member, unfunded partner", sdbtest.UserCarol, sdbtest.ProposalMlt, false},
		{"admin", sdbtest.UserAlice, sdbtest.ProposalMlt, true},
		{"board member", sdbtest.UserDave, sdbtest.ProposalSci, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := saltuser.New(tt.userID, s)
			require.NoError(t, err)

			got, err := u.MayViewProposal(tt.proposal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMayEditProposal(t *testing.T) {
	s := sdbtest.Open(t)

	tests := []struct {
		name     string
		userID   int64
		proposal string
		want     bool
	}{
		{"principal investigator", sdbtest.UserBob, sdbtest.ProposalSci, true},
		{"principal contact", sdbtest.UserEve, sdbtest.ProposalSci, true},
		{"admin", sdbtest.UserAlice, sdbtest.ProposalSci, true},
		{"plain investigator cannot edit", sdbtest.UserBob, sdbtest.ProposalMlt, false},
		{"board member cannot edit", sdbtest.UserDave, sdbtest.ProposalSci, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := saltuser.New(tt.userID, s)
			require.NoError(t, err)

			got, err := u.MayEditProposal(tt.proposal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlockPermissions(t *testing.T) {
	s := sdbtest.Open(t)

	bob, err := saltuser.New(sdbtest.UserBob, s)
	require.NoError(t, err)

	view, err := bob.MayViewBlock(sdbtest.BlockSci)
	require.NoError(t, err)
	assert.True(t, view)

	view, err = bob.MayViewBlock(sdbtest.BlockMlt)
	require.NoError(t, err)
	assert.False(t, view)

	edit, err := bob.MayEditBlock(sdbtest.BlockSci)
	require.NoError(t, err)
	assert.True(t, edit)

	_, err = bob.MayViewBlock(9999)
	assert.ErrorIs(t, err, types.ErrBlockNotFound)
	_, err = bob.MayEditBlock(9999)
	assert.ErrorIs(t, err, types.ErrBlockNotFound)
}

func TestViewableProposals(t *testing.T) {
	s := sdbtest.Open(t)

	alice, err := saltuser.New(sdbtest.UserAlice, s)
	require.NoError(t, err)

	codes, err := alice.ViewableProposals()
	require.NoError(t, err)
	assert.Equal(t, []string{sdbtest.ProposalMlt, sdbtest.ProposalSci}, codes, "sorted")
}
