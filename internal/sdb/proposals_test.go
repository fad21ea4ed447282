// Tests for proposal and block queries.
package sdb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltastro/saltuser/internal/sdb/sdbtest"
	"github.com/saltastro/saltuser/pkg/types"
)

func TestIsInvestigator(t *testing.T) {
	s := sdbtest.Open(t)

	tests := []struct {
		name     string
		userID   int64
		proposal string
		want     bool
	}{
		{"investigator on own proposal", sdbtest.UserBob, sdbtest.ProposalSci, true},
		{"co-investigator", sdbtest.UserEve, sdbtest.ProposalSci, true},
		{"not an investigator", sdbtest.UserBob, sdbtest.ProposalMlt, false},
		{"admin is not automatically an investigator", sdbtest.UserAlice, sdbtest.ProposalSci, false},
		{"unknown proposal", sdbtest.UserBob, "2024-1-SCI-999", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.IsInvestigator(tt.userID, tt.proposal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrincipalRoles(t *testing.T) {
	s := sdbtest.Open(t)

	pi, err := s.IsPrincipalInvestigator(sdbtest.UserBob, sdbtest.ProposalSci)
	require.NoError(t, err)
	assert.True(t, pi, "bob leads the proposal")

	pi, err = s.IsPrincipalInvestigator(sdbtest.UserEve, sdbtest.ProposalSci)
	require.NoError(t, err)
	assert.False(t, pi, "eve is contact, not leader")

	pc, err := s.IsPrincipalContact(sdbtest.UserEve, sdbtest.ProposalSci)
	require.NoError(t, err)
	assert.True(t, pc, "eve is the contact")

	pc, err = s.IsPrincipalContact(sdbtest.UserBob, sdbtest.ProposalSci)
	require.NoError(t, err)
	assert.False(t, pc)
}

func TestProposalPartners(t *testing.T) {
	s := sdbtest.Open(t)

	partners, err := s.ProposalPartners(sdbtest.ProposalSci)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{sdbtest.PartnerRSA, sdbtest.PartnerUW}, partners)

	partners, err = s.ProposalPartners(sdbtest.ProposalMlt)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{sdbtest.PartnerPOL}, partners)
}

func TestViewableProposalCodes(t *testing.T) {
	s := sdbtest.Open(t)

	tests := []struct {
		name    string
		userID  int64
		tacs    []string
		admin   bool
		board   bool
		want    []string
	}{
		{
			name:   "investigator sees own proposal",
			userID: sdbtest.UserBob,
			want:   []string{sdbtest.ProposalSci},
		},
		{
			name:   "TAC member sees partner-funded proposals",
			userID: sdbtest.UserCarol,
			tacs:   []string{sdbtest.PartnerRSA},
			want:   []string{sdbtest.ProposalSci},
		},
		{
			name:   "zero requested time does not grant TAC visibility",
			userID: sdbtest.UserCarol,
			tacs:   []string{sdbtest.PartnerPOL},
			want:   []string{sdbtest.ProposalMlt},
		},
		{
			name:   "admin sees everything",
			userID: sdbtest.UserAlice,
			admin:  true,
			want:   []string{sdbtest.ProposalSci, sdbtest.ProposalMlt},
		},
		{
			name:   "board member sees everything",
			userID: sdbtest.UserDave,
			board:  true,
			want:   []string{sdbtest.ProposalSci, sdbtest.ProposalMlt},
		},
		{
			name:   "plain user with no TACs sees nothing",
			userID: sdbtest.UserDave,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ViewableProposalCodes(tt.userID, tt.tacs, tt.admin, tt.board)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestBlockProposalCode(t *testing.T) {
	s := sdbtest.Open(t)

	code, err := s.BlockProposalCode(sdbtest.BlockSci)
	require.NoError(t, err)
	assert.Equal(t, sdbtest.ProposalSci, code)

	_, err = s.BlockProposalCode(9999)
	assert.ErrorIs(t, err, types.ErrBlockNotFound)
}
