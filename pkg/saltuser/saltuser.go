// Package saltuser answers role and permission questions about users of
// the Southern African Large Telescope, identified by the username they
// use for the Principal Investigator Proposal Tool (PIPT) or the Web
// Manager. It includes no authentication beyond credential checks.
package saltuser

import (
	"fmt"
	"sort"
	"sync"

	"github.com/saltastro/saltuser/internal/sdb"
	"github.com/saltastro/saltuser/pkg/types"
)

// User is a SALT user with roles and permissions. Create one with New
// or FindByUsername; the zero value is not usable.
//
// A User caches its TAC memberships, Board membership, and the set of
// proposals it may view. The caches are safe for concurrent use but are
// never invalidated; construct a fresh User to observe database changes.
type User struct {
	store types.Store

	id         int64
	givenName  string
	familyName string
	email      string

	memberships []types.TACMembership

	mu          sync.Mutex
	boardMember *bool
	viewable    map[string]struct{}
}

// New constructs the user with the given ID. Loads the identity snapshot
// and TAC memberships eagerly. Returns ErrUserNotFound if no user has
// the given ID.
func New(userID int64, store types.Store) (*User, error) {
	identity, err := store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	memberships, err := store.TACMemberships(userID)
	if err != nil {
		return nil, fmt.Errorf("loading TAC memberships: %w", err)
	}

	return &User{
		store:       store,
		id:          identity.UserID,
		givenName:   identity.GivenName,
		familyName:  identity.FamilyName,
		email:       identity.Email,
		memberships: memberships,
	}, nil
}

// FindByUsername constructs the user with the given PIPT / Web Manager
// username. Returns ErrUserNotFound if the username does not exist.
func FindByUsername(username string, store types.Store) (*User, error) {
	userID, err := store.FindUserID(username)
	if err != nil {
		return nil, err
	}
	return New(userID, store)
}

// Verify checks that a username-password combination is valid.
// Returns ErrInvalidCredentials on mismatch.
func Verify(username, password string, store types.Store) error {
	return store.VerifyCredentials(username, password)
}

// ID returns the user's PiptUser ID.
func (u *User) ID() int64 { return u.id }

// GivenName returns the user's given name(s).
func (u *User) GivenName() string { return u.givenName }

// FamilyName returns the user's family name.
func (u *User) FamilyName() string { return u.familyName }

// Email returns the user's email address.
func (u *User) Email() string { return u.email }

// TACs returns the partner codes of the TACs the user serves on.
func (u *User) TACs() []string {
	codes := make([]string, 0, len(u.memberships))
	for _, m := range u.memberships {
		codes = append(codes, m.PartnerCode)
	}
	return codes
}

// TACMemberships returns the user's TAC memberships, including chair
// flags.
func (u *User) TACMemberships() []types.TACMembership {
	memberships := make([]types.TACMembership, len(u.memberships))
	copy(memberships, u.memberships)
	return memberships
}

// IsTACMember reports whether the user serves on the partner's TAC.
func (u *User) IsTACMember(partnerCode string) bool {
	for _, m := range u.memberships {
		if m.PartnerCode == partnerCode {
			return true
		}
	}
	return false
}

// IsTACChair reports whether the user chairs the partner's TAC.
func (u *User) IsTACChair(partnerCode string) bool {
	for _, m := range u.memberships {
		if m.PartnerCode == partnerCode && m.Chair {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user is an administrator. The right is
// queried on every call.
func (u *User) IsAdmin() (bool, error) {
	return u.store.HasRight(u.id, types.RightAdmin)
}

// IsBoardMember reports whether the user is a SALT Board member.
// Computed once and cached.
func (u *User) IsBoardMember() (bool, error) {
	u.mu.Lock()
	cached := u.boardMember
	u.mu.Unlock()
	if cached != nil {
		return *cached, nil
	}

	board, err := u.store.HasRight(u.id, types.RightBoard)
	if err != nil {
		return false, err
	}

	u.mu.Lock()
	u.boardMember = &board
	u.mu.Unlock()
	return board, nil
}

// IsInvestigator reports whether the user is an investigator on the
// proposal.
func (u *User) IsInvestigator(proposalCode string) (bool, error) {
	return u.store.IsInvestigator(u.id, proposalCode)
}

// IsPrincipalInvestigator reports whether the user is the proposal's
// Principal Investigator.
func (u *User) IsPrincipalInvestigator(proposalCode string) (bool, error) {
	return u.store.IsPrincipalInvestigator(u.id, proposalCode)
}

// IsPrincipalContact reports whether the user is the proposal's
// Principal Contact.
func (u *User) IsPrincipalContact(proposalCode string) (bool, error) {
	return u.store.IsPrincipalContact(u.id, proposalCode)
}

// IsProposalTACMember reports whether the user serves on a TAC of any
// partner represented among the proposal's investigators.
func (u *User) IsProposalTACMember(proposalCode string) (bool, error) {
	partners, err := u.store.ProposalPartners(proposalCode)
	if err != nil {
		return false, err
	}
	for _, partner := range partners {
		if u.IsTACMember(partner) {
			return true, nil
		}
	}
	return false, nil
}

// MayViewProposal reports whether the user may view the proposal.
func (u *User) MayViewProposal(proposalCode string) (bool, error) {
	viewable, err := u.viewableProposals()
	if err != nil {
		return false, err
	}
	_, ok := viewable[proposalCode]
	return ok, nil
}

// MayEditProposal reports whether the user may edit the proposal: its
// Principal Investigator, its Principal Contact, and administrators may.
func (u *User) MayEditProposal(proposalCode string) (bool, error) {
	pi, err := u.IsPrincipalInvestigator(proposalCode)
	if err != nil {
		return false, err
	}
	if pi {
		return true, nil
	}

	pc, err := u.IsPrincipalContact(proposalCode)
	if err != nil {
		return false, err
	}
	if pc {
		return true, nil
	}

	return u.IsAdmin()
}

// MayViewBlock reports whether the user may view the block. Returns
// ErrBlockNotFound if no block has the given ID.
func (u *User) MayViewBlock(blockID int64) (bool, error) {
	proposalCode, err := u.store.BlockProposalCode(blockID)
	if err != nil {
		return false, err
	}
	return u.MayViewProposal(proposalCode)
}

// MayEditBlock reports whether the user may edit the block. Returns
// ErrBlockNotFound if no block has the given ID.
func (u *User) MayEditBlock(blockID int64) (bool, error) {
	proposalCode, err := u.store.BlockProposalCode(blockID)
	if err != nil {
		return false, err
	}
	return u.MayEditProposal(proposalCode)
}

// ViewableProposals returns the sorted proposal codes the user may view.
func (u *User) ViewableProposals() ([]string, error) {
	viewable, err := u.viewableProposals()
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(viewable))
	for code := range viewable {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

// viewableProposals returns the cached viewable-proposal set, computing
// it on first use.
func (u *User) viewableProposals() (map[string]struct{}, error) {
	u.mu.Lock()
	cached := u.viewable
	u.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	admin, err := u.IsAdmin()
	if err != nil {
		return nil, err
	}
	board, err := u.IsBoardMember()
	if err != nil {
		return nil, err
	}

	codes, err := u.store.ViewableProposalCodes(u.id, u.TACs(), admin, board)
	if err != nil {
		return nil, err
	}

	viewable := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		viewable[code] = struct{}{}
	}

	u.mu.Lock()
	if u.viewable == nil {
		u.viewable = viewable
	} else {
		viewable = u.viewable
	}
	u.mu.Unlock()
	return viewable, nil
}

// NewStore creates an unattached Science Database store. Callers attach
// it with a types.Config and detach it when done, without importing
// internal packages.
func NewStore() types.Store {
	return sdb.NewStore()
}
