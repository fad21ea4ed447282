package types

import "errors"

// Store defines read-only access to the subset of the SALT Science
// Database that role and permission checks need. Callers attach to a
// database, run queries, and detach when done.
type Store interface {
	// Attach opens the database connection described by config.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases the database connection. Idempotent: multiple
	// calls succeed. After Detach, queries return ErrStoreDetached.
	Detach() error

	// FindUserID returns the user ID for a PIPT / Web Manager username.
	// Returns ErrUserNotFound if the username does not exist.
	FindUserID(username string) (int64, error)

	// GetUser returns the identity snapshot for a user ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetUser(userID int64) (*User, error)

	// VerifyCredentials checks a username-password combination against
	// the database. Returns ErrInvalidCredentials on mismatch.
	VerifyCredentials(username, password string) error

	// HasRight reports whether the user holds the named right
	// (RightAdmin, RightBoard) with a positive value.
	HasRight(userID int64, right string) (bool, error)

	// TACMemberships returns the TACs the user serves on.
	TACMemberships(userID int64) ([]TACMembership, error)

	// IsInvestigator reports whether the user is one of the proposal's
	// investigators.
	IsInvestigator(userID int64, proposalCode string) (bool, error)

	// IsPrincipalInvestigator reports whether the user is the proposal's
	// Principal Investigator.
	IsPrincipalInvestigator(userID int64, proposalCode string) (bool, error)

	// IsPrincipalContact reports whether the user is the proposal's
	// Principal Contact.
	IsPrincipalContact(userID int64, proposalCode string) (bool, error)

	// ProposalPartners returns the partner codes represented among a
	// proposal's investigators.
	ProposalPartners(proposalCode string) ([]string, error)

	// ViewableProposalCodes returns the proposal codes the user may
	// view: proposals they investigate, proposals on which one of the
	// given TAC partners has requested time, or every proposal when the
	// user is an administrator or Board member.
	ViewableProposalCodes(userID int64, tacPartners []string, admin, board bool) ([]string, error)

	// BlockProposalCode returns the proposal code of the proposal
	// containing the block. Returns ErrBlockNotFound if no block has
	// the given ID.
	BlockProposalCode(blockID int64) (string, error)
}

// Store lifecycle and lookup errors.
var (
	ErrStoreDetached      = errors.New("store is detached")
	ErrAlreadyAttached    = errors.New("store is already attached")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrBlockNotFound      = errors.New("block not found")
)
