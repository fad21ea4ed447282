// Proposal and block queries: investigator roles, partner
// representation, the viewable-proposal set, and block resolution.
package sdb

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/saltastro/saltuser/pkg/types"
)

// impossiblePartnerCode keeps the IN clause of the viewable-proposals
// query from matching when the user serves on no TAC. Partner codes are
// uppercase alphanumeric, so this value can never collide.
const impossiblePartnerCode = "-"

// IsInvestigator reports whether the user is one of the proposal's
// investigators.
func (s *Store) IsInvestigator(userID int64, proposalCode string) (bool, error) {
	return s.countRows(
		`SELECT COUNT(*)
       FROM ProposalCode AS pc
       JOIN ProposalInvestigator AS pi ON pc.ProposalCode_Id = pi.ProposalCode_Id
       JOIN Investigator AS i ON pi.Investigator_Id = i.Investigator_Id
       WHERE pc.Proposal_Code = ? AND i.PiptUser_Id = ?`,
		proposalCode, userID,
	)
}

// IsPrincipalInvestigator reports whether the user is the proposal's
// Principal Investigator.
func (s *Store) IsPrincipalInvestigator(userID int64, proposalCode string) (bool, error) {
	return s.countRows(
		`SELECT COUNT(*)
       FROM ProposalContact AS pco
       JOIN Investigator AS i ON pco.Leader_Id = i.Investigator_Id
       JOIN ProposalCode AS pc ON pco.ProposalCode_Id = pc.ProposalCode_Id
       WHERE pc.Proposal_Code = ? AND i.PiptUser_Id = ?`,
		proposalCode, userID,
	)
}

// IsPrincipalContact reports whether the user is the proposal's
// Principal Contact.
func (s *Store) IsPrincipalContact(userID int64, proposalCode string) (bool, error) {
	return s.countRows(
		`SELECT COUNT(*)
       FROM ProposalContact AS pco
       JOIN Investigator AS i ON pco.Contact_Id = i.Investigator_Id
       JOIN ProposalCode AS pc ON pco.ProposalCode_Id = pc.ProposalCode_Id
       WHERE pc.Proposal_Code = ? AND i.PiptUser_Id = ?`,
		proposalCode, userID,
	)
}

// ProposalPartners returns the partner codes represented among a
// proposal's investigators, via their institutes.
func (s *Store) ProposalPartners(proposalCode string) ([]string, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT DISTINCT p.Partner_Code
       FROM Partner AS p
       JOIN Institute AS ins ON p.Partner_Id = ins.Partner_Id
       JOIN Investigator AS i ON ins.Institute_Id = i.Institute_Id
       JOIN ProposalInvestigator AS pi ON i.Investigator_Id = pi.Investigator_Id
       JOIN ProposalCode AS pc ON pi.ProposalCode_Id = pc.ProposalCode_Id
       WHERE pc.Proposal_Code = ?`,
		proposalCode,
	)
	if err != nil {
		return nil, fmt.Errorf("querying partners for proposal %s: %w", proposalCode, err)
	}
	defer rows.Close()

	return scanStrings(rows)
}

// ViewableProposalCodes returns the proposal codes the user may view.
// A proposal is viewable when the user is one of its investigators,
// when one of the given TAC partners has requested time on it for the
// proposal's semester, or unconditionally for administrators and Board
// members.
func (s *Store) ViewableProposalCodes(userID int64, tacPartners []string, admin, board bool) ([]string, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	if len(tacPartners) == 0 {
		tacPartners = []string{impossiblePartnerCode}
	}

	placeholders := make([]string, len(tacPartners))
	args := []any{userID}
	for i, partner := range tacPartners {
		placeholders[i] = "?"
		args = append(args, partner)
	}
	args = append(args, boolArg(admin), boolArg(board))

	query := `SELECT DISTINCT pc.Proposal_Code
       FROM ProposalCode AS pc
       JOIN ProposalInvestigator AS pi ON pc.ProposalCode_Id = pi.ProposalCode_Id
       JOIN Investigator AS i ON pi.Investigator_Id = i.Investigator_Id
       JOIN PiptUser AS pu ON i.PiptUser_Id = pu.PiptUser_Id
       JOIN Proposal AS p ON pc.ProposalCode_Id = p.ProposalCode_Id
       JOIN MultiPartner AS mp ON pc.ProposalCode_Id = mp.ProposalCode_Id
                                  AND p.Semester_Id = mp.Semester_Id
       JOIN Partner AS partner ON mp.Partner_Id = partner.Partner_Id
       WHERE pu.PiptUser_Id = ?
             OR (partner.Partner_Code IN (` + strings.Join(placeholders, ", ") + `) AND mp.ReqTimeAmount > 0)
             OR 1 = ?
             OR 1 = ?`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying viewable proposals for user %d: %w", userID, err)
	}
	defer rows.Close()

	return scanStrings(rows)
}

// BlockProposalCode returns the proposal code of the proposal
// containing the block. Returns ErrBlockNotFound if no block has the
// given ID.
func (s *Store) BlockProposalCode(blockID int64) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	var code string
	err = db.QueryRow(
		`SELECT pc.Proposal_Code
       FROM ProposalCode AS pc
       JOIN Block AS b ON pc.ProposalCode_Id = b.ProposalCode_Id
       WHERE b.Block_Id = ?`,
		blockID,
	).Scan(&code)
	if errors.Is(err, sql.ErrNoRows) {
		return "", types.ErrBlockNotFound
	}
	if err != nil {
		return "", fmt.Errorf("resolving proposal code of block %d: %w", blockID, err)
	}
	return code, nil
}

// countRows runs a COUNT(*) query and reports whether the count is
// positive.
func (s *Store) countRows(query string, args ...any) (bool, error) {
	db, err := s.conn()
	if err != nil {
		return false, err
	}

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("counting rows: %w", err)
	}
	return count > 0, nil
}

// scanStrings collects a single-column string result set.
func scanStrings(rows *sql.Rows) ([]string, error) {
	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return values, nil
}

// boolArg renders a boolean as the 0/1 integer the SQL predicates expect.
func boolArg(b bool) int {
	if b {
		return 1
	}
	return 0
}
