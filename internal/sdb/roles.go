// Role queries: PIPT rights and TAC memberships.
package sdb

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/saltastro/saltuser/pkg/types"
)

// HasRight reports whether the user holds the named right with a
// positive value. A missing setting row and a zero value both mean the
// right is not held.
func (s *Store) HasRight(userID int64, right string) (bool, error) {
	db, err := s.conn()
	if err != nil {
		return false, err
	}

	var value string
	err = db.QueryRow(
		`SELECT pus.Value
       FROM PiptUserSetting AS pus
       JOIN PiptSetting AS ps ON pus.PiptSetting_Id = ps.PiptSetting_Id
       WHERE pus.PiptUser_Id = ? AND ps.PiptSetting_Name = ?`,
		userID, right,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying right %s for user %d: %w", right, userID, err)
	}

	// Setting values are stored as strings in the PiptUserSetting table.
	n, err := strconv.Atoi(value)
	if err != nil {
		return false, fmt.Errorf("parsing value of right %s for user %d: %w", right, userID, err)
	}
	return n > 0, nil
}

// TACMemberships returns the TACs the user serves on, with the chair
// flag set for TACs the user chairs.
func (s *Store) TACMemberships(userID int64) ([]types.TACMembership, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT p.Partner_Code, putac.Chair
       FROM PiptUserTAC AS putac
       JOIN Partner AS p ON putac.Partner_Id = p.Partner_Id
       WHERE putac.PiptUser_Id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying TAC memberships for user %d: %w", userID, err)
	}
	defer rows.Close()

	var memberships []types.TACMembership
	for rows.Next() {
		var m types.TACMembership
		var chair int
		if err := rows.Scan(&m.PartnerCode, &chair); err != nil {
			return nil, fmt.Errorf("scanning TAC membership: %w", err)
		}
		m.Chair = chair == 1
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating TAC memberships: %w", err)
	}
	return memberships, nil
}
