// Identity and credential queries against the PiptUser and Investigator
// tables.
package sdb

import (
	"crypto/md5"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/saltastro/saltuser/pkg/types"
)

// FindUserID returns the user ID for a PIPT / Web Manager username.
// Returns ErrUserNotFound if the username does not exist.
func (s *Store) FindUserID(username string) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	var id int64
	err = db.QueryRow(
		"SELECT PiptUser_Id FROM PiptUser WHERE Username = ?",
		username,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, types.ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("finding user id for %q: %w", username, err)
	}
	return id, nil
}

// GetUser returns the identity snapshot for a user ID.
// Returns ErrUserNotFound if the user does not exist.
func (s *Store) GetUser(userID int64) (*types.User, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var u types.User
	err = db.QueryRow(
		`SELECT pu.PiptUser_Id, i.FirstName, i.Surname, i.Email
       FROM PiptUser AS pu
       JOIN Investigator AS i ON pu.Investigator_Id = i.Investigator_Id
       WHERE pu.PiptUser_Id = ?`,
		userID,
	).Scan(&u.UserID, &u.GivenName, &u.FamilyName, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %d: %w", userID, err)
	}
	return &u, nil
}

// VerifyCredentials checks a username-password combination.
// Returns ErrInvalidCredentials on mismatch.
//
// The Science Database stores passwords as MySQL MD5() digests. The
// digest is computed here rather than in SQL so the query works
// unchanged against SQLite snapshots.
func (s *Store) VerifyCredentials(username, password string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	var id int64
	err = db.QueryRow(
		"SELECT PiptUser_Id FROM PiptUser WHERE Username = ? AND Password = ?",
		username, PasswordDigest(password),
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return types.ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("verifying credentials for %q: %w", username, err)
	}
	return nil
}

// PasswordDigest returns the hex-encoded MD5 digest of a password,
// matching the MySQL MD5() convention used by the PiptUser table.
func PasswordDigest(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}
