// Package sdbtest builds seeded SQLite renditions of the Science
// Database for tests. The fixture holds a small SALT consortium: three
// partners, six users, two proposals, and two blocks.
package sdbtest

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/saltastro/saltuser/internal/sdb"
	"github.com/saltastro/saltuser/pkg/types"
)

// Fixture users. Passwords follow the pattern "<username>-secret".
const (
	// Alice is an administrator (RightAdmin = 1).
	UserAlice int64 = 1
	// Bob investigates and leads ProposalSci as Principal Investigator.
	// His institute belongs to partner RSA.
	UserBob int64 = 2
	// Carol chairs the RSA TAC.
	UserCarol int64 = 3
	// Dave is a Board member (RightBoard = 1) and carries a zero-valued
	// RightAdmin setting row.
	UserDave int64 = 4
	// Eve investigates ProposalSci and is its Principal Contact. Her
	// institute belongs to partner UW.
	UserEve int64 = 5
	// Frank investigates ProposalMlt. His institute belongs to POL.
	UserFrank int64 = 6
)

// Fixture proposals and blocks.
const (
	// ProposalSci has investigators Bob and Eve, PI Bob, PC Eve, and
	// requested time from RSA (40) and POL (0).
	ProposalSci = "2024-1-SCI-005"
	// ProposalMlt has investigator Frank and requested time from POL.
	ProposalMlt = "2024-1-MLT-003"

	// BlockSci belongs to ProposalSci, BlockMlt to ProposalMlt.
	BlockSci int64 = 501
	BlockMlt int64 = 502
)

// Fixture partner codes.
const (
	PartnerRSA = "RSA"
	PartnerUW  = "UW"
	PartnerPOL = "POL"
)

// Create builds a seeded SQLite database file in a temp directory and
// returns its path, for callers that open the database themselves.
func Create(t testing.TB) string {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "sdb.sqlite")

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open fixture database: %v", err)
	}
	if err := sdb.InitSchema(db); err != nil {
		t.Fatalf("create fixture schema: %v", err)
	}
	seed(t, db)
	if err := db.Close(); err != nil {
		t.Fatalf("close fixture database: %v", err)
	}
	return dsn
}

// Open creates a seeded SQLite database and returns an attached store
// over it. The store is detached on test cleanup.
func Open(t testing.TB) *sdb.Store {
	t.Helper()

	dsn := Create(t)
	store := sdb.NewStore()
	if err := store.Attach(types.Config{Driver: types.DriverSQLite, DSN: dsn}); err != nil {
		t.Fatalf("attach store: %v", err)
	}
	t.Cleanup(func() { store.Detach() })
	return store
}

// seed inserts the fixture rows.
func seed(t testing.TB, db *sql.DB) {
	t.Helper()

	stmts := []struct {
		query string
		args  [][]any
	}{
		{
			query: "INSERT INTO Partner (Partner_Id, Partner_Code) VALUES (?, ?)",
			args: [][]any{
				{1, PartnerRSA},
				{2, PartnerUW},
				{3, PartnerPOL},
			},
		},
		{
			query: "INSERT INTO Institute (Institute_Id, Partner_Id) VALUES (?, ?)",
			args: [][]any{
				{1, 1},
				{2, 2},
				{3, 3},
			},
		},
		{
			query: "INSERT INTO PiptUser (PiptUser_Id, Username, Password, Investigator_Id) VALUES (?, ?, ?, ?)",
			args: [][]any{
				{UserAlice, "alice", sdb.PasswordDigest("alice-secret"), 1},
				{UserBob, "bob", sdb.PasswordDigest("bob-secret"), 2},
				{UserCarol, "carol", sdb.PasswordDigest("carol-secret"), 3},
				{UserDave, "dave", sdb.PasswordDigest("dave-secret"), 4},
				{UserEve, "eve", sdb.PasswordDigest("eve-secret"), 5},
				{UserFrank, "frank", sdb.PasswordDigest("frank-secret"), 6},
			},
		},
		{
			query: `INSERT INTO Investigator
       (Investigator_Id, FirstName, Surname, Email, PiptUser_Id, Institute_Id)
       VALUES (?, ?, ?, ?, ?, ?)`,
			args: [][]any{
				{1, "Alice", "Adams", "alice@saao.ac.za", UserAlice, 1},
				{2, "Bob", "Baker", "bob@saao.ac.za", UserBob, 1},
				{3, "Carol", "Cilliers", "carol@uct.ac.za", UserCarol, 1},
				{4, "Dave", "Dube", "dave@salt.ac.za", UserDave, 1},
				{5, "Eve", "Evans", "eve@wisc.edu", UserEve, 2},
				{6, "Frank", "Fiala", "frank@camk.edu.pl", UserFrank, 3},
			},
		},
		{
			query: "INSERT INTO PiptSetting (PiptSetting_Id, PiptSetting_Name) VALUES (?, ?)",
			args: [][]any{
				{1, types.RightAdmin},
				{2, types.RightBoard},
			},
		},
		{
			query: "INSERT INTO PiptUserSetting (PiptUser_Id, PiptSetting_Id, Value) VALUES (?, ?, ?)",
			args: [][]any{
				{UserAlice, 1, "1"},
				{UserDave, 1, "0"},
				{UserDave, 2, "1"},
			},
		},
		{
			query: "INSERT INTO PiptUserTAC (PiptUser_Id, Partner_Id, Chair) VALUES (?, ?, ?)",
			args: [][]any{
				{UserCarol, 1, 1},
			},
		},
		{
			query: "INSERT INTO ProposalCode (ProposalCode_Id, Proposal_Code) VALUES (?, ?)",
			args: [][]any{
				{100, ProposalSci},
				{101, ProposalMlt},
			},
		},
		{
			query: "INSERT INTO Proposal (Proposal_Id, ProposalCode_Id, Semester_Id) VALUES (?, ?, ?)",
			args: [][]any{
				{1000, 100, 10},
				{1001, 101, 10},
			},
		},
		{
			query: "INSERT INTO ProposalInvestigator (ProposalCode_Id, Investigator_Id) VALUES (?, ?)",
			args: [][]any{
				{100, 2},
				{100, 5},
				{101, 6},
			},
		},
		{
			query: "INSERT INTO ProposalContact (ProposalCode_Id, Leader_Id, Contact_Id) VALUES (?, ?, ?)",
			args: [][]any{
				{100, 2, 5},
				{101, 6, 6},
			},
		},
		{
			query: "INSERT INTO MultiPartner (ProposalCode_Id, Semester_Id, Partner_Id, ReqTimeAmount) VALUES (?, ?, ?, ?)",
			args: [][]any{
				{100, 10, 1, 40},
				{100, 10, 3, 0},
				{101, 10, 3, 25},
			},
		},
		{
			query: "INSERT INTO Block (Block_Id, ProposalCode_Id) VALUES (?, ?)",
			args: [][]any{
				{BlockSci, 100},
				{BlockMlt, 101},
			},
		},
	}

	for _, stmt := range stmts {
		for _, args := range stmt.args {
			if _, err := db.Exec(stmt.query, args...); err != nil {
				t.Fatalf("seed fixture row: %v", err)
			}
		}
	}
}
