// Schema DDL for the Science Database subset that saltuser queries.
// Used to build SQLite snapshots; the production MySQL schema is owned
// elsewhere and is never created by this package.
package sdb

import (
	"database/sql"
	"fmt"
)

const (
	createPiptUser = `CREATE TABLE PiptUser (
    PiptUser_Id INTEGER PRIMARY KEY,
    Username TEXT NOT NULL UNIQUE,
    Password TEXT NOT NULL,
    Investigator_Id INTEGER
);`

	createInvestigator = `CREATE TABLE Investigator (
    Investigator_Id INTEGER PRIMARY KEY,
    FirstName TEXT NOT NULL,
    Surname TEXT NOT NULL,
    Email TEXT NOT NULL,
    PiptUser_Id INTEGER,
    Institute_Id INTEGER
);`

	createPiptSetting = `CREATE TABLE PiptSetting (
    PiptSetting_Id INTEGER PRIMARY KEY,
    PiptSetting_Name TEXT NOT NULL UNIQUE
);`

	createPiptUserSetting = `CREATE TABLE PiptUserSetting (
    PiptUser_Id INTEGER NOT NULL,
    PiptSetting_Id INTEGER NOT NULL,
    Value TEXT NOT NULL,
    PRIMARY KEY (PiptUser_Id, PiptSetting_Id),
    FOREIGN KEY (PiptUser_Id) REFERENCES PiptUser(PiptUser_Id),
    FOREIGN KEY (PiptSetting_Id) REFERENCES PiptSetting(PiptSetting_Id)
);`

	createPiptUserTAC = `CREATE TABLE PiptUserTAC (
    PiptUser_Id INTEGER NOT NULL,
    Partner_Id INTEGER NOT NULL,
    Chair INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (PiptUser_Id, Partner_Id),
    FOREIGN KEY (PiptUser_Id) REFERENCES PiptUser(PiptUser_Id),
    FOREIGN KEY (Partner_Id) REFERENCES Partner(Partner_Id)
);`

	createPartner = `CREATE TABLE Partner (
    Partner_Id INTEGER PRIMARY KEY,
    Partner_Code TEXT NOT NULL UNIQUE
);`

	createInstitute = `CREATE TABLE Institute (
    Institute_Id INTEGER PRIMARY KEY,
    Partner_Id INTEGER NOT NULL,
    FOREIGN KEY (Partner_Id) REFERENCES Partner(Partner_Id)
);`

	createProposalCode = `CREATE TABLE ProposalCode (
    ProposalCode_Id INTEGER PRIMARY KEY,
    Proposal_Code TEXT NOT NULL UNIQUE
);`

	createProposal = `CREATE TABLE Proposal (
    Proposal_Id INTEGER PRIMARY KEY,
    ProposalCode_Id INTEGER NOT NULL,
    Semester_Id INTEGER NOT NULL,
    FOREIGN KEY (ProposalCode_Id) REFERENCES ProposalCode(ProposalCode_Id)
);`

	createProposalInvestigator = `CREATE TABLE ProposalInvestigator (
    ProposalCode_Id INTEGER NOT NULL,
    Investigator_Id INTEGER NOT NULL,
    PRIMARY KEY (ProposalCode_Id, Investigator_Id),
    FOREIGN KEY (ProposalCode_Id) REFERENCES ProposalCode(ProposalCode_Id),
    FOREIGN KEY (Investigator_Id) REFERENCES Investigator(Investigator_Id)
);`

	createProposalContact = `CREATE TABLE ProposalContact (
    ProposalCode_Id INTEGER PRIMARY KEY,
    Leader_Id INTEGER,
    Contact_Id INTEGER,
    FOREIGN KEY (ProposalCode_Id) REFERENCES ProposalCode(ProposalCode_Id)
);`

	createMultiPartner = `CREATE TABLE MultiPartner (
    ProposalCode_Id INTEGER NOT NULL,
    Semester_Id INTEGER NOT NULL,
    Partner_Id INTEGER NOT NULL,
    ReqTimeAmount REAL NOT NULL DEFAULT 0,
    PRIMARY KEY (ProposalCode_Id, Semester_Id, Partner_Id),
    FOREIGN KEY (ProposalCode_Id) REFERENCES ProposalCode(ProposalCode_Id),
    FOREIGN KEY (Partner_Id) REFERENCES Partner(Partner_Id)
);`

	createBlock = `CREATE TABLE Block (
    Block_Id INTEGER PRIMARY KEY,
    ProposalCode_Id INTEGER NOT NULL,
    FOREIGN KEY (ProposalCode_Id) REFERENCES ProposalCode(ProposalCode_Id)
);`
)

// schemaDDL lists the CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createPartner,
	createInstitute,
	createPiptUser,
	createInvestigator,
	createPiptSetting,
	createPiptUserSetting,
	createPiptUserTAC,
	createProposalCode,
	createProposal,
	createProposalInvestigator,
	createProposalContact,
	createMultiPartner,
	createBlock,
}

// InitSchema creates the Science Database tables on the given handle.
// Intended for SQLite snapshot files and test databases.
func InitSchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}
