// User command prints a user's identity and roles.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saltastro/saltuser/pkg/types"
)

var userCmd = &cobra.Command{
	Use:   "user <username>",
	Short: "Show a user's identity and roles",
	Long: `User looks up a SALT user by their PIPT / Web Manager username and
prints their identity and roles.

Example:
  saltuser user bob
  saltuser user bob --json`,
	Args: cobra.ExactArgs(1),
	RunE: runUser,
}

func runUser(cmd *cobra.Command, args []string) error {
	u, err := findUser(args[0])
	if err != nil {
		return err
	}

	admin, err := u.IsAdmin()
	if err != nil {
		return sysErr(fmt.Errorf("check admin right: %w", err))
	}
	board, err := u.IsBoardMember()
	if err != nil {
		return sysErr(fmt.Errorf("check board membership: %w", err))
	}

	if flagJSON {
		return printJSON(struct {
			types.User
			Admin bool                  `json:"admin"`
			Board bool                  `json:"board"`
			TACs  []types.TACMembership `json:"tacs"`
		}{
			User: types.User{
				UserID:     u.ID(),
				GivenName:  u.GivenName(),
				FamilyName: u.FamilyName(),
				Email:      u.Email(),
			},
			Admin: admin,
			Board: board,
			TACs:  u.TACMemberships(),
		})
	}

	fmt.Printf("%s %s <%s> (user %d)\n", u.GivenName(), u.FamilyName(), u.Email(), u.ID())
	fmt.Println("admin:", yesNo(admin))
	fmt.Println("board member:", yesNo(board))
	for _, m := range u.TACMemberships() {
		if m.Chair {
			fmt.Printf("TAC: %s (chair)\n", m.PartnerCode)
		} else {
			fmt.Printf("TAC: %s\n", m.PartnerCode)
		}
	}
	return nil
}
