// Tacs command lists a user's TAC memberships.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tacsCmd = &cobra.Command{
	Use:   "tacs <username>",
	Short: "List the TACs a user serves on",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := findUser(args[0])
		if err != nil {
			return err
		}

		memberships := u.TACMemberships()
		if flagJSON {
			return printJSON(memberships)
		}

		if len(memberships) == 0 {
			fmt.Println("no TAC memberships")
			return nil
		}
		for _, m := range memberships {
			if m.Chair {
				fmt.Printf("%s (chair)\n", m.PartnerCode)
			} else {
				fmt.Println(m.PartnerCode)
			}
		}
		return nil
	},
}
