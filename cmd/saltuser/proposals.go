// Proposals command lists the proposals a user may view.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var proposalsCmd = &cobra.Command{
	Use:   "proposals <username>",
	Short: "List the proposals a user may view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := findUser(args[0])
		if err != nil {
			return err
		}

		codes, err := u.ViewableProposals()
		if err != nil {
			return sysErr(fmt.Errorf("list viewable proposals: %w", err))
		}

		if flagJSON {
			if codes == nil {
				codes = []string{}
			}
			return printJSON(codes)
		}

		for _, code := range codes {
			fmt.Println(code)
		}
		return nil
	},
}
