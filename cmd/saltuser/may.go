// May command answers a single permission question.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/saltastro/saltuser/pkg/saltuser"
)

var mayCmd = &cobra.Command{
	Use:   "may <username> <action> <target>",
	Short: "Check whether a user may perform an action",
	Long: `May answers a permission question with "yes" or "no". A denial is an
answer, not an error; the command exits 0 either way.

Actions:
  view-proposal <proposal code>
  edit-proposal <proposal code>
  view-block <block id>
  edit-block <block id>

Example:
  saltuser may bob view-proposal 2024-1-SCI-005
  saltuser may bob edit-block 501`,
	Args: cobra.ExactArgs(3),
	RunE: runMay,
}

func runMay(cmd *cobra.Command, args []string) error {
	username, action, target := args[0], args[1], args[2]

	u, err := findUser(username)
	if err != nil {
		return err
	}

	allowed, err := checkPermission(u, action, target)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(map[string]any{
			"username": username,
			"action":   action,
			"target":   target,
			"allowed":  allowed,
		})
	}
	fmt.Println(yesNo(allowed))
	return nil
}

// checkPermission dispatches an action name to the matching permission
// check.
func checkPermission(u *saltuser.User, action, target string) (bool, error) {
	switch action {
	case "view-proposal":
		allowed, err := u.MayViewProposal(target)
		return allowed, classify(err)
	case "edit-proposal":
		allowed, err := u.MayEditProposal(target)
		return allowed, classify(err)
	case "view-block":
		blockID, err := parseBlockID(target)
		if err != nil {
			return false, err
		}
		allowed, err := u.MayViewBlock(blockID)
		return allowed, classify(err)
	case "edit-block":
		blockID, err := parseBlockID(target)
		if err != nil {
			return false, err
		}
		allowed, err := u.MayEditBlock(blockID)
		return allowed, classify(err)
	default:
		return false, fmt.Errorf("unknown action %q (valid: view-proposal, edit-proposal, view-block, edit-block)", action)
	}
}

func parseBlockID(target string) (int64, error) {
	blockID, err := strconv.ParseInt(target, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid block id %q", target)
	}
	return blockID, nil
}
