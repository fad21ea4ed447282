// Verify command checks a username-password combination.
package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saltastro/saltuser/pkg/saltuser"
)

var flagPassword string

var verifyCmd = &cobra.Command{
	Use:   "verify <username>",
	Short: "Verify a username-password combination",
	Long: `Verify checks the given credentials against the Science Database.
The password is read from the --password flag, or from stdin when the
flag is omitted.

Example:
  saltuser verify bob --password hunter2
  echo hunter2 | saltuser verify bob`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&flagPassword, "password", "", "password (read from stdin when omitted)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	username := args[0]

	password := flagPassword
	if password == "" {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return sysErr(fmt.Errorf("read password: %w", err))
		}
		password = strings.TrimRight(line, "\r\n")
	}

	// Returning the error, rather than exiting here, lets the store
	// detach normally before main maps it to an exit code.
	if err := saltuser.Verify(username, password, store); err != nil {
		return classify(err)
	}

	fmt.Println("credentials ok")
	return nil
}
