// Version command for the saltuser CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saltastro/saltuser/pkg/saltuser"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the saltuser version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("saltuser", saltuser.Version)
	},
}
