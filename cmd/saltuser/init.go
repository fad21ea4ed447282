// Init command writes a default configuration file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml",
	Long: `Init creates the configuration directory and writes a default
config.yaml if one does not exist. Edit the file to set the Science
Database connection string.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := writeDefaultConfig()
		if err != nil {
			return err
		}
		fmt.Println("wrote", path)
		return nil
	},
}
