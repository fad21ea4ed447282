// Root command for the saltuser CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saltastro/saltuser/internal/sdb"
	"github.com/saltastro/saltuser/pkg/saltuser"
	"github.com/saltastro/saltuser/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDriver    string
	flagDSN       string
	flagJSON      bool
)

// store is the attached Science Database store, initialized by
// PersistentPreRunE for every command that queries the database.
var store types.Store

var rootCmd = &cobra.Command{
	Use:   "saltuser",
	Short: "saltuser answers role and permission questions about SALT users",
	Long: `saltuser checks the roles and permissions of users of the Southern
African Large Telescope, as recorded in the SALT Science Database. Users
are identified by the username they use for the Principal Investigator
Proposal Tool (PIPT) or the Web Manager.`,
	Version:           saltuser.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initStore,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "", "database driver: mysql or sqlite (default: mysql)")
	rootCmd.PersistentFlags().StringVar(&flagDSN, "dsn", "", "database connection string")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(tacsCmd)
	rootCmd.AddCommand(proposalsCmd)
	rootCmd.AddCommand(mayCmd)
	rootCmd.AddCommand(serveCmd)
}

// initStore loads config and attaches the Science Database store.
func initStore(cmd *cobra.Command, args []string) error {
	// Commands that never touch the database skip store setup. This
	// includes cobra's generated completion commands and the hidden
	// __complete helpers shells invoke on every keystroke.
	switch cmd.Name() {
	case "version", "init", "help", "completion",
		cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return nil
	}
	if cmd.HasParent() && cmd.Parent().Name() == "completion" {
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return sysErr(fmt.Errorf("load config: %w", err))
	}

	s := sdb.NewStore()
	if err := s.Attach(cfg); err != nil {
		return sysErr(fmt.Errorf("attach store: %w", err))
	}

	store = s
	return nil
}

// closeStore detaches the store and releases the database connection.
func closeStore() error {
	if store == nil {
		return nil
	}
	if err := store.Detach(); err != nil {
		return sysErr(err)
	}
	return nil
}
