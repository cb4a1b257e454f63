// internal/cli/show_config.go
package deckhand

import (
	"os"

	"github.com/mwiater/deckhand/internal/appconfig"
	"github.com/spf13/cobra"
)

// showConfigCmd implements 'show config', which prints the effective
// merged configuration.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  "The 'config' subcommand prints the merged configuration: flags over config file over defaults.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		if JSONModeEnabled() {
			return printJSON(cfg)
		}
		appconfig.ShowConfig(os.Stdout, cfg.ConfigPath, cfg, appconfig.Config{})
		return nil
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
