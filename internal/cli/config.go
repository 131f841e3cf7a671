package cli

import "github.com/spf13/cobra"

var configCmd = GroupCommand{
	Use:   "config",
	Short: "Manage the calendar configuration",
	Subcommands: []*cobra.Command{
		configShowCmd,
		configGetCmd,
		configSetCmd,
		configResetCmd,
	},
}.Build()
