package cli

import (
	"fmt"
	"os"

	"github.com/Flyrell/daytask/internal/config"
	"github.com/spf13/cobra"
)

var configShowCmd = LeafCommand{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runConfigShow(cmd, homeDir)
	},
}.Build()

func runConfigShow(cmd *cobra.Command, homeDir string) error {
	cfg, err := config.Load(homeDir)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("Configuration (%s):", Silent(config.Path(homeDir)))))
	for _, key := range config.Keys() {
		value, _ := cfg.Get(key)
		if value == "" {
			value = Silent("(unset)")
		} else {
			value = Primary(value)
		}
		_, _ = fmt.Fprintf(w, "  %-24s %s\n", key, value)
	}
	return nil
}

var configGetCmd = LeafCommand{
	Use:   "get <key>",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runConfigGet(cmd, homeDir, args[0])
	},
}.Build()

func runConfigGet(cmd *cobra.Command, homeDir, key string) error {
	cfg, err := config.Load(homeDir)
	if err != nil {
		return err
	}
	value, err := cfg.Get(key)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}
