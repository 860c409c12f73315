package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var forceConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to --config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configPath); err == nil && !forceConfig {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
		}
		if err := cfg.Save(configPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceConfig, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}
