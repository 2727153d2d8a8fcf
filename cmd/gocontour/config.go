package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gocontour/internal/config"
)

var (
	configSave   string
	configGlobal bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long:  "Print the configuration after merging defaults, the config file and flags. With --save it is written to a file instead.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVar(&configSave, "save", "", "Write the configuration to this file")
	configCmd.Flags().BoolVar(&configGlobal, "global", false, "Write the configuration to the user config directory")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configGlobal {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", config.UserConfigFile())
		return nil
	}

	if configSave == "" {
		return cfg.Write(cmd.OutOrStdout())
	}

	if err := cfg.SaveTo(configSave); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", configSave)
	return nil
}
