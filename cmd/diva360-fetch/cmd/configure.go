// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brown-ivl/diva360-fetch/sdk/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the optional profile file",
	Long: `Manage the optional profile file.

The profile stores non-secret defaults (base path, subset, bucket,
endpoint) in ` + config.IniName + ` in the home directory. Flags and
DIVA360_* environment variables always take precedence over it.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the profile file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.IniPath()
		if err := config.SaveIni(v, path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "profile written to %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective non-secret configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range config.PersistableKeys() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, v.GetString(key))
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
