// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/brown-ivl/diva360-fetch/sdk/config"
)

var v = viper.New()

var rootCmd = &cobra.Command{
	Use:   "diva360-fetch",
	Short: "Fetch Diva360 capture scenes from the public dataset bucket",
	Long: `Fetch Diva360 capture scenes from the public dataset bucket.

For every scene in the selected catalog subset the tool downloads the
frame archive, extracts it in place, removes the archive and downloads
the transforms metadata. The batch is sequential and stops on the first
error.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadIni(v, config.IniPath()); err != nil {
			return err
		}
		switch v.GetString(config.KeyLogFormat) {
		case "json":
			logrus.SetFormatter(&logrus.JSONFormatter{})
		default:
			logrus.SetFormatter(&logrus.TextFormatter{})
		}
		return nil
	},
}

// Execute runs the CLI. The caller decides the process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.BindEnv(v)

	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")
	_ = v.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
}

func addSubsetFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("subset", "s", "", "catalog subset: full, short or short-default")
}

// bindFlags attaches the executed command's flags to viper keys. Bound at
// run time because several commands declare a flag of the same name.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, flag := range keys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}
