// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/brown-ivl/diva360-fetch/sdk/catalog"
	"github.com/brown-ivl/diva360-fetch/sdk/config"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "Print the scene identifiers of a catalog subset",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, map[string]string{config.KeySubset: "subset"})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		scenes, err := catalog.Scenes(v.GetString(config.KeySubset))
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(format) {
		case "json":
			b, err := json.MarshalIndent(scenes, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
		case "yaml", "yml":
			b, err := yaml.Marshal(scenes)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(b))
		default:
			for _, s := range scenes {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
		}
		return nil
	},
}

func init() {
	addSubsetFlag(scenesCmd)
	scenesCmd.Flags().StringP("format", "f", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(scenesCmd)
}
