// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brown-ivl/diva360-fetch/sdk/catalog"
	"github.com/brown-ivl/diva360-fetch/sdk/config"
	"github.com/brown-ivl/diva360-fetch/sdk/services/fetch"
)

// fetchCmd runs the batch download. The first failing scene aborts the
// run and the error is propagated as a non-zero exit code.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download and extract every scene of the selected subset",
	Long: `Download and extract every scene of the selected subset.

Scenes are processed strictly in catalog order. Each scene directory is
created under the base path, the frame archive is downloaded, extracted
and deleted, then the three transforms files are downloaded.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, map[string]string{
			config.KeyBasePath:    "base-path",
			config.KeySubset:      "subset",
			config.KeyBucket:      "bucket",
			config.KeyRegion:      "region",
			config.KeyEndpointURL: "endpoint-url",
			config.KeyTransport:   "transport",
			config.KeyHTTPBaseURL: "http-base-url",
		})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := config.FromViper(v)

		scenes, err := catalog.Scenes(conf.Fetch.Subset)
		if err != nil {
			return err
		}

		svc, err := fetch.NewServiceFromConfig(cmd.Context(), conf)
		if err != nil {
			return err
		}

		return svc.FetchAll(cmd.Context(), fetch.Request{
			BasePath: conf.Fetch.BasePath,
			Scenes:   scenes,
		})
	},
}

func init() {
	fetchCmd.Flags().StringP("base-path", "p", "", "local root for scene directories")
	addSubsetFlag(fetchCmd)
	fetchCmd.Flags().StringP("bucket", "b", "", "dataset bucket name")
	fetchCmd.Flags().String("region", "", "bucket region")
	fetchCmd.Flags().String("endpoint-url", "", "custom S3-compatible endpoint")
	fetchCmd.Flags().String("transport", "", "object transport: s3 or http")
	fetchCmd.Flags().String("http-base-url", "", "base URL for http transport")

	rootCmd.AddCommand(fetchCmd)
}
