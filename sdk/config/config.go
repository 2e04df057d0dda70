// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

package config

import "github.com/brown-ivl/diva360-fetch/sdk/catalog"

// Config gathers everything the fetcher needs to run.
type Config struct {
	Fetch FetchConfig
	S3    S3Config
}

type FetchConfig struct {
	// BasePath is where scene directories are materialized.
	BasePath string
	// Subset names the scene catalog that drives the run.
	Subset string
	// Bucket holds the processed_data/ prefix.
	Bucket string
	// Transport selects how objects are read: "s3" or "http".
	Transport string
	// HTTPBaseURL overrides the bucket website endpoint for http transport.
	HTTPBaseURL string
	// LogFormat is "text" or "json".
	LogFormat string
}

type S3Config struct {
	AccessKey   string
	SecretKey   string
	AccessToken string
	Region      string
	EndpointURL string
}

// Anonymous reports whether the bucket is accessed without credentials.
// The public diva360 bucket needs no signing.
func (c S3Config) Anonymous() bool {
	return c.AccessKey == "" && c.SecretKey == ""
}

// Default returns the configuration matching the published dataset layout.
func Default() Config {
	return Config{
		Fetch: FetchConfig{
			BasePath:  "./data",
			Subset:    catalog.DefaultSubset,
			Bucket:    "diva360",
			Transport: "s3",
			LogFormat: "text",
		},
		S3: S3Config{
			Region: "us-east-1",
		},
	}
}
