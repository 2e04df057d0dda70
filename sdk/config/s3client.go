// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client bundles the raw client with a part downloader for large objects.
type S3Client struct {
	S3         *s3.Client
	Downloader *manager.Downloader
}

func NewS3Client(ctx context.Context, cfgCreds S3Config) (*S3Client, error) {
	var creds aws.CredentialsProvider
	if cfgCreds.Anonymous() {
		creds = aws.AnonymousCredentials{}
	} else {
		creds = aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
			cfgCreds.AccessKey,
			cfgCreds.SecretKey,
			cfgCreds.AccessToken,
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion(cfgCreds.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Options := func(o *s3.Options) {
		if cfgCreds.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfgCreds.EndpointURL)
			o.UsePathStyle = true // needed for most S3-compat stores
		}
	}

	client := s3.NewFromConfig(cfg, s3Options)

	// The batch contract is strictly sequential, so no concurrent parts.
	dl := manager.NewDownloader(client, func(d *manager.Downloader) {
		d.Concurrency = 1
	})

	return &S3Client{S3: client, Downloader: dl}, nil
}
