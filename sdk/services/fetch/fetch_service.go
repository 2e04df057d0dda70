// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

// Package fetch materializes diva360 scenes from the object store into a
// local directory tree, one scene at a time.
package fetch

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/brown-ivl/diva360-fetch/sdk/config"
	"github.com/brown-ivl/diva360-fetch/sdk/storage"
)

// Service runs batch fetches against a single object store.
type Service struct {
	store    storage.Store
	log      logrus.FieldLogger
	progress io.Writer
}

// Option adjusts a Service.
type Option func(*Service)

// WithLogger replaces the default logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Service) { s.log = log }
}

// WithProgressOutput redirects the single-line progress rendering.
// Pass io.Discard to silence it in tests.
func WithProgressOutput(w io.Writer) Option {
	return func(s *Service) { s.progress = w }
}

// NewService returns a Service reading from store.
func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewServiceFromConfig builds the store selected by the configuration and
// wraps it in a Service.
func NewServiceFromConfig(ctx context.Context, conf config.Config, opts ...Option) (*Service, error) {
	store, err := newStore(ctx, conf)
	if err != nil {
		return nil, err
	}
	return NewService(store, opts...), nil
}

func newStore(ctx context.Context, conf config.Config) (storage.Store, error) {
	switch conf.Fetch.Transport {
	case "", "s3":
		client, err := config.NewS3Client(ctx, conf.S3)
		if err != nil {
			return nil, fmt.Errorf("S3 init failed: %w", err)
		}
		return storage.NewS3(client, conf.Fetch.Bucket), nil
	case "http":
		base := conf.Fetch.HTTPBaseURL
		if base == "" {
			base = fmt.Sprintf("https://%s.s3.amazonaws.com", conf.Fetch.Bucket)
		}
		return storage.NewHTTP(base, nil), nil
	default:
		return nil, fmt.Errorf("unknown transport %q (one of: s3, http)", conf.Fetch.Transport)
	}
}

// runID tags all log lines of one batch so interleaved runs stay apart.
func runID() string {
	return uuid.NewString()
}
