// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type httpStore struct {
	base   string
	client *http.Client
}

// NewHTTP returns a Store reading objects from an HTTP(S) endpoint, e.g.
// the public bucket website URL. Keys are appended to the base URL.
func NewHTTP(baseURL string, client *http.Client) Store {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpStore{base: strings.TrimSuffix(baseURL, "/"), client: client}
}

func (h *httpStore) url(key string) string {
	return h.base + "/" + strings.TrimPrefix(key, "/")
}

func (h *httpStore) Has(ctx context.Context, key string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, h.url(key), nil)
	if err != nil {
		return false, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to head %s: %w", h.url(key), err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("store responded with: %s", resp.Status)
	}
}

func (h *httpStore) Get(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url(key), nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get %s: %w", h.url(key), err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("failed to get %s: store responded with: %s", h.url(key), resp.Status)
	}
	size := SizeUnknown
	if resp.ContentLength >= 0 {
		size = resp.ContentLength
	}
	return resp.Body, size, nil
}

// Keys is not supported over plain HTTP: the bucket website endpoint has
// no listing API. The fetcher never lists, so this only matters for
// tooling built on top of the store.
func (h *httpStore) Keys(context.Context, string) ([]string, error) {
	return nil, fmt.Errorf("listing is not supported over http transport")
}
