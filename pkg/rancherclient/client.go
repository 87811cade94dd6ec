// Package rancherclient provides the main entry point for creating Rancher API clients
package rancherclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/rancher-client/internal/client"
	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// New creates a new Rancher API client. The config is copied, so later changes
// to it do not affect the client.
func New(config *rancher.Config) (rancher.Client, error) {
	if config == nil {
		return nil, rancher.ErrConfigRequired
	}

	normalized := *config
	normalized.URL = strings.TrimSpace(normalized.URL)

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithKeys creates a new client with a base URL and an API key pair.
func NewWithKeys(url, accessKey, secretKey string) (rancher.Client, error) {
	return New(&rancher.Config{
		URL:       url,
		AccessKey: accessKey,
		SecretKey: secretKey,
	})
}
