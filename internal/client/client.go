package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/rancher-client/internal/http"
	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// Client implements the rancher.Client interface.
type Client struct {
	orchestrator *Orchestrator
	baseURL      string
	logger       rancher.Logger

	// Resource clients
	containers         rancher.ContainersClient
	stacks             rancher.StacksClient
	services           rancher.ServicesClient
	hosts              rancher.HostsClient
	volumes            rancher.VolumesClient
	ports              rancher.PortsClient
	registrationTokens rancher.RegistrationTokensClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *rancher.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a new Rancher API client. The configuration is validated and
// copied; no request is made.
func New(config *rancher.Config) (*Client, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	httpClient, err := http.NewClient(config.URL, config.AccessKey, config.SecretKey, createHTTPClientOptions(config)...)
	if err != nil {
		return nil, fmt.Errorf("creating http client: %w", err)
	}

	client := NewWithTransport(httpClient, config.Logger)
	client.baseURL = config.URL

	return client, nil
}

// NewWithTransport creates a client over an arbitrary transport. logger may
// be nil.
func NewWithTransport(transport Transport, logger rancher.Logger) *Client {
	client := &Client{
		orchestrator: NewOrchestrator(transport, logger),
		logger:       logger,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client
}

func (c *Client) initializeResourceClients() {
	c.containers = NewContainersClient(c.orchestrator)
	c.stacks = NewStacksClient(c.orchestrator)
	c.services = NewServicesClient(c.orchestrator)
	c.hosts = NewHostsClient(c.orchestrator)
	c.volumes = NewVolumesClient(c.orchestrator)
	c.ports = NewPortsClient(c.orchestrator)
	c.registrationTokens = NewRegistrationTokensClient(c.orchestrator)
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do implements rancher.Client.Do. Call failures are returned unwrapped.
func (c *Client) Do(ctx context.Context, method, path string, payload interface{}) (*rancher.Body, error) {
	return c.orchestrator.Do(ctx, RequestSpec{Method: method, Path: path, Payload: payload})
}

// Resource client accessors

// Containers implements rancher.Client.Containers.
func (c *Client) Containers() rancher.ContainersClient {
	return c.containers
}

// Stacks implements rancher.Client.Stacks.
func (c *Client) Stacks() rancher.StacksClient {
	return c.stacks
}

// Services implements rancher.Client.Services.
func (c *Client) Services() rancher.ServicesClient {
	return c.services
}

// Hosts implements rancher.Client.Hosts.
func (c *Client) Hosts() rancher.HostsClient {
	return c.hosts
}

// Volumes implements rancher.Client.Volumes.
func (c *Client) Volumes() rancher.VolumesClient {
	return c.volumes
}

// Ports implements rancher.Client.Ports.
func (c *Client) Ports() rancher.PortsClient {
	return c.ports
}

// RegistrationTokens implements rancher.Client.RegistrationTokens.
func (c *Client) RegistrationTokens() rancher.RegistrationTokensClient {
	return c.registrationTokens
}

// loggerAdapter adapts rancher.Logger to http.Logger.
type loggerAdapter struct {
	logger rancher.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

var _ rancher.Client = (*Client)(nil)
