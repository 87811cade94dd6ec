package rancher

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// ContainersClient manages containers.
type ContainersClient interface {
	Create(ctx context.Context, container *Container) (*Container, error)
	Get(ctx context.Context, id string) (*Container, error)
	Update(ctx context.Context, container *Container) (*Container, error)
	Stop(ctx context.Context, id string, params *ContainerStopParams) (*Container, error)
	Start(ctx context.Context, id string) (*Container, error)
	Restart(ctx context.Context, id string) (*Container, error)
	Remove(ctx context.Context, id string) (*Container, error)
	Purge(ctx context.Context, id string) (*Container, error)
	Logs(ctx context.Context, id string) (*ContainerLogs, error)
}

// StacksClient manages stacks.
type StacksClient interface {
	Create(ctx context.Context, stack *Stack) (*Stack, error)
	Get(ctx context.Context, id string) (*Stack, error)
	ListServices(ctx context.Context, id string) (*Collection[Service], error)
	Remove(ctx context.Context, id string) (*Stack, error)
}

// ServicesClient manages services.
type ServicesClient interface {
	Get(ctx context.Context, id string) (*Service, error)
	Start(ctx context.Context, id string) (*Service, error)
	Stop(ctx context.Context, id string) (*Service, error)
	Restart(ctx context.Context, id string, params *ServiceRestartParams) (*Service, error)
}

// HostsClient manages hosts.
type HostsClient interface {
	List(ctx context.Context, query url.Values) ([]Host, error)
	Get(ctx context.Context, id string) (*Host, error)
	Delete(ctx context.Context, id string) (*Host, error)
}

// VolumesClient manages volumes.
type VolumesClient interface {
	List(ctx context.Context, query url.Values) ([]Volume, error)
	Get(ctx context.Context, id string) (*Volume, error)
	Remove(ctx context.Context, id string) (*Volume, error)
}

// PortsClient lists published ports.
type PortsClient interface {
	List(ctx context.Context) (*Collection[Port], error)
}

// RegistrationTokensClient issues host registration tokens.
type RegistrationTokensClient interface {
	Create(ctx context.Context) (*RegistrationToken, error)
	Get(ctx context.Context, id string) (*RegistrationToken, error)
	// Command creates a token, reads it back and returns its registration
	// command. The created token is not removed if the read fails.
	Command(ctx context.Context) (string, error)
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	Containers() ContainersClient
	Stacks() StacksClient
	Services() ServicesClient
	Hosts() HostsClient
	Volumes() VolumesClient
	Ports() PortsClient
	RegistrationTokens() RegistrationTokensClient
}

// Client is the Rancher API client.
type Client interface {
	ResourceClients

	// Do issues an arbitrary call. The payload, when non-nil, is sent as JSON.
	Do(ctx context.Context, method, path string, payload interface{}) (*Body, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration.
//
// URL, AccessKey and SecretKey are required. Every request carries
// "Authorization: Basic base64(AccessKey:SecretKey)". The config is read once
// by the constructor; changing it afterwards has no effect on the client.
type Config struct {
	// URL is the API base URL, e.g. "https://rancher.example.com/v2-beta/projects/1a5".
	// Request paths are appended to it.
	URL string
	// AccessKey is the API access key.
	AccessKey string
	// SecretKey is the API secret key.
	SecretKey string

	// HTTPTimeout bounds a single call. Zero means no client-side timeout;
	// per-call deadlines should come from the context.
	HTTPTimeout time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is optional.
	Logger Logger
}

// Validate checks that all required fields are present and that URL is absolute.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}

	var missing []string

	if strings.TrimSpace(c.URL) == "" {
		missing = append(missing, "url")
	}

	if c.AccessKey == "" {
		missing = append(missing, "access_key")
	}

	if c.SecretKey == "" {
		missing = append(missing, "secret_key")
	}

	if len(missing) > 0 {
		return &ConfigurationError{Fields: missing, Reason: "required"}
	}

	u, err := url.Parse(strings.TrimSpace(c.URL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ConfigurationError{Fields: []string{"url"}, Reason: "must be an absolute URL"}
	}

	return nil
}
