package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/fivetwenty-io/rancher-client/internal/constants"
	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// HostsClient implements rancher.HostsClient.
type HostsClient struct {
	orchestrator *Orchestrator
}

// NewHostsClient creates a new hosts client.
func NewHostsClient(orchestrator *Orchestrator) *HostsClient {
	return &HostsClient{
		orchestrator: orchestrator,
	}
}

// List implements rancher.HostsClient.List. The collection's data field is
// returned.
func (c *HostsClient) List(ctx context.Context, query url.Values) ([]rancher.Host, error) {
	spec := RequestSpec{Method: http.MethodGet, Path: listPath(constants.HostsPath, query)}

	return listData[rancher.Host](ctx, c.orchestrator, spec, "listing hosts", "hosts list")
}

// Get implements rancher.HostsClient.Get.
func (c *HostsClient) Get(ctx context.Context, id string) (*rancher.Host, error) {
	err := requireID(id, "host")
	if err != nil {
		return nil, err
	}

	spec := RequestSpec{Method: http.MethodGet, Path: resourcePath(constants.HostsPath, id)}

	return call[rancher.Host](ctx, c.orchestrator, spec, "getting host", "host")
}

// Delete implements rancher.HostsClient.Delete.
func (c *HostsClient) Delete(ctx context.Context, id string) (*rancher.Host, error) {
	err := requireID(id, "host")
	if err != nil {
		return nil, err
	}

	spec := RequestSpec{Method: http.MethodDelete, Path: resourcePath(constants.HostsPath, id)}

	return call[rancher.Host](ctx, c.orchestrator, spec, "deleting host", "host")
}
