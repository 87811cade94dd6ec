package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/fivetwenty-io/rancher-client/internal/constants"
	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// VolumesClient implements rancher.VolumesClient.
type VolumesClient struct {
	orchestrator *Orchestrator
}

// NewVolumesClient creates a new volumes client.
func NewVolumesClient(orchestrator *Orchestrator) *VolumesClient {
	return &VolumesClient{
		orchestrator: orchestrator,
	}
}

// List implements rancher.VolumesClient.List.
func (c *VolumesClient) List(ctx context.Context, query url.Values) ([]rancher.Volume, error) {
	spec := RequestSpec{Method: http.MethodGet, Path: listPath(constants.VolumesPath, query)}

	return listData[rancher.Volume](ctx, c.orchestrator, spec, "listing volumes", "volumes list")
}

// Get implements rancher.VolumesClient.Get.
func (c *VolumesClient) Get(ctx context.Context, id string) (*rancher.Volume, error) {
	err := requireID(id, "volume")
	if err != nil {
		return nil, err
	}

	spec := RequestSpec{Method: http.MethodGet, Path: resourcePath(constants.VolumesPath, id)}

	return call[rancher.Volume](ctx, c.orchestrator, spec, "getting volume", "volume")
}

// Remove implements rancher.VolumesClient.Remove.
func (c *VolumesClient) Remove(ctx context.Context, id string) (*rancher.Volume, error) {
	err := requireID(id, "volume")
	if err != nil {
		return nil, err
	}

	spec := RequestSpec{Method: http.MethodDelete, Path: resourcePath(constants.VolumesPath, id)}

	return call[rancher.Volume](ctx, c.orchestrator, spec, "removing volume", "volume")
}
