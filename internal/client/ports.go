package client

import (
	"context"
	"net/http"

	"github.com/fivetwenty-io/rancher-client/internal/constants"
	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// PortsClient implements rancher.PortsClient.
type PortsClient struct {
	orchestrator *Orchestrator
}

// NewPortsClient creates a new ports client.
func NewPortsClient(orchestrator *Orchestrator) *PortsClient {
	return &PortsClient{
		orchestrator: orchestrator,
	}
}

// List implements rancher.PortsClient.List.
func (c *PortsClient) List(ctx context.Context) (*rancher.Collection[rancher.Port], error) {
	spec := RequestSpec{Method: http.MethodGet, Path: constants.PortsPath}

	return call[rancher.Collection[rancher.Port]](ctx, c.orchestrator, spec, "listing ports", "ports list")
}
