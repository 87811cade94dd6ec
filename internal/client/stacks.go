package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/rancher-client/internal/constants"
	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// StacksClient implements rancher.StacksClient.
type StacksClient struct {
	orchestrator *Orchestrator
}

// NewStacksClient creates a new stacks client.
func NewStacksClient(orchestrator *Orchestrator) *StacksClient {
	return &StacksClient{
		orchestrator: orchestrator,
	}
}

// Create implements rancher.StacksClient.Create.
func (c *StacksClient) Create(ctx context.Context, stack *rancher.Stack) (*rancher.Stack, error) {
	if stack == nil {
		return nil, fmt.Errorf("creating stack: %w", rancher.ErrBodyRequired)
	}

	spec := RequestSpec{Method: http.MethodPost, Path: constants.StackPath, Payload: stack}

	return call[rancher.Stack](ctx, c.orchestrator, spec, "creating stack", "stack")
}

// Get implements rancher.StacksClient.Get.
func (c *StacksClient) Get(ctx context.Context, id string) (*rancher.Stack, error) {
	err := requireID(id, "stack")
	if err != nil {
		return nil, err
	}

	spec := RequestSpec{Method: http.MethodGet, Path: resourcePath(constants.StackPath, id)}

	return call[rancher.Stack](ctx, c.orchestrator, spec, "getting stack", "stack")
}

// ListServices implements rancher.StacksClient.ListServices.
func (c *StacksClient) ListServices(ctx context.Context, id string) (*rancher.Collection[rancher.Service], error) {
	err := requireID(id, "stack")
	if err != nil {
		return nil, err
	}

	spec := RequestSpec{Method: http.MethodGet, Path: resourcePath(constants.StackPath, id) + "/services"}

	return call[rancher.Collection[rancher.Service]](ctx, c.orchestrator, spec, "listing stack services", "stack services")
}

// Remove implements rancher.StacksClient.Remove. Removal goes through the
// plural collection's remove action.
func (c *StacksClient) Remove(ctx context.Context, id string) (*rancher.Stack, error) {
	err := requireID(id, "stack")
	if err != nil {
		return nil, err
	}

	spec := RequestSpec{Method: http.MethodPost, Path: actionPath(constants.StacksPath, id, constants.ActionRemove)}

	return call[rancher.Stack](ctx, c.orchestrator, spec, "removing stack", "stack")
}
