package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/rancher-client/internal/constants"
	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// ContainersClient implements rancher.ContainersClient.
type ContainersClient struct {
	orchestrator *Orchestrator
}

// NewContainersClient creates a new containers client.
func NewContainersClient(orchestrator *Orchestrator) *ContainersClient {
	return &ContainersClient{
		orchestrator: orchestrator,
	}
}

// Create implements rancher.ContainersClient.Create.
func (c *ContainersClient) Create(ctx context.Context, container *rancher.Container) (*rancher.Container, error) {
	if container == nil {
		return nil, fmt.Errorf("creating container: %w", rancher.ErrBodyRequired)
	}

	spec := RequestSpec{Method: http.MethodPost, Path: constants.ContainerPath, Payload: container}

	return call[rancher.Container](ctx, c.orchestrator, spec, "creating container", "container")
}

// Get implements rancher.ContainersClient.Get.
func (c *ContainersClient) Get(ctx context.Context, id string) (*rancher.Container, error) {
	err := requireID(id, "container")
	if err != nil {
		return nil, err
	}

	spec := RequestSpec{Method: http.MethodGet, Path: resourcePath(constants.ContainerPath, id)}

	return call[rancher.Container](ctx, c.orchestrator, spec, "getting container", "container")
}

// Update implements rancher.ContainersClient.Update. The container's ID
// selects the resource.
func (c *ContainersClient) Update(ctx context.Context, container *rancher.Container) (*rancher.Container, error) {
	if container == nil {
		return nil, fmt.Errorf("updating container: %w", rancher.ErrBodyRequired)
	}

	err := requireID(container.ID, "container")
	if err != nil {
		return nil, err
	}

	spec := RequestSpec{
		Method:  http.MethodPost,
		Path:    resourcePath(constants.ContainerPath, container.ID),
		Payload: container,
	}

	return call[rancher.Container](ctx, c.orchestrator, spec, "updating container", "container")
}

// Stop implements rancher.ContainersClient.Stop. params may be nil.
func (c *ContainersClient) Stop(ctx context.Context, id string, params *rancher.ContainerStopParams) (*rancher.Container, error) {
	err := requireID(id, "container")
	if err != nil {
		return nil, err
	}

	spec := RequestSpec{Method: http.MethodPost, Path: actionPath(constants.ContainerPath, id, constants.ActionStop)}
	if params != nil {
		spec.Payload = params
	}

	return call[rancher.Container](ctx, c.orchestrator, spec, "stopping container", "container")
}

// Start implements rancher.ContainersClient.Start.
func (c *ContainersClient) Start(ctx context.Context, id string) (*rancher.Container, error) {
	return c.action(ctx, id, constants.ActionStart, "starting container")
}

// Restart implements rancher.ContainersClient.Restart.
func (c *ContainersClient) Restart(ctx context.Context, id string) (*rancher.Container, error) {
	return c.action(ctx, id, constants.ActionRestart, "restarting container")
}

// Purge implements rancher.ContainersClient.Purge.
func (c *ContainersClient) Purge(ctx context.Context, id string) (*rancher.Container, error) {
	return c.action(ctx, id, constants.ActionPurge, "purging container")
}

// Remove implements rancher.ContainersClient.Remove.
func (c *ContainersClient) Remove(ctx context.Context, id string) (*rancher.Container, error) {
	err := requireID(id, "container")
	if err != nil {
		return nil, err
	}

	spec := RequestSpec{Method: http.MethodDelete, Path: resourcePath(constants.ContainerPath, id)}

	return call[rancher.Container](ctx, c.orchestrator, spec, "removing container", "container")
}

// Logs implements rancher.ContainersClient.Logs.
func (c *ContainersClient) Logs(ctx context.Context, id string) (*rancher.ContainerLogs, error) {
	err := requireID(id, "container")
	if err != nil {
		return nil, err
	}

	spec := RequestSpec{Method: http.MethodPost, Path: actionPath(constants.ContainerPath, id, constants.ActionLogs)}

	return call[rancher.ContainerLogs](ctx, c.orchestrator, spec, "getting container logs", "container logs")
}

func (c *ContainersClient) action(ctx context.Context, id, action, op string) (*rancher.Container, error) {
	err := requireID(id, "container")
	if err != nil {
		return nil, err
	}

	spec := RequestSpec{Method: http.MethodPost, Path: actionPath(constants.ContainerPath, id, action)}

	return call[rancher.Container](ctx, c.orchestrator, spec, op, "container")
}
