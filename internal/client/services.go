package client

import (
	"context"
	"net/http"

	"github.com/fivetwenty-io/rancher-client/internal/constants"
	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// ServicesClient implements rancher.ServicesClient.
type ServicesClient struct {
	orchestrator *Orchestrator
}

// NewServicesClient creates a new services client.
func NewServicesClient(orchestrator *Orchestrator) *ServicesClient {
	return &ServicesClient{
		orchestrator: orchestrator,
	}
}

// Get implements rancher.ServicesClient.Get.
func (c *ServicesClient) Get(ctx context.Context, id string) (*rancher.Service, error) {
	err := requireID(id, "service")
	if err != nil {
		return nil, err
	}

	spec := RequestSpec{Method: http.MethodGet, Path: resourcePath(constants.ServicesPath, id)}

	return call[rancher.Service](ctx, c.orchestrator, spec, "getting service", "service")
}

// Start implements rancher.ServicesClient.Start.
func (c *ServicesClient) Start(ctx context.Context, id string) (*rancher.Service, error) {
	return c.action(ctx, id, constants.ActionActivate, nil, "starting service")
}

// Stop implements rancher.ServicesClient.Stop.
func (c *ServicesClient) Stop(ctx context.Context, id string) (*rancher.Service, error) {
	return c.action(ctx, id, constants.ActionDeactivate, nil, "stopping service")
}

// Restart implements rancher.ServicesClient.Restart. params may be nil.
func (c *ServicesClient) Restart(ctx context.Context, id string, params *rancher.ServiceRestartParams) (*rancher.Service, error) {
	var payload interface{}
	if params != nil {
		payload = params
	}

	return c.action(ctx, id, constants.ActionRestart, payload, "restarting service")
}

func (c *ServicesClient) action(ctx context.Context, id, action string, payload interface{}, op string) (*rancher.Service, error) {
	err := requireID(id, "service")
	if err != nil {
		return nil, err
	}

	spec := RequestSpec{
		Method:  http.MethodPost,
		Path:    actionPath(constants.ServicesPath, id, action),
		Payload: payload,
	}

	return call[rancher.Service](ctx, c.orchestrator, spec, op, "service")
}
