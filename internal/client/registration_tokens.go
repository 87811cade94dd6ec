package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/fivetwenty-io/rancher-client/internal/constants"
	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// ErrTokenIDMissing is returned when a created token carries no usable id.
var ErrTokenIDMissing = errors.New("registration token id missing from response")

// RegistrationTokensClient implements rancher.RegistrationTokensClient.
type RegistrationTokensClient struct {
	orchestrator *Orchestrator
}

// NewRegistrationTokensClient creates a new registration tokens client.
func NewRegistrationTokensClient(orchestrator *Orchestrator) *RegistrationTokensClient {
	return &RegistrationTokensClient{
		orchestrator: orchestrator,
	}
}

// Create implements rancher.RegistrationTokensClient.Create.
func (c *RegistrationTokensClient) Create(ctx context.Context) (*rancher.RegistrationToken, error) {
	spec := RequestSpec{Method: http.MethodPost, Path: constants.RegistrationTokensPath}

	return call[rancher.RegistrationToken](ctx, c.orchestrator, spec, "creating registration token", "registration token")
}

// Get implements rancher.RegistrationTokensClient.Get.
func (c *RegistrationTokensClient) Get(ctx context.Context, id string) (*rancher.RegistrationToken, error) {
	err := requireID(id, "registration token")
	if err != nil {
		return nil, err
	}

	spec := RequestSpec{Method: http.MethodGet, Path: resourcePath(constants.RegistrationTokensPath, id)}

	return call[rancher.RegistrationToken](ctx, c.orchestrator, spec, "getting registration token", "registration token")
}

// Command implements rancher.RegistrationTokensClient.Command.
//
// A freshly created token may not carry its command yet, so the token is
// read back by id before the command field is extracted. A failed call in
// either step is returned as is.
func (c *RegistrationTokensClient) Command(ctx context.Context) (string, error) {
	body, err := c.orchestrator.Run(ctx, registrationCommandWorkflow())
	if err != nil {
		return "", err
	}

	var command string

	err = body.Decode(&command)
	if err != nil {
		return "", fmt.Errorf("parsing registration command: %w", err)
	}

	return command, nil
}

func registrationCommandWorkflow() *Workflow {
	return &Workflow{
		Name: "registration command",
		Steps: []Step{
			{
				Name: "create token",
				Request: func(*rancher.Body) (*RequestSpec, error) {
					return &RequestSpec{Method: http.MethodPost, Path: constants.RegistrationTokensPath}, nil
				},
				Reshape: tokenID,
			},
			{
				Name: "read token",
				Request: func(prev *rancher.Body) (*RequestSpec, error) {
					return &RequestSpec{
						Method: http.MethodGet,
						Path:   resourcePath(constants.RegistrationTokensPath, prev.Value().String()),
					}, nil
				},
				Reshape: func(body *rancher.Body) (*rancher.Body, error) {
					return body.Field("command")
				},
			},
		},
	}
}

// tokenID narrows a created token to its id, which must be a non-empty string.
func tokenID(body *rancher.Body) (*rancher.Body, error) {
	id, err := body.Field("id")
	if err != nil {
		return nil, err
	}

	value := id.Value()
	if value.Type != gjson.String || value.String() == "" {
		return nil, ErrTokenIDMissing
	}

	return id, nil
}
