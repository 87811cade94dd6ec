package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

func TestStacksClient_Create(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, jsonHandler(http.StatusCreated, `{"id":"1st5","name":"web","state":"activating","healthState":"initializing"}`))
	client := newTestClient(t, server)

	start := true
	stack, err := client.Stacks().Create(context.Background(), &rancher.Stack{
		Resource:      rancher.Resource{Name: "web"},
		DockerCompose: "version: '2'\nservices:\n  nginx:\n    image: nginx\n",
		Environment:   map[string]string{"TAG": "1.25"},
		StartOnCreate: &start,
	})
	require.NoError(t, err)
	assert.Equal(t, "1st5", stack.ID)
	assert.Equal(t, "initializing", stack.HealthState)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.JSONEq(t, `{
		"name": "web",
		"dockerCompose": "version: '2'\nservices:\n  nginx:\n    image: nginx\n",
		"environment": {"TAG": "1.25"},
		"startOnCreate": true
	}`, requests[0].Body)
}

func TestStacksClient_ListServices(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, jsonHandler(http.StatusOK, `{
		"type": "collection",
		"resourceType": "service",
		"data": [
			{"id": "1s1", "name": "nginx", "stackId": "1st5", "scale": 2, "launchConfig": {"imageUuid": "docker:nginx"}},
			{"id": "1s2", "name": "redis", "stackId": "1st5"}
		]
	}`))
	client := newTestClient(t, server)

	services, err := client.Stacks().ListServices(context.Background(), "1st5")
	require.NoError(t, err)
	assert.Equal(t, "service", services.ResourceType)
	require.Len(t, services.Data, 2)
	assert.Equal(t, "nginx", services.Data[0].Name)
	require.NotNil(t, services.Data[0].Scale)
	assert.Equal(t, 2, *services.Data[0].Scale)
	assert.Equal(t, "docker:nginx", services.Data[0].LaunchConfig.ImageUUID)
	assert.Nil(t, services.Data[1].Scale)
}

func TestStacksClient_Remove_UsesPluralPath(t *testing.T) {
	t.Parallel()

	transport := newScriptedTransport()
	transport.respond(http.MethodPost, "/stacks/1st5/?action=remove", http.StatusAccepted, `{"id":"1st5","state":"removing"}`)

	stack, err := NewWithTransport(transport, nil).Stacks().Remove(context.Background(), "1st5")
	require.NoError(t, err)
	assert.Equal(t, "removing", stack.State)
}
