package client

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		config     *rancher.Config
		wantErr    bool
		wantFields []string
	}{
		{
			name:   "valid config",
			config: &rancher.Config{URL: "https://rancher.example.com/v2-beta/projects/1a5", AccessKey: "ak", SecretKey: "sk"},
		},
		{
			name:    "nil config",
			config:  nil,
			wantErr: true,
		},
		{
			name:       "missing everything",
			config:     &rancher.Config{},
			wantErr:    true,
			wantFields: []string{"url", "access_key", "secret_key"},
		},
		{
			name:       "missing secret",
			config:     &rancher.Config{URL: "https://rancher.example.com", AccessKey: "ak"},
			wantErr:    true,
			wantFields: []string{"secret_key"},
		},
		{
			name:       "relative url",
			config:     &rancher.Config{URL: "rancher.example.com", AccessKey: "ak", SecretKey: "sk"},
			wantErr:    true,
			wantFields: []string{"url"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := New(tt.config)
			if !tt.wantErr {
				require.NoError(t, err)
				require.NotNil(t, client)
				assert.Equal(t, tt.config.URL, client.BaseURL())
				assert.NotNil(t, client.Containers())
				assert.NotNil(t, client.Stacks())
				assert.NotNil(t, client.Services())
				assert.NotNil(t, client.Hosts())
				assert.NotNil(t, client.Volumes())
				assert.NotNil(t, client.Ports())
				assert.NotNil(t, client.RegistrationTokens())

				return
			}

			require.Error(t, err)
			assert.Nil(t, client)

			if tt.wantFields == nil {
				assert.ErrorIs(t, err, rancher.ErrConfigRequired)

				return
			}

			var configErr *rancher.ConfigurationError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tt.wantFields, configErr.Fields)
		})
	}
}

func TestClient_Do_Echo(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		body, _ := io.ReadAll(request.Body)

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write(body)
	})
	client := newTestClient(t, server)

	payload := map[string]interface{}{"name": "web", "scale": 3}

	body, err := client.Do(context.Background(), http.MethodPost, "/echo", payload)
	require.NoError(t, err)
	require.NotNil(t, body)
	assert.JSONEq(t, `{"name":"web","scale":3}`, body.String())
	assert.Equal(t, int64(3), body.Get("scale").Int())

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.JSONEq(t, `{"name":"web","scale":3}`, requests[0].Body)
}

func TestClient_Do_EchoTransport(t *testing.T) {
	t.Parallel()

	transport := newScriptedTransport()
	transport.respond(http.MethodPost, "/echo", http.StatusOK, `{"name":"web","scale":3}`)

	body, err := NewWithTransport(transport, nil).Do(context.Background(), http.MethodPost, "/echo", map[string]interface{}{"name": "web", "scale": 3})
	require.NoError(t, err)
	assert.True(t, body.IsJSON())
	assert.Equal(t, "web", body.Get("name").String())
	assert.Equal(t, int64(3), body.Get("scale").Int())
}

func TestClient_Do_RawBody(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "text/plain")
		_, _ = writer.Write([]byte("pong"))
	})
	client := newTestClient(t, server)

	body, err := client.Do(context.Background(), http.MethodGet, "/ping", nil)
	require.NoError(t, err)
	assert.False(t, body.IsJSON())
	assert.Equal(t, "pong", body.String())
}

func TestClient_Do_ErrorsUnwrapped(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, jsonHandler(http.StatusConflict, `{"code":"NotUnique"}`))
	client := newTestClient(t, server)

	_, err := client.Do(context.Background(), http.MethodPost, "/stack", map[string]string{"name": "web"})
	require.Error(t, err)

	httpErr, ok := err.(*rancher.HTTPError) //nolint:errorlint
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, httpErr.StatusCode)
	assert.True(t, rancher.IsConflict(err))
}

func TestClient_Debug_Logging(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, jsonHandler(http.StatusOK, `{"data":[]}`))
	logger := &recordingLogger{}

	client, err := New(&rancher.Config{
		URL:         server.URL + testBasePath,
		AccessKey:   "access",
		SecretKey:   "secret",
		Debug:       true,
		Logger:      logger,
		HTTPTimeout: 5 * time.Second,
		UserAgent:   "rancher-cli/test",
	})
	require.NoError(t, err)

	_, err = client.Hosts().List(context.Background(), nil)
	require.NoError(t, err)

	debug := logger.Entries("debug")
	require.Len(t, debug, 2)
	assert.Equal(t, "HTTP Request", debug[0].Message)
	assert.Equal(t, "HTTP Response", debug[1].Message)
	assert.Equal(t, "rancher-cli/test", server.Requests()[0].Header.Get("User-Agent"))
}
