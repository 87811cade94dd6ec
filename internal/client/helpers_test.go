package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/rancher-client/internal/http"
	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

const testBasePath = "/v2-beta/projects/1a5"

// recordedRequest is what the test server saw, with the base path removed.
type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     string
}

type testServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

// newTestServer starts a server that records every request before handing it
// to handler.
func newTestServer(t *testing.T, handler http.HandlerFunc) *testServer {
	t.Helper()

	server := &testServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, _ := io.ReadAll(request.Body)
		request.Body = io.NopCloser(bytes.NewReader(body))

		server.mu.Lock()
		server.requests = append(server.requests, recordedRequest{
			Method:   request.Method,
			Path:     request.URL.Path[len(testBasePath):],
			RawQuery: request.URL.RawQuery,
			Header:   request.Header.Clone(),
			Body:     string(body),
		})
		server.mu.Unlock()

		handler(writer, request)
	}))
	t.Cleanup(server.Close)

	return server
}

func (s *testServer) Requests() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]recordedRequest(nil), s.requests...)
}

// jsonHandler answers every request with status and body.
func jsonHandler(status int, body string) http.HandlerFunc {
	return func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = io.WriteString(writer, body)
	}
}

func newTestClient(t *testing.T, server *testServer) *Client {
	t.Helper()

	client, err := New(&rancher.Config{
		URL:       server.URL + testBasePath,
		AccessKey: "access",
		SecretKey: "secret",
	})
	require.NoError(t, err)

	return client
}

// scriptedTransport returns canned responses keyed by "METHOD path".
type scriptedTransport struct {
	mu        sync.Mutex
	responses map[string]*internalhttp.Response
	errs      map[string]error
	calls     []string
	payloads  []interface{}
}

func newScriptedTransport() *scriptedTransport {
	return &scriptedTransport{
		responses: map[string]*internalhttp.Response{},
		errs:      map[string]error{},
	}
}

func (s *scriptedTransport) respond(method, path string, status int, body string) {
	s.responses[method+" "+path] = &internalhttp.Response{
		URL:        "http://rancher.test" + path,
		StatusCode: status,
		Headers:    http.Header{"Content-Type": []string{"application/json"}},
		Body:       []byte(body),
	}
}

func (s *scriptedTransport) fail(method, path string, err error) {
	s.errs[method+" "+path] = err
}

func (s *scriptedTransport) Do(_ context.Context, req *internalhttp.Request) (*internalhttp.Response, error) {
	key := req.Method + " " + req.Path

	s.mu.Lock()
	s.calls = append(s.calls, key)
	s.payloads = append(s.payloads, req.Body)
	s.mu.Unlock()

	if err, ok := s.errs[key]; ok {
		return nil, err
	}

	if resp, ok := s.responses[key]; ok {
		return resp, nil
	}

	return &internalhttp.Response{URL: "http://rancher.test" + req.Path, StatusCode: http.StatusNotFound}, nil
}

func (s *scriptedTransport) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.calls...)
}

// recordingLogger collects log lines by level.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

type logEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

func (l *recordingLogger) log(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, logEntry{Level: level, Message: msg, Fields: fields})
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.log("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.log("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.log("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.log("error", msg, fields) }

func (l *recordingLogger) Entries(level string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []logEntry

	for _, entry := range l.entries {
		if entry.Level == level {
			out = append(out, entry)
		}
	}

	return out
}
