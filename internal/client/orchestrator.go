package client

import (
	"context"
	"net/http"

	internalhttp "github.com/fivetwenty-io/rancher-client/internal/http"
	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// Transport sends a request and returns whatever response was received.
// *internalhttp.Client implements it.
type Transport interface {
	Do(ctx context.Context, req *internalhttp.Request) (*internalhttp.Response, error)
}

// RequestSpec describes one call. Path is relative to the base URL and may
// carry an action query such as "?action=stop". Payload, when non-nil, is
// sent as a JSON body whatever the method.
type RequestSpec struct {
	Method  string
	Path    string
	Payload interface{}
}

// Outcome is the result of one call. Exactly one of Body and Err is set.
type Outcome struct {
	Body *rancher.Body
	Err  error
}

// OK reports whether the call succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Orchestrator executes calls over a Transport and classifies the results.
// It holds no per-call state and is safe for concurrent use.
type Orchestrator struct {
	transport Transport
	logger    rancher.Logger
}

// NewOrchestrator creates an orchestrator. logger may be nil.
func NewOrchestrator(transport Transport, logger rancher.Logger) *Orchestrator {
	return &Orchestrator{
		transport: transport,
		logger:    logger,
	}
}

// Execute issues spec. Transport failures are returned unchanged, a status
// outside [200, 300) becomes a *rancher.HTTPError without reading the body as
// JSON, and anything else is a success.
func (o *Orchestrator) Execute(ctx context.Context, spec RequestSpec) Outcome {
	resp, err := o.transport.Do(ctx, &internalhttp.Request{
		Method: spec.Method,
		Path:   spec.Path,
		Body:   spec.Payload,
	})
	if err != nil {
		return Outcome{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Outcome{Err: &rancher.HTTPError{
			Method:     spec.Method,
			URL:        resp.URL,
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
		}}
	}

	return Outcome{Body: rancher.NewBody(resp.Body)}
}

// Do is Execute returning the outcome as a value and an error.
func (o *Orchestrator) Do(ctx context.Context, spec RequestSpec) (*rancher.Body, error) {
	outcome := o.Execute(ctx, spec)

	return outcome.Body, outcome.Err
}

func (o *Orchestrator) warn(msg string, fields map[string]interface{}) {
	if o.logger != nil {
		o.logger.Warn(msg, fields)
	}
}

func (o *Orchestrator) debug(msg string, fields map[string]interface{}) {
	if o.logger != nil {
		o.logger.Debug(msg, fields)
	}
}
