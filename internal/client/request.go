package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// requireID rejects an empty resource identifier before any call is issued.
func requireID(id, kind string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s: %w", kind, rancher.ErrIDRequired)
	}

	return nil
}

func resourcePath(collection, id string) string {
	return collection + "/" + url.PathEscape(id)
}

func actionPath(collection, id, action string) string {
	return resourcePath(collection, id) + "/?action=" + action
}

func listPath(collection string, query url.Values) string {
	if len(query) == 0 {
		return collection
	}

	return collection + "?" + query.Encode()
}

// decodeBody decodes a JSON body into a new T. An empty body yields nil.
func decodeBody[T any](body *rancher.Body, what string) (*T, error) {
	if body.IsEmpty() {
		return nil, nil //nolint:nilnil // empty 2xx responses carry no resource
	}

	var value T

	err := body.Decode(&value)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	return &value, nil
}

// call runs spec and decodes the successful body into a T.
func call[T any](ctx context.Context, orchestrator *Orchestrator, spec RequestSpec, op, what string) (*T, error) {
	body, err := orchestrator.Do(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return decodeBody[T](body, what)
}

// listData runs spec and unwraps the "data" field of the collection response.
func listData[T any](ctx context.Context, orchestrator *Orchestrator, spec RequestSpec, op, what string) ([]T, error) {
	body, err := orchestrator.Do(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := body.Field("data")
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	var items []T

	err = data.Decode(&items)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	return items, nil
}
