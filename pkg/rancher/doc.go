// Package rancher provides types, interfaces, and helpers for working with the
// Rancher container-orchestration management API.
//
// # Overview
//
// The rancher package defines the domain types (Container, Stack, Service,
// Host, Volume, Port, RegistrationToken) and the interfaces for
// resource-oriented clients (ContainersClient, StacksClient, ...). A concrete
// implementation is provided by the rancherclient package, which validates
// configuration and wires the HTTP transport. Most consumers should import
// rancherclient to construct a client and then use the interfaces defined here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/rancher-client/pkg/rancher"
//	  "github.com/fivetwenty-io/rancher-client/pkg/rancherclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := rancherclient.New(&rancher.Config{
//	    URL:       "https://rancher.example.com/v2-beta/projects/1a5",
//	    AccessKey: "access",
//	    SecretKey: "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  container, err := cli.Containers().Start(ctx, "1i42")
//	  if err != nil { log.Fatal(err) }
//	  _ = container
//	}
//
// # Errors
//
// Every call either succeeds or fails with exactly one of two error kinds:
// TransportError (no interpretable response) or HTTPError (a status outside
// [200, 300), carrying the status code and headers). KindOf, StatusCode and
// the IsNotFound/IsUnauthorized/IsForbidden/IsConflict helpers make it easy to
// branch on them. Nothing is retried.
//
// # Response bodies
//
// Successful responses are returned as a Body. A body that is valid JSON can
// be decoded or queried with gjson paths; anything else is kept raw.
package rancher
