// Package rancherclient provides the primary entry point for constructing a
// Rancher API client that implements the rancher.Client interface.
//
// It layers configuration validation and the HTTP transport on top of the
// resource interfaces and types defined in the rancher package. Most
// applications import rancherclient to build a client, then use the returned
// rancher.Client to reach the resource clients: Containers(), Stacks(),
// Services(), Hosts(), Volumes(), Ports() and RegistrationTokens().
//
// Quick start
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
//
//	  cli, err := rancherclient.New(&rancher.Config{
//	    URL:       "https://rancher.example.com/v2-beta/projects/1a5",
//	    AccessKey: "ACCESS",
//	    SecretKey: "SECRET",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  hosts, err := cli.Hosts().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = hosts
//
//	  // Create a registration token and print its docker command.
//	  command, err := cli.RegistrationTokens().Command(ctx)
//	  if err != nil { log.Fatal(err) }
//	  log.Println(command)
//	}
//
// Construction never contacts the server. A missing URL or key, or a URL that
// is not absolute, is reported as a *rancher.ConfigurationError.
//
// # Helpers
//
// NewWithKeys builds a client from a URL and key pair without a Config.
package rancherclient
