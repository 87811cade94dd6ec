package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// NewServicesCommand creates the services command group.
func NewServicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "services",
		Aliases: []string{"service", "svc"},
		Short:   "Manage services",
		Long:    "Inspect, activate, deactivate and restart Rancher services",
	}

	cmd.AddCommand(newServicesGetCommand())
	cmd.AddCommand(newServicesStartCommand())
	cmd.AddCommand(newServicesStopCommand())
	cmd.AddCommand(newServicesRestartCommand())

	return cmd
}

func serviceRows(service *rancher.Service) []string {
	scale := ""
	if service.Scale != nil {
		scale = strconv.Itoa(*service.Scale)
	}

	image := ""
	if service.LaunchConfig != nil {
		image = service.LaunchConfig.ImageUUID
	}

	return resourceRows(service.Resource,
		"Stack", service.StackID,
		"Health", service.HealthState,
		"Scale", scale,
		"Image", image,
		"Instances", joinOrNA(service.InstanceIDs),
	)
}

type serviceActionFunc func(services rancher.ServicesClient, ctx context.Context, id string) (*rancher.Service, error) //nolint:revive

func serviceAction(verb, short, long string, action serviceActionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " SERVICE_ID",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			service, err := action(client.Services(), commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to %s service: %w", verb, err)
			}

			return renderResource(cmd, service, serviceRows)
		},
	}
}

func newServicesGetCommand() *cobra.Command {
	return serviceAction("get", "Get service details", "Display detailed information about a specific service", rancher.ServicesClient.Get)
}

func newServicesStartCommand() *cobra.Command {
	return serviceAction("start", "Start a service", "Activate a service so its containers are scheduled", rancher.ServicesClient.Start)
}

func newServicesStopCommand() *cobra.Command {
	return serviceAction("stop", "Stop a service", "Deactivate a service and stop its containers", rancher.ServicesClient.Stop)
}

func newServicesRestartCommand() *cobra.Command {
	var (
		file, data string
		batchSize  int
		interval   int
	)

	cmd := &cobra.Command{
		Use:   "restart SERVICE_ID",
		Short: "Restart a service",
		Long:  "Restart a service's containers, optionally in batches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var params *rancher.ServiceRestartParams

			fromPayload := &rancher.ServiceRestartParams{}

			ok, err := readPayload(cmd, file, data, fromPayload)
			if err != nil {
				return err
			}

			switch {
			case ok:
				params = fromPayload
			case batchSize > 0 || interval > 0:
				params = &rancher.ServiceRestartParams{
					RollingRestartStrategy: &rancher.RollingRestartStrategy{BatchSize: batchSize, IntervalMillis: interval},
				}
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			service, err := client.Services().Restart(commandContext(cmd), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to restart service: %w", err)
			}

			return renderResource(cmd, service, serviceRows)
		},
	}

	addPayloadFlags(cmd, &file, &data)
	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "containers restarted per batch")
	cmd.Flags().IntVar(&interval, "interval", 0, "milliseconds between batches")

	return cmd
}
