package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// NewContainersCommand creates the containers command group.
func NewContainersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "containers",
		Aliases: []string{"container", "ps"},
		Short:   "Manage containers",
		Long:    "Create, inspect and control Rancher containers",
	}

	cmd.AddCommand(newContainersCreateCommand())
	cmd.AddCommand(newContainersGetCommand())
	cmd.AddCommand(newContainersUpdateCommand())
	cmd.AddCommand(newContainersStartCommand())
	cmd.AddCommand(newContainersStopCommand())
	cmd.AddCommand(newContainersRestartCommand())
	cmd.AddCommand(newContainersRemoveCommand())
	cmd.AddCommand(newContainersPurgeCommand())
	cmd.AddCommand(newContainersLogsCommand())

	return cmd
}

func containerRows(container *rancher.Container) []string {
	return resourceRows(container.Resource,
		"Image", container.ImageUUID,
		"Host", container.HostID,
		"IP Address", container.PrimaryIPAddress,
		"Ports", joinOrNA(container.Ports),
	)
}

func newContainersCreateCommand() *cobra.Command {
	var file, data string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a container",
		Long:  "Create a container from a JSON definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var container rancher.Container

			err := requirePayload(cmd, file, data, &container)
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			created, err := client.Containers().Create(commandContext(cmd), &container)
			if err != nil {
				return fmt.Errorf("failed to create container: %w", err)
			}

			return renderResource(cmd, created, containerRows)
		},
	}

	addPayloadFlags(cmd, &file, &data)

	return cmd
}

func newContainersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CONTAINER_ID",
		Short: "Get container details",
		Long:  "Display detailed information about a specific container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			container, err := client.Containers().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get container: %w", err)
			}

			return renderResource(cmd, container, containerRows)
		},
	}
}

func newContainersUpdateCommand() *cobra.Command {
	var file, data string

	cmd := &cobra.Command{
		Use:   "update CONTAINER_ID",
		Short: "Update a container",
		Long:  "Update a container from a JSON definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var container rancher.Container

			err := requirePayload(cmd, file, data, &container)
			if err != nil {
				return err
			}

			container.ID = args[0]

			client, err := newClient()
			if err != nil {
				return err
			}

			updated, err := client.Containers().Update(commandContext(cmd), &container)
			if err != nil {
				return fmt.Errorf("failed to update container: %w", err)
			}

			return renderResource(cmd, updated, containerRows)
		},
	}

	addPayloadFlags(cmd, &file, &data)

	return cmd
}

func newContainersStopCommand() *cobra.Command {
	var (
		file, data string
		remove     bool
		timeout    int
	)

	cmd := &cobra.Command{
		Use:   "stop CONTAINER_ID",
		Short: "Stop a container",
		Long:  "Stop a running container, optionally removing it afterwards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var params *rancher.ContainerStopParams

			fromPayload := &rancher.ContainerStopParams{}

			ok, err := readPayload(cmd, file, data, fromPayload)
			if err != nil {
				return err
			}

			switch {
			case ok:
				params = fromPayload
			case remove || timeout > 0:
				params = &rancher.ContainerStopParams{Remove: remove, Timeout: timeout}
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			container, err := client.Containers().Stop(commandContext(cmd), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to stop container: %w", err)
			}

			return renderResource(cmd, container, containerRows)
		},
	}

	addPayloadFlags(cmd, &file, &data)
	cmd.Flags().BoolVar(&remove, "remove", false, "remove the container once stopped")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "seconds to wait before killing the container")

	return cmd
}

type containerActionFunc func(containers rancher.ContainersClient, ctx context.Context, id string) (*rancher.Container, error) //nolint:revive

// containerAction builds a command for an id-only container action.
func containerAction(verb, short, long string, action containerActionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " CONTAINER_ID",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			container, err := action(client.Containers(), commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to %s container: %w", verb, err)
			}

			return renderResource(cmd, container, containerRows)
		},
	}
}

func newContainersStartCommand() *cobra.Command {
	return containerAction("start", "Start a container", "Start a stopped container", rancher.ContainersClient.Start)
}

func newContainersRestartCommand() *cobra.Command {
	return containerAction("restart", "Restart a container", "Restart a running container", rancher.ContainersClient.Restart)
}

func newContainersRemoveCommand() *cobra.Command {
	return containerAction("remove", "Remove a container", "Remove a container; it can be purged afterwards", rancher.ContainersClient.Remove)
}

func newContainersPurgeCommand() *cobra.Command {
	return containerAction("purge", "Purge a container", "Purge a removed container and release its resources", rancher.ContainersClient.Purge)
}

func newContainersLogsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logs CONTAINER_ID",
		Short: "Get container log access",
		Long:  "Request a websocket URL and token for streaming a container's logs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			logs, err := client.Containers().Logs(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get container logs: %w", err)
			}

			return renderResource(cmd, logs, func(l *rancher.ContainerLogs) []string {
				return []string{"Type", l.Type, "URL", l.URL, "Token", l.Token}
			})
		},
	}
}
