package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// NewPortsCommand creates the ports command group.
func NewPortsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ports",
		Aliases: []string{"port"},
		Short:   "Inspect published ports",
		Long:    "List the ports published by containers in the environment",
	}

	cmd.AddCommand(newPortsListCommand())

	return cmd
}

func newPortsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List ports",
		Long:  "List all published ports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ports, err := client.Ports().List(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to list ports: %w", err)
			}

			if ports == nil {
				ports = &rancher.Collection[rancher.Port]{}
			}

			return render(cmd, ports, []string{"ID", "Public", "Private", "Protocol", "Bind Address", "Instance"}, func(table *tablewriter.Table) error {
				for _, port := range ports.Data {
					err := table.Append([]string{
						port.ID,
						portOrNA(port.PublicPort),
						portOrNA(port.PrivatePort),
						valueOrNA(port.Protocol),
						valueOrNA(port.BindAddress),
						valueOrNA(port.InstanceID),
					})
					if err != nil {
						return fmt.Errorf("failed to append row: %w", err)
					}
				}

				return nil
			})
		},
	}
}

func portOrNA(port int) string {
	if port == 0 {
		return NotAvailable
	}

	return strconv.Itoa(port)
}
