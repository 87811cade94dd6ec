package commands

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// ErrInvalidFilter is returned for a --filter value without '='.
var ErrInvalidFilter = errors.New("filter must be KEY=VALUE")

// NewHostsCommand creates the hosts command group.
func NewHostsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hosts",
		Aliases: []string{"host"},
		Short:   "Manage hosts",
		Long:    "List, inspect and delete registered hosts",
	}

	cmd.AddCommand(newHostsListCommand())
	cmd.AddCommand(newHostsGetCommand())
	cmd.AddCommand(newHostsDeleteCommand())

	return cmd
}

func hostRows(host *rancher.Host) []string {
	return resourceRows(host.Resource,
		"Hostname", host.Hostname,
		"Agent State", host.AgentState,
		"Agent IP", host.AgentIPAddress,
	)
}

// parseFilters turns repeated KEY=VALUE flags into list query parameters.
func parseFilters(filters []string) (url.Values, error) {
	query := url.Values{}

	for _, filter := range filters {
		key, value, found := strings.Cut(filter, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
		}

		query.Add(key, value)
	}

	return query, nil
}

func newHostsListCommand() *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List hosts",
		Long:  "List registered hosts, optionally filtered by field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseFilters(filters)
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			hosts, err := client.Hosts().List(commandContext(cmd), query)
			if err != nil {
				return fmt.Errorf("failed to list hosts: %w", err)
			}

			return render(cmd, hosts, []string{"ID", "Hostname", "State", "Agent State", "Agent IP"}, func(table *tablewriter.Table) error {
				for _, host := range hosts {
					err := table.Append([]string{
						host.ID,
						valueOrNA(host.Hostname),
						host.State,
						valueOrNA(host.AgentState),
						valueOrNA(host.AgentIPAddress),
					})
					if err != nil {
						return fmt.Errorf("failed to append row: %w", err)
					}
				}

				return nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "filter as KEY=VALUE (repeatable)")

	return cmd
}

func newHostsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get HOST_ID",
		Short: "Get host details",
		Long:  "Display detailed information about a specific host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			host, err := client.Hosts().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get host: %w", err)
			}

			return renderResource(cmd, host, hostRows)
		},
	}
}

func newHostsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete HOST_ID",
		Short: "Delete a host",
		Long:  "Delete a host from the environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			host, err := client.Hosts().Delete(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete host: %w", err)
			}

			return renderResource(cmd, host, hostRows)
		},
	}
}
