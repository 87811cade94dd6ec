package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// NewVolumesCommand creates the volumes command group.
func NewVolumesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "volumes",
		Aliases: []string{"volume", "vol"},
		Short:   "Manage volumes",
		Long:    "List, inspect and remove volumes",
	}

	cmd.AddCommand(newVolumesListCommand())
	cmd.AddCommand(newVolumesGetCommand())
	cmd.AddCommand(newVolumesRemoveCommand())

	return cmd
}

func volumeRows(volume *rancher.Volume) []string {
	return resourceRows(volume.Resource,
		"Driver", volume.Driver,
		"Access Mode", volume.AccessMode,
		"URI", volume.URI,
		"Stack", volume.StackID,
	)
}

func newVolumesListCommand() *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List volumes",
		Long:  "List volumes, optionally filtered by field",
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

			volumes, err := client.Volumes().List(commandContext(cmd), query)
			if err != nil {
				return fmt.Errorf("failed to list volumes: %w", err)
			}

			return render(cmd, volumes, []string{"ID", "Name", "State", "Driver"}, func(table *tablewriter.Table) error {
				for _, volume := range volumes {
					err := table.Append([]string{volume.ID, valueOrNA(volume.Name), volume.State, valueOrNA(volume.Driver)})
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

func newVolumesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get VOLUME_ID",
		Short: "Get volume details",
		Long:  "Display detailed information about a specific volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			volume, err := client.Volumes().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get volume: %w", err)
			}

			return renderResource(cmd, volume, volumeRows)
		},
	}
}

func newVolumesRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove VOLUME_ID",
		Short: "Remove a volume",
		Long:  "Remove a volume that is no longer in use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			volume, err := client.Volumes().Remove(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to remove volume: %w", err)
			}

			return renderResource(cmd, volume, volumeRows)
		},
	}
}
