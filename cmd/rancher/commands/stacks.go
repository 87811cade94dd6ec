package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// NewStacksCommand creates the stacks command group.
func NewStacksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stacks",
		Aliases: []string{"stack"},
		Short:   "Manage stacks",
		Long:    "Create, inspect and remove Rancher stacks",
	}

	cmd.AddCommand(newStacksCreateCommand())
	cmd.AddCommand(newStacksGetCommand())
	cmd.AddCommand(newStacksServicesCommand())
	cmd.AddCommand(newStacksRemoveCommand())

	return cmd
}

func stackRows(stack *rancher.Stack) []string {
	return resourceRows(stack.Resource,
		"Health", stack.HealthState,
		"External ID", stack.ExternalID,
		"Services", joinOrNA(stack.ServiceIDs),
	)
}

func newStacksCreateCommand() *cobra.Command {
	var (
		file, data  string
		name        string
		composeFile string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a stack",
		Long:  "Create a stack from a JSON definition, or from --name and a docker-compose file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var stack rancher.Stack

			ok, err := readPayload(cmd, file, data, &stack)
			if err != nil {
				return err
			}

			if name != "" {
				stack.Name = name
			}

			if composeFile != "" {
				compose, err := readFile(composeFile)
				if err != nil {
					return err
				}

				stack.DockerCompose = compose
			}

			if !ok && stack.Name == "" {
				return ErrPayloadRequired
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			created, err := client.Stacks().Create(commandContext(cmd), &stack)
			if err != nil {
				return fmt.Errorf("failed to create stack: %w", err)
			}

			return renderResource(cmd, created, stackRows)
		},
	}

	addPayloadFlags(cmd, &file, &data)
	cmd.Flags().StringVarP(&name, "name", "n", "", "stack name")
	cmd.Flags().StringVar(&composeFile, "docker-compose", "", "path to a docker-compose.yml")

	return cmd
}

func newStacksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get STACK_ID",
		Short: "Get stack details",
		Long:  "Display detailed information about a specific stack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			stack, err := client.Stacks().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get stack: %w", err)
			}

			return renderResource(cmd, stack, stackRows)
		},
	}
}

func newStacksServicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "services STACK_ID",
		Short: "List services in a stack",
		Long:  "List every service belonging to a stack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			services, err := client.Stacks().ListServices(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to list stack services: %w", err)
			}

			if services == nil {
				services = &rancher.Collection[rancher.Service]{}
			}

			return render(cmd, services, []string{"ID", "Name", "State", "Health", "Scale"}, func(table *tablewriter.Table) error {
				for _, service := range services.Data {
					scale := NotAvailable
					if service.Scale != nil {
						scale = strconv.Itoa(*service.Scale)
					}

					err := table.Append([]string{service.ID, service.Name, service.State, valueOrNA(service.HealthState), scale})
					if err != nil {
						return fmt.Errorf("failed to append row: %w", err)
					}
				}

				return nil
			})
		},
	}
}

func newStacksRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove STACK_ID",
		Short: "Remove a stack",
		Long:  "Remove a stack and all of its services",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			stack, err := client.Stacks().Remove(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to remove stack: %w", err)
			}

			return renderResource(cmd, stack, stackRows)
		},
	}
}
