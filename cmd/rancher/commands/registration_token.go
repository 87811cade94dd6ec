package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/rancher-client/internal/constants"
	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// NewRegistrationTokenCommand creates the registration-token command. Run
// without a subcommand it prints the command that registers a new host.
func NewRegistrationTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "registration-token",
		Aliases: []string{"regtoken", "token"},
		Short:   "Print a host registration command",
		Long:    "Create a registration token and print the command to run on a new host",
		Args:    cobra.NoArgs,
		RunE:    runRegistrationCommand,
	}

	cmd.AddCommand(newRegistrationTokenCreateCommand())
	cmd.AddCommand(newRegistrationTokenGetCommand())

	return cmd
}

func registrationTokenRows(token *rancher.RegistrationToken) []string {
	return resourceRows(token.Resource,
		"Image", token.Image,
		"Registration URL", token.RegistrationURL,
		"Command", token.Command,
	)
}

func newRegistrationTokenCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a registration token",
		Long:  "Create a new host registration token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			token, err := client.RegistrationTokens().Create(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to create registration token: %w", err)
			}

			return renderResource(cmd, token, registrationTokenRows)
		},
	}
}

func newRegistrationTokenGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TOKEN_ID",
		Short: "Get registration token details",
		Long:  "Display a registration token, including its registration command once issued",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			token, err := client.RegistrationTokens().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get registration token: %w", err)
			}

			return renderResource(cmd, token, registrationTokenRows)
		},
	}
}

func runRegistrationCommand(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	command, err := client.RegistrationTokens().Command(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to get registration command: %w", err)
	}

	// Plain output stays copy-pasteable.
	output := viper.GetString(keyOutput)
	if output == constants.FormatTable || output == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), command)

		return err
	}

	type registration struct {
		Command string `json:"command" yaml:"command"`
	}

	return render(cmd, registration{Command: command}, nil, func(*tablewriter.Table) error { return nil })
}
