package commands_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/rancher-client/cmd/rancher/commands"
)

func TestCommandGroups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cmd         *cobra.Command
		use         string
		aliases     []string
		subcommands []string
	}{
		{
			name:        "containers",
			cmd:         commands.NewContainersCommand(),
			use:         "containers",
			aliases:     []string{"container", "ps"},
			subcommands: []string{"create", "get", "update", "start", "stop", "restart", "remove", "purge", "logs"},
		},
		{
			name:        "stacks",
			cmd:         commands.NewStacksCommand(),
			use:         "stacks",
			aliases:     []string{"stack"},
			subcommands: []string{"create", "get", "services", "remove"},
		},
		{
			name:        "services",
			cmd:         commands.NewServicesCommand(),
			use:         "services",
			aliases:     []string{"service", "svc"},
			subcommands: []string{"get", "start", "stop", "restart"},
		},
		{
			name:        "hosts",
			cmd:         commands.NewHostsCommand(),
			use:         "hosts",
			aliases:     []string{"host"},
			subcommands: []string{"list", "get", "delete"},
		},
		{
			name:        "volumes",
			cmd:         commands.NewVolumesCommand(),
			use:         "volumes",
			aliases:     []string{"volume", "vol"},
			subcommands: []string{"list", "get", "remove"},
		},
		{
			name:        "ports",
			cmd:         commands.NewPortsCommand(),
			use:         "ports",
			aliases:     []string{"port"},
			subcommands: []string{"list"},
		},
		{
			name:        "registration-token",
			cmd:         commands.NewRegistrationTokenCommand(),
			use:         "registration-token",
			aliases:     []string{"regtoken", "token"},
			subcommands: []string{"create", "get"},
		},
		{
			name:        "config",
			cmd:         commands.NewConfigCommand(),
			use:         "config",
			subcommands: []string{"show", "set", "unset"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.Equal(t, tt.aliases, tt.cmd.Aliases)
			assert.NotEmpty(t, tt.cmd.Short)
			assert.ElementsMatch(t, tt.subcommands, subcommandNames(tt.cmd))

			for _, name := range tt.subcommands {
				sub := findSubcommand(tt.cmd, name)
				require.NotNil(t, sub, name)
				assert.NotNil(t, sub.RunE, name)
				assert.NotNil(t, sub.Args, name)
			}
		})
	}
}

func TestPayloadFlags(t *testing.T) {
	t.Parallel()

	containers := commands.NewContainersCommand()
	stacks := commands.NewStacksCommand()
	services := commands.NewServicesCommand()

	for _, cmd := range []*cobra.Command{
		findSubcommand(containers, "create"),
		findSubcommand(containers, "update"),
		findSubcommand(containers, "stop"),
		findSubcommand(stacks, "create"),
		findSubcommand(services, "restart"),
	} {
		require.NotNil(t, cmd)

		file := cmd.Flags().Lookup("file")
		require.NotNil(t, file, cmd.CommandPath())
		assert.Equal(t, "f", file.Shorthand)

		data := cmd.Flags().Lookup("data")
		require.NotNil(t, data, cmd.CommandPath())
		assert.Equal(t, "d", data.Shorthand)
	}
}

func TestContainersStopCommand(t *testing.T) {
	t.Parallel()

	cmd := findSubcommand(commands.NewContainersCommand(), "stop")
	require.NotNil(t, cmd)

	assert.Equal(t, "stop CONTAINER_ID", cmd.Use)
	assert.Equal(t, "false", cmd.Flags().Lookup("remove").DefValue)
	assert.Equal(t, "0", cmd.Flags().Lookup("timeout").DefValue)
}

func TestServicesRestartCommand(t *testing.T) {
	t.Parallel()

	cmd := findSubcommand(commands.NewServicesCommand(), "restart")
	require.NotNil(t, cmd)

	assert.Equal(t, "restart SERVICE_ID", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("batch-size"))
	assert.NotNil(t, cmd.Flags().Lookup("interval"))
}

func TestListFilterFlags(t *testing.T) {
	t.Parallel()

	for _, cmd := range []*cobra.Command{
		findSubcommand(commands.NewHostsCommand(), "list"),
		findSubcommand(commands.NewVolumesCommand(), "list"),
	} {
		require.NotNil(t, cmd)
		assert.NotNil(t, cmd.Flags().Lookup("filter"), cmd.CommandPath())
	}
}

func TestVersionAndConfigure(t *testing.T) {
	t.Parallel()

	version := commands.NewVersionCommand("1.0.0", "abc123", "2026-01-01")
	assert.Equal(t, "version", version.Use)
	assert.NotNil(t, version.RunE)

	configure := commands.NewConfigureCommand()
	assert.Equal(t, "configure", configure.Use)
	assert.NotNil(t, configure.RunE)
}
