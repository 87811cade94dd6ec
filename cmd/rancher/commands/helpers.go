package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/rancher-client/internal/constants"
	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
	"github.com/fivetwenty-io/rancher-client/pkg/rancherclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// JSON formatting.
	defaultJSONIndent = "  "

	// Viper keys.
	keyURL       = "url"
	keyAccessKey = "access_key"
	keySecretKey = "secret_key"
	keyOutput    = "output"
	keyVerbose   = "verbose"
)

// Common static errors used throughout the commands package.
var (
	ErrPayloadRequired   = errors.New("a payload is required (use --file or --data)")
	ErrPayloadConflict   = errors.New("use only one of --file and --data")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrUnsupportedOutput = errors.New("unsupported output format")
)

// newClient builds a client from the effective flags, environment and config file.
func newClient() (rancher.Client, error) {
	config := &rancher.Config{
		URL:         viper.GetString(keyURL),
		AccessKey:   viper.GetString(keyAccessKey),
		SecretKey:   viper.GetString(keySecretKey),
		UserAgent:   "rancher-cli",
		HTTPTimeout: constants.DefaultHTTPTimeout,
	}

	if viper.GetBool(keyVerbose) {
		config.Debug = true
		config.Logger = rancher.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	client, err := rancherclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// addPayloadFlags registers --file and --data on cmd.
func addPayloadFlags(cmd *cobra.Command, file, data *string) {
	cmd.Flags().StringVarP(file, "file", "f", "", "read the JSON payload from a file (- for stdin)")
	cmd.Flags().StringVarP(data, "data", "d", "", "inline JSON payload")
}

// readPayload decodes the JSON payload given by --file or --data into v. It
// reports false when neither flag was set.
func readPayload(cmd *cobra.Command, file, data string, v interface{}) (bool, error) {
	if file != "" && data != "" {
		return false, ErrPayloadConflict
	}

	var raw []byte

	switch {
	case data != "":
		raw = []byte(data)
	case file == "-":
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return false, fmt.Errorf("failed to read payload from stdin: %w", err)
		}

		raw = content
	case file != "":
		content, err := readFile(file)
		if err != nil {
			return false, err
		}

		raw = []byte(content)
	default:
		return false, nil
	}

	err := json.Unmarshal(raw, v)
	if err != nil {
		return false, fmt.Errorf("failed to parse payload: %w", err)
	}

	return true, nil
}

func readFile(path string) (string, error) {
	// #nosec G304 -- the path is supplied by the user on purpose
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return string(content), nil
}

// requirePayload is readPayload for commands that cannot run without one.
func requirePayload(cmd *cobra.Command, file, data string, v interface{}) error {
	ok, err := readPayload(cmd, file, data, v)
	if err != nil {
		return err
	}

	if !ok {
		return ErrPayloadRequired
	}

	return nil
}

// render writes value in the configured output format. Table output is
// delegated to rows, which receives a table with the header already set.
func render(cmd *cobra.Command, value interface{}, header []string, rows func(*tablewriter.Table) error) error {
	out := cmd.OutOrStdout()

	switch output := viper.GetString(keyOutput); output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", defaultJSONIndent)

		return encoder.Encode(value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(value)
	case constants.FormatTable, "":
		table := tablewriter.NewWriter(out)

		columns := make([]any, len(header))
		for i, name := range header {
			columns[i] = name
		}

		table.Header(columns...)

		err := rows(table)
		if err != nil {
			return err
		}

		err = table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, output)
	}
}

// propertyRows appends one row per non-empty property pair.
func propertyRows(table *tablewriter.Table, pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}

		err := table.Append([]string{pairs[i], pairs[i+1]})
		if err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	return nil
}

// resourceRows builds the common properties of a resource detail view.
func resourceRows(resource rancher.Resource, extra ...string) []string {
	pairs := []string{
		"ID", resource.ID,
		"Name", resource.Name,
		"Type", resource.Type,
		"State", resource.State,
		"Description", resource.Description,
		"Created", resource.Created,
	}

	return append(pairs, extra...)
}

// renderResource prints a detail view, or a short notice when the server
// returned no body.
func renderResource[T any](cmd *cobra.Command, value *T, pairs func(*T) []string) error {
	if value == nil {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "OK (no content)")

		return nil
	}

	return render(cmd, value, []string{"Property", "Value"}, func(table *tablewriter.Table) error {
		return propertyRows(table, pairs(value)...)
	})
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return NotAvailable
	}

	return strings.Join(values, ", ")
}

func valueOrNA(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
