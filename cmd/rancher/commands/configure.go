package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewConfigureCommand creates the interactive configure command.
func NewConfigureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Configure the CLI interactively",
		Long:  "Prompt for the API URL and key pair and save them to the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			reader := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			url, err := prompt(reader, out, "URL", config.URL)
			if err != nil {
				return err
			}

			accessKey, err := prompt(reader, out, "Access Key", config.AccessKey)
			if err != nil {
				return err
			}

			secretKey, err := promptSecret(cmd, reader, out)
			if err != nil {
				return err
			}

			config.URL = url
			config.AccessKey = accessKey

			if secretKey != "" {
				config.SecretKey = secretKey
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(out, "Configuration saved")

			return nil
		},
	}
}

// prompt reads one line, keeping current when the answer is blank.
func prompt(reader *bufio.Reader, out io.Writer, label, current string) (string, error) {
	if current != "" {
		_, _ = fmt.Fprintf(out, "%s [%s]: ", label, current)
	} else {
		_, _ = fmt.Fprintf(out, "%s: ", label)
	}

	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF { //nolint:errorlint
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return current, nil
	}

	return line, nil
}

func promptSecret(cmd *cobra.Command, reader *bufio.Reader, out io.Writer) (string, error) {
	_, _ = fmt.Fprint(out, "Secret Key: ")

	if in, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(in.Fd())) {
		secret, err := term.ReadPassword(int(in.Fd()))
		_, _ = fmt.Fprintln(out)

		if err != nil {
			return "", fmt.Errorf("failed to read secret key: %w", err)
		}

		return strings.TrimSpace(string(secret)), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF { //nolint:errorlint
		return "", fmt.Errorf("failed to read secret key: %w", err)
	}

	return strings.TrimSpace(line), nil
}
