package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network settings.
const (
	// DefaultHTTPTimeout is the default timeout for CLI requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultUserAgent is sent when no User-Agent is configured.
	DefaultUserAgent = "rancher-client-go"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Resource collection paths.
const (
	ContainerPath          = "/container"
	StackPath              = "/stack"
	StacksPath             = "/stacks"
	ServicesPath           = "/services"
	HostsPath              = "/hosts"
	VolumesPath            = "/volumes"
	PortsPath              = "/ports"
	RegistrationTokensPath = "/registrationtokens"
)

// Resource actions, sent as the "action" query parameter.
const (
	ActionStart      = "start"
	ActionStop       = "stop"
	ActionRestart    = "restart"
	ActionPurge      = "purge"
	ActionLogs       = "logs"
	ActionRemove     = "remove"
	ActionActivate   = "activate"
	ActionDeactivate = "deactivate"
)

// Masked replaces secrets on display.
const Masked = "***"
