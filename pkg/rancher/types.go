package rancher

// Resource holds the fields shared by every API resource.
type Resource struct {
	ID          string            `json:"id,omitempty"          yaml:"id,omitempty"`
	Type        string            `json:"type,omitempty"        yaml:"type,omitempty"`
	Name        string            `json:"name,omitempty"        yaml:"name,omitempty"`
	State       string            `json:"state,omitempty"       yaml:"state,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	UUID        string            `json:"uuid,omitempty"        yaml:"uuid,omitempty"`
	Created     string            `json:"created,omitempty"     yaml:"created,omitempty"`
	Links       map[string]string `json:"links,omitempty"       yaml:"links,omitempty"`
	Actions     map[string]string `json:"actions,omitempty"     yaml:"actions,omitempty"`
}

// Collection is a list response. Data holds the items.
type Collection[T any] struct {
	Type         string            `json:"type,omitempty"         yaml:"type,omitempty"`
	ResourceType string            `json:"resourceType,omitempty" yaml:"resourceType,omitempty"`
	Links        map[string]string `json:"links,omitempty"        yaml:"links,omitempty"`
	Data         []T               `json:"data"                   yaml:"data"`
}

// RestartPolicy controls container restarts.
type RestartPolicy struct {
	Name              string `json:"name,omitempty"              yaml:"name,omitempty"`
	MaximumRetryCount int    `json:"maximumRetryCount,omitempty" yaml:"maximumRetryCount,omitempty"`
}

// Container represents a container instance.
type Container struct {
	Resource `yaml:",inline"`

	ImageUUID        string            `json:"imageUuid,omitempty"        yaml:"imageUuid,omitempty"`
	Command          []string          `json:"command,omitempty"          yaml:"command,omitempty"`
	EntryPoint       []string          `json:"entryPoint,omitempty"       yaml:"entryPoint,omitempty"`
	Environment      map[string]string `json:"environment,omitempty"      yaml:"environment,omitempty"`
	Labels           map[string]string `json:"labels,omitempty"           yaml:"labels,omitempty"`
	Ports            []string          `json:"ports,omitempty"            yaml:"ports,omitempty"`
	DataVolumes      []string          `json:"dataVolumes,omitempty"      yaml:"dataVolumes,omitempty"`
	RequestedHostID  string            `json:"requestedHostId,omitempty"  yaml:"requestedHostId,omitempty"`
	HostID           string            `json:"hostId,omitempty"           yaml:"hostId,omitempty"`
	PrimaryIPAddress string            `json:"primaryIpAddress,omitempty" yaml:"primaryIpAddress,omitempty"`
	StartOnCreate    *bool             `json:"startOnCreate,omitempty"    yaml:"startOnCreate,omitempty"`
	Privileged       bool              `json:"privileged,omitempty"       yaml:"privileged,omitempty"`
	StdinOpen        bool              `json:"stdinOpen,omitempty"        yaml:"stdinOpen,omitempty"`
	Tty              bool              `json:"tty,omitempty"              yaml:"tty,omitempty"`
	RestartPolicy    *RestartPolicy    `json:"restartPolicy,omitempty"    yaml:"restartPolicy,omitempty"`
}

// ContainerStopParams is the payload of the stop action.
type ContainerStopParams struct {
	Remove  bool `json:"remove,omitempty"  yaml:"remove,omitempty"`
	Timeout int  `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// ContainerLogs is the host access returned by the logs action.
// The logs are streamed from URL using Token.
type ContainerLogs struct {
	Type  string `json:"type,omitempty"  yaml:"type,omitempty"`
	URL   string `json:"url"             yaml:"url"`
	Token string `json:"token"           yaml:"token"`
}

// Stack represents a group of services.
type Stack struct {
	Resource `yaml:",inline"`

	DockerCompose  string            `json:"dockerCompose,omitempty"  yaml:"dockerCompose,omitempty"`
	RancherCompose string            `json:"rancherCompose,omitempty" yaml:"rancherCompose,omitempty"`
	Environment    map[string]string `json:"environment,omitempty"    yaml:"environment,omitempty"`
	ExternalID     string            `json:"externalId,omitempty"     yaml:"externalId,omitempty"`
	HealthState    string            `json:"healthState,omitempty"    yaml:"healthState,omitempty"`
	ServiceIDs     []string          `json:"serviceIds,omitempty"     yaml:"serviceIds,omitempty"`
	StartOnCreate  *bool             `json:"startOnCreate,omitempty"  yaml:"startOnCreate,omitempty"`
}

// LaunchConfig is the container template of a service.
type LaunchConfig struct {
	ImageUUID   string            `json:"imageUuid,omitempty"   yaml:"imageUuid,omitempty"`
	Command     []string          `json:"command,omitempty"     yaml:"command,omitempty"`
	Environment map[string]string `json:"environment,omitempty" yaml:"environment,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"      yaml:"labels,omitempty"`
	Ports       []string          `json:"ports,omitempty"       yaml:"ports,omitempty"`
}

// Service represents a scalable set of containers inside a stack.
type Service struct {
	Resource `yaml:",inline"`

	StackID      string        `json:"stackId,omitempty"      yaml:"stackId,omitempty"`
	Scale        *int          `json:"scale,omitempty"        yaml:"scale,omitempty"`
	HealthState  string        `json:"healthState,omitempty"  yaml:"healthState,omitempty"`
	InstanceIDs  []string      `json:"instanceIds,omitempty"  yaml:"instanceIds,omitempty"`
	LaunchConfig *LaunchConfig `json:"launchConfig,omitempty" yaml:"launchConfig,omitempty"`
}

// RollingRestartStrategy controls batch restarts of a service.
type RollingRestartStrategy struct {
	BatchSize      int `json:"batchSize,omitempty"      yaml:"batchSize,omitempty"`
	IntervalMillis int `json:"intervalMillis,omitempty" yaml:"intervalMillis,omitempty"`
}

// ServiceRestartParams is the payload of the restart action.
type ServiceRestartParams struct {
	RollingRestartStrategy *RollingRestartStrategy `json:"rollingRestartStrategy,omitempty" yaml:"rollingRestartStrategy,omitempty"`
}

// Host represents a registered host.
type Host struct {
	Resource `yaml:",inline"`

	Hostname       string                 `json:"hostname,omitempty"       yaml:"hostname,omitempty"`
	AgentState     string                 `json:"agentState,omitempty"     yaml:"agentState,omitempty"`
	AgentIPAddress string                 `json:"agentIpAddress,omitempty" yaml:"agentIpAddress,omitempty"`
	Labels         map[string]string      `json:"labels,omitempty"         yaml:"labels,omitempty"`
	Info           map[string]interface{} `json:"info,omitempty"           yaml:"info,omitempty"`
}

// Volume represents a storage volume.
type Volume struct {
	Resource `yaml:",inline"`

	Driver     string            `json:"driver,omitempty"     yaml:"driver,omitempty"`
	DriverOpts map[string]string `json:"driverOpts,omitempty" yaml:"driverOpts,omitempty"`
	AccessMode string            `json:"accessMode,omitempty" yaml:"accessMode,omitempty"`
	IsHostPath bool              `json:"isHostPath,omitempty" yaml:"isHostPath,omitempty"`
	URI        string            `json:"uri,omitempty"        yaml:"uri,omitempty"`
	StackID    string            `json:"stackId,omitempty"    yaml:"stackId,omitempty"`
}

// Port is a published container port.
type Port struct {
	Resource `yaml:",inline"`

	PublicPort  int    `json:"publicPort,omitempty"  yaml:"publicPort,omitempty"`
	PrivatePort int    `json:"privatePort,omitempty" yaml:"privatePort,omitempty"`
	Protocol    string `json:"protocol,omitempty"    yaml:"protocol,omitempty"`
	BindAddress string `json:"bindAddress,omitempty" yaml:"bindAddress,omitempty"`
	InstanceID  string `json:"instanceId,omitempty"  yaml:"instanceId,omitempty"`
	ServiceID   string `json:"serviceId,omitempty"   yaml:"serviceId,omitempty"`
}

// RegistrationToken is a one-time token for registering a host.
type RegistrationToken struct {
	Resource `yaml:",inline"`

	Token           string `json:"token,omitempty"           yaml:"token,omitempty"`
	Command         string `json:"command,omitempty"         yaml:"command,omitempty"`
	RegistrationURL string `json:"registrationUrl,omitempty" yaml:"registrationUrl,omitempty"`
	Image           string `json:"image,omitempty"           yaml:"image,omitempty"`
}
