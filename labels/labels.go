package labels

const (
	// label names.
	SwiftbedLabel    = "swiftbed"
	NodeNameLabel    = "swiftbed-node-name"
	NodeRoleLabel    = "swiftbed-node-role"
	EnvironmentLabel = "swiftbed-environment"
)
