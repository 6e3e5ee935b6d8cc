package types

// Node roles of a swift test deployment.
const (
	RoleMaster   = "master"
	RoleKeystone = "keystone"
	RoleStorage  = "storage"
	RoleProxy    = "proxy"
)
