package enum

// AuditLogType represents different kinds of server configuration changes.
type AuditLogType int

const (
	// AuditLogTypeAll matches any audit log type in database queries.
	AuditLogTypeAll AuditLogType = iota

	// AuditLogTypeCreateRobloxLink tracks when a member creates a Roblox role bind.
	AuditLogTypeCreateRobloxLink
	// AuditLogTypeUpdateRobloxLink tracks when a member updates a Roblox role bind.
	AuditLogTypeUpdateRobloxLink
	// AuditLogTypeDeleteRobloxLink tracks when a member deletes a Roblox role bind.
	AuditLogTypeDeleteRobloxLink
)

func (t AuditLogType) String() string {
	switch t {
	case AuditLogTypeAll:
		return "All"
	case AuditLogTypeCreateRobloxLink:
		return "CreateRobloxLink"
	case AuditLogTypeUpdateRobloxLink:
		return "UpdateRobloxLink"
	case AuditLogTypeDeleteRobloxLink:
		return "DeleteRobloxLink"
	default:
		return "Unknown"
	}
}
