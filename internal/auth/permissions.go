package auth

// Role is the closed set of administrative roles.
type Role string

const (
	RoleSuperAdmin         Role = "super_admin"
	RoleMemberManager      Role = "member_manager"
	RoleVerificationViewer Role = "verification_viewer"
	RoleCorrectionViewer   Role = "correction_viewer"
)

// Permission names a guarded operation.
type Permission string

const (
	PermManageMembers     Permission = "manage_members"
	PermManageUsers       Permission = "manage_users"
	PermViewVerifications Permission = "view_verifications"
	PermViewCorrections   Permission = "view_corrections"
	PermManageCorrections Permission = "manage_corrections"
	PermViewSearchLogs    Permission = "view_search_logs"
)

// AllPermissions lists every permission in the system.
var AllPermissions = []Permission{
	PermManageMembers,
	PermManageUsers,
	PermViewVerifications,
	PermViewCorrections,
	PermManageCorrections,
	PermViewSearchLogs,
}

// AllRoles lists every recognized role.
var AllRoles = []Role{
	RoleSuperAdmin,
	RoleMemberManager,
	RoleVerificationViewer,
	RoleCorrectionViewer,
}

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleMemberManager, RoleVerificationViewer, RoleCorrectionViewer:
		return true
	}
	return false
}

// Permissions returns the permission set granted to the role. The mapping
// is static; an unrecognized role gets no permissions.
func (r Role) Permissions() []Permission {
	switch r {
	case RoleSuperAdmin:
		return AllPermissions
	case RoleMemberManager:
		return []Permission{PermManageMembers, PermViewVerifications, PermViewCorrections}
	case RoleVerificationViewer:
		return []Permission{PermViewVerifications}
	case RoleCorrectionViewer:
		return []Permission{PermViewCorrections, PermManageCorrections}
	default:
		// fail closed
		return nil
	}
}

// Has reports whether the role grants the permission.
func (r Role) Has(p Permission) bool {
	for _, granted := range r.Permissions() {
		if granted == p {
			return true
		}
	}
	return false
}
