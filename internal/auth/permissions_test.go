package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePermissions(t *testing.T) {
	tests := []struct {
		role     Role
		expected []Permission
	}{
		{
			role:     RoleSuperAdmin,
			expected: AllPermissions,
		},
		{
			role:     RoleMemberManager,
			expected: []Permission{PermManageMembers, PermViewVerifications, PermViewCorrections},
		},
		{
			role:     RoleVerificationViewer,
			expected: []Permission{PermViewVerifications},
		},
		{
			role:     RoleCorrectionViewer,
			expected: []Permission{PermViewCorrections, PermManageCorrections},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.ElementsMatch(t, tt.expected, tt.role.Permissions())
		})
	}
}

func TestUnknownRoleGetsNoPermissions(t *testing.T) {
	for _, role := range []Role{"", "admin", "SUPER_ADMIN", "member-manager"} {
		assert.Empty(t, role.Permissions(), "role %q", role)
		assert.False(t, role.Valid(), "role %q", role)
		for _, p := range AllPermissions {
			assert.False(t, role.Has(p), "role %q permission %q", role, p)
		}
	}
}

func TestOnlySuperAdminManagesUsers(t *testing.T) {
	for _, role := range AllRoles {
		if role == RoleSuperAdmin {
			assert.True(t, role.Has(PermManageUsers))
			continue
		}
		assert.False(t, role.Has(PermManageUsers), "role %q", role)
	}
}

func TestViewSearchLogsRestrictedToSuperAdmin(t *testing.T) {
	for _, role := range AllRoles {
		if role == RoleSuperAdmin {
			assert.True(t, role.Has(PermViewSearchLogs))
			continue
		}
		assert.False(t, role.Has(PermViewSearchLogs), "role %q", role)
	}
}
