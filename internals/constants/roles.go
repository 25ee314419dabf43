package constants

// Role user sesuai enum di tabel users
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleStudent    = "student"
	RoleTeacher    = "teacher"
	RoleParent     = "parent"
	RoleOthers     = "others"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleAdmin,
		RoleStudent,
		RoleTeacher,
		RoleParent,
		RoleOthers,
	}

	AdminAndAbove = []string{
		RoleSuperAdmin,
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
