package domain

// Role is a named authorization bucket. Roles are seed data created by
// migration; the service never creates or mutates them.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Role name constants. The set is closed.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Seeded role identifiers, fixed so tokens and foreign keys stay stable
// across environments. They match the values in the role seed migration.
const (
	RoleIDAdmin   = "5b1f8c52-0c7c-4a6e-9e6e-0a55a1f0a001"
	RoleIDTeacher = "5b1f8c52-0c7c-4a6e-9e6e-0a55a1f0a002"
	RoleIDStudent = "5b1f8c52-0c7c-4a6e-9e6e-0a55a1f0a003"
)

// ValidRoles returns the closed set of role names.
func ValidRoles() []string {
	return []string{RoleAdmin, RoleTeacher, RoleStudent}
}

// IsValidRole reports whether name is a member of the closed role set.
func IsValidRole(name string) bool {
	for _, r := range ValidRoles() {
		if r == name {
			return true
		}
	}
	return false
}
