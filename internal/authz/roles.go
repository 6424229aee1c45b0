package authz

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// DefaultRoleID — роль "User", назначается при регистрации.
const DefaultRoleID = 1

func IsAdmin(role string) bool {
	return role == RoleAdmin
}
