package domain

import "strings"

// RoleId identifies a user role. The set is closed.
type RoleId string

const (
	RoleAdmin RoleId = "admin"
	RoleUser  RoleId = "user"
)

// Roles lists every known role, used for enum validation.
var Roles = []RoleId{RoleAdmin, RoleUser}

// PermissionId identifies a capability granted through roles.
type PermissionId string

const PermissionManageUsers PermissionId = "can-manage-users"

// RoleToPermissions is the static, total mapping from role to granted
// permissions.
// Every role has an entry, possibly empty.
var RoleToPermissions = map[RoleId][]PermissionId{
	RoleAdmin: {PermissionManageUsers},
	RoleUser:  {},
}

// User models an identity record. The password hash is never serialized.
type User struct {
	ID            string   `json:"id"`
	DisplayedName string   `json:"displayedName"`
	Email         string   `json:"email"`
	PasswordHash  string   `json:"-"`
	Roles         []RoleId `json:"roles"`
}

// NormalizeEmail lower-cases and trims an email address. Emails are stored
// and compared in normalized form only.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
