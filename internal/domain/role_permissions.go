package domain

// RolePermissions summarizes what a role may do and how many users hold it.
type RolePermissions struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	Users       int      `json:"users"`
}
