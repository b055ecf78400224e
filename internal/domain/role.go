package domain

// Role enumerates the CRM personas a session can be bound to.
type Role string

const (
	RoleAdmin               Role = "admin"
	RoleBankManager         Role = "bank_manager"
	RoleRelationshipManager Role = "relationship_manager"
	RoleSupportAgent        Role = "support_agent"
	RoleCustomer            Role = "customer"
)

// Roles lists every role in login-form order.
var Roles = []Role{
	RoleAdmin,
	RoleBankManager,
	RoleRelationshipManager,
	RoleSupportAgent,
	RoleCustomer,
}

var roleLabels = map[Role]string{
	RoleAdmin:               "System Administrator",
	RoleBankManager:         "Bank Manager",
	RoleRelationshipManager: "Relationship Manager",
	RoleSupportAgent:        "Support Agent",
	RoleCustomer:            "Customer",
}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Label returns the human readable role name, or the raw value for unknown roles.
func (r Role) Label() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return string(r)
}
