package session

import "github.com/spec-kit/bank-crm/internal/domain"

// cannedIdentities maps every role to the single demo identity it logs in as.
// The mapping is injective: no two roles share an identity.
var cannedIdentities = map[domain.Role]domain.Identity{
	domain.RoleAdmin: {
		ID:     "1",
		Name:   "Admin User",
		Email:  "admin@bank.com",
		Role:   domain.RoleAdmin,
		Avatar: "AU",
	},
	domain.RoleBankManager: {
		ID:     "2",
		Name:   "John Manager",
		Email:  "john.manager@bank.com",
		Role:   domain.RoleBankManager,
		Avatar: "JM",
		Branch: "Downtown Branch",
	},
	domain.RoleRelationshipManager: {
		ID:     "3",
		Name:   "Sarah Wilson",
		Email:  "sarah.wilson@bank.com",
		Role:   domain.RoleRelationshipManager,
		Avatar: "SW",
		Branch: "Downtown Branch",
	},
	domain.RoleSupportAgent: {
		ID:     "4",
		Name:   "Mike Support",
		Email:  "mike.support@bank.com",
		Role:   domain.RoleSupportAgent,
		Avatar: "MS",
	},
	domain.RoleCustomer: {
		ID:     "5",
		Name:   "Alice Customer",
		Email:  "alice@email.com",
		Role:   domain.RoleCustomer,
		Avatar: "AC",
	},
}

// CannedIdentity returns the demo identity for role.
// The returned value is a copy; callers may not mutate the directory.
func CannedIdentity(role domain.Role) (domain.Identity, bool) {
	identity, ok := cannedIdentities[role]
	return identity, ok
}
