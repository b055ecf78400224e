package domain

// Identity is the authenticated user attached to a session.
// Avatar and Branch are optional; an empty string means absent.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
	Branch string `json:"branch,omitempty"`
}

// HasBranch reports whether the identity is bound to a branch.
func (i Identity) HasBranch() bool {
	return i.Branch != ""
}
