package models

// Caller is the authenticated identity an operation runs on behalf of.
// It is derived once from the session token at the HTTP boundary.
type Caller struct {
	ID   string
	Role Role
}

func (c Caller) IsCandidate() bool { return c.Role == RoleCandidate }
func (c Caller) IsEmployer() bool  { return c.Role == RoleEmployer }
