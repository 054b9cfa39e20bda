package models

import (
	"gorm.io/datatypes"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
)

// User represents a registered candidate or employer.
type User struct {
	Base
	Name           string                      `gorm:"not null" json:"name,omitempty"`
	Email          string                      `gorm:"uniqueIndex;not null" json:"email,omitempty"`
	PasswordHash   string                      `gorm:"not null" json:"-"`
	Role           Role                        `gorm:"type:varchar(16);not null;default:candidate" json:"role,omitempty"`
	Resume         string                      `json:"resume,omitempty"`
	Skills         datatypes.JSONSlice[string] `json:"skills,omitempty"`
	Experience     string                      `json:"experience,omitempty"`
	CompanyName    string                      `json:"companyName,omitempty"`
	CompanyDetails string                      `json:"companyDetails,omitempty"`
}

// ParseRole maps registration input onto a role; anything but "employer" is a candidate.
func ParseRole(s string) Role {
	if Role(s) == RoleEmployer {
		return RoleEmployer
	}
	return RoleCandidate
}
