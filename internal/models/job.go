package models

import (
	"time"

	"gorm.io/datatypes"
)

// Job is a posting owned by exactly one employer.
type Job struct {
	Base
	EmployerID          string                      `gorm:"type:varchar(36);not null;index" json:"employerId"`
	Employer            *User                       `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
	Title               string                      `gorm:"not null" json:"title"`
	Description         string                      `gorm:"type:text;not null" json:"description"`
	Requirements        datatypes.JSONSlice[string] `json:"requirements"`
	Location            string                      `json:"location,omitempty"`
	SalaryRange         string                      `json:"salaryRange,omitempty"`
	ApplicationDeadline *time.Time                  `json:"applicationDeadline,omitempty"`
}

// JobPatch holds the fields an owner may overwrite; empty values are ignored.
type JobPatch struct {
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Requirements        []string   `json:"requirements"`
	Location            string     `json:"location"`
	SalaryRange         string     `json:"salaryRange"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
}
