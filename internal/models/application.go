package models

import "time"

type ApplicationStatus string

const (
	StatusApplied            ApplicationStatus = "applied"
	StatusScreening          ApplicationStatus = "screening"
	StatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	StatusRejected           ApplicationStatus = "rejected"
	StatusHired              ApplicationStatus = "hired"
)

// Valid reports whether s is one of the five workflow states.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusScreening, StatusInterviewScheduled, StatusRejected, StatusHired:
		return true
	}
	return false
}

// Application binds a candidate to a job. The composite unique index keeps
// the pair unique even when two Apply requests race past the existence check.
type Application struct {
	Base
	CandidateID  string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_application_candidate_job" json:"candidateId"`
	Candidate    *User             `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
	JobID        string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_application_candidate_job;index" json:"jobId"`
	Job          *Job              `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Status       ApplicationStatus `gorm:"type:varchar(32);not null;default:applied" json:"status"`
	AppliedAt    time.Time         `json:"appliedAt"`
	Resume       string            `json:"resume,omitempty"`
	TestResultID *string           `gorm:"type:varchar(36)" json:"testResultId,omitempty"`
	InterviewID  *string           `gorm:"type:varchar(36)" json:"interviewId,omitempty"`
}
