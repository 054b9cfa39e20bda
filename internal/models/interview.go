package models

import "time"

type InterviewMode string

const (
	ModeOnline  InterviewMode = "online"
	ModeOffline InterviewMode = "offline"
)

func (m InterviewMode) Valid() bool { return m == ModeOnline || m == ModeOffline }

type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
)

func (s InterviewStatus) Valid() bool {
	return s == InterviewScheduled || s == InterviewCompleted || s == InterviewCancelled
}

// Interview is linked to one application and owned by the job's employer.
type Interview struct {
	Base
	ApplicationID  string          `gorm:"type:varchar(36);not null;index" json:"applicationId"`
	Application    *Application    `gorm:"foreignKey:ApplicationID" json:"application,omitempty"`
	ScheduledAt    time.Time       `gorm:"index" json:"scheduledAt"`
	Mode           InterviewMode   `gorm:"type:varchar(16);not null;default:online" json:"mode"`
	Location       string          `json:"location,omitempty"`
	InterviewerID  *string         `gorm:"type:varchar(36)" json:"interviewerId,omitempty"`
	Interviewer    *User           `gorm:"foreignKey:InterviewerID" json:"interviewer,omitempty"`
	Status         InterviewStatus `gorm:"type:varchar(16);not null;default:scheduled;index" json:"status"`
	Feedback       string          `gorm:"type:text" json:"feedback,omitempty"`
	ReminderSentAt *time.Time      `json:"-"`
}

// InterviewPatch is the allow-list of fields an employer may change.
// ApplicationID is not patchable.
type InterviewPatch struct {
	ScheduledAt   *time.Time       `json:"scheduledAt"`
	Mode          *InterviewMode   `json:"mode"`
	Location      *string          `json:"location"`
	InterviewerID *string          `json:"interviewer"`
	Status        *InterviewStatus `json:"status"`
	Feedback      *string          `json:"feedback"`
}

// Empty reports whether the patch carries no field at all.
func (p InterviewPatch) Empty() bool {
	return p.ScheduledAt == nil && p.Mode == nil && p.Location == nil &&
		p.InterviewerID == nil && p.Status == nil && p.Feedback == nil
}
