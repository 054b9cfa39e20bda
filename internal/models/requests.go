package models

import (
	"strings"
	"time"

	"hirehub/internal/apperr"
)

// CreateTestRequest accepts the job id under either "job" or "jobId".
type CreateTestRequest struct {
	Job       string     `json:"job"`
	JobID     string     `json:"jobId"`
	Questions []Question `json:"questions"`
	Duration  int        `json:"duration"`
}

func (r *CreateTestRequest) Validate() error {
	if r.Job == "" {
		r.Job = r.JobID
	}
	if strings.TrimSpace(r.Job) == "" {
		return apperr.Validation("job is required")
	}
	if len(r.Questions) == 0 {
		return apperr.Validation("at least one question is required")
	}
	return nil
}

type UpdateTestRequest struct {
	Questions []Question `json:"questions"`
	Duration  *int       `json:"duration"`
}

func (r *UpdateTestRequest) Validate() error {
	if r.Questions != nil && len(r.Questions) == 0 {
		return apperr.Validation("at least one question is required")
	}
	return nil
}

type SubmitTestRequest struct {
	ApplicationID string            `json:"applicationId"`
	Answers       []SubmittedAnswer `json:"answers"`
}

func (r *SubmitTestRequest) Validate() error {
	if strings.TrimSpace(r.ApplicationID) == "" {
		return apperr.Validation("applicationId is required")
	}
	if r.Answers == nil {
		return apperr.Validation("answers are required")
	}
	return nil
}

type ScheduleInterviewRequest struct {
	ApplicationID string        `json:"applicationId"`
	ScheduledAt   *time.Time    `json:"scheduledAt"`
	Mode          InterviewMode `json:"mode"`
	Location      string        `json:"location"`
	Interviewer   string        `json:"interviewer"`
}

func (r *ScheduleInterviewRequest) Validate() error {
	if strings.TrimSpace(r.ApplicationID) == "" {
		return apperr.Validation("applicationId is required")
	}
	return nil
}
