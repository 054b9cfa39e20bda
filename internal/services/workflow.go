package services

import (
	"fmt"

	"hirehub/internal/apperr"
	"hirehub/internal/models"
)

var transitions = map[models.ApplicationStatus][]models.ApplicationStatus{
	models.StatusApplied:            {models.StatusScreening, models.StatusInterviewScheduled, models.StatusRejected, models.StatusHired},
	models.StatusScreening:          {models.StatusInterviewScheduled, models.StatusRejected, models.StatusHired},
	models.StatusInterviewScheduled: {models.StatusRejected, models.StatusHired},
	models.StatusRejected:           nil,
	models.StatusHired:              nil,
}

// Workflow decides which application status changes are accepted.
// The zero value is permissive: any valid status may follow any other.
type Workflow struct {
	Strict bool
}

// Check validates moving an application from one status to another.
// Re-applying the current status is always accepted.
func (w Workflow) Check(from, to models.ApplicationStatus) error {
	if !to.Valid() {
		return apperr.Validation("Invalid status")
	}
	if !w.Strict || from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return apperr.Validation(fmt.Sprintf("cannot move application from %s to %s", from, to))
}
