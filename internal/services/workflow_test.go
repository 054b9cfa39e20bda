package services

import (
	"testing"

	"hirehub/internal/apperr"
	"hirehub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowPermissive(t *testing.T) {
	w := Workflow{}
	assert.NoError(t, w.Check(models.StatusHired, models.StatusApplied))
	assert.NoError(t, w.Check(models.StatusRejected, models.StatusScreening))
	assert.NoError(t, w.Check(models.StatusApplied, models.StatusApplied))

	err := w.Check(models.StatusApplied, "archived")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestWorkflowStrict(t *testing.T) {
	w := Workflow{Strict: true}

	allowed := [][2]models.ApplicationStatus{
		{models.StatusApplied, models.StatusScreening},
		{models.StatusApplied, models.StatusHired},
		{models.StatusScreening, models.StatusInterviewScheduled},
		{models.StatusInterviewScheduled, models.StatusRejected},
		{models.StatusHired, models.StatusHired},
	}
	for _, tr := range allowed {
		assert.NoError(t, w.Check(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	rejected := [][2]models.ApplicationStatus{
		{models.StatusScreening, models.StatusApplied},
		{models.StatusInterviewScheduled, models.StatusScreening},
		{models.StatusRejected, models.StatusHired},
		{models.StatusHired, models.StatusApplied},
	}
	for _, tr := range rejected {
		err := w.Check(tr[0], tr[1])
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err), "%s -> %s", tr[0], tr[1])
	}

	err := w.Check(models.StatusHired, models.StatusApplied)
	assert.Equal(t, "cannot move application from hired to applied", apperr.MessageOf(err))
}
