package services

import (
	"context"
	"testing"

	"hirehub/internal/apperr"
	"hirehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobService_CreateAndRead(t *testing.T) {
	f := newFixture(t)
	s := NewJobService(f.jobs)
	ctx := context.Background()

	job, err := s.Create(ctx, callerOf(f.employer), JobInput{Title: "SRE", Description: "On call", Requirements: []string{"linux"}})
	require.NoError(t, err)
	assert.Equal(t, f.employer.ID, job.EmployerID)

	_, err = s.Create(ctx, callerOf(f.employer), JobInput{Title: "No description"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = s.Create(ctx, callerOf(f.candidate), JobInput{Title: "T", Description: "D"})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	got, err := s.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "SRE", got.Title)
	require.NotNil(t, got.Employer)
	assert.Equal(t, "acme", got.Employer.Name)

	again, err := s.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, got, again, "reads are idempotent")

	_, err = s.Get(ctx, "missing")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "Job not found", apperr.MessageOf(err))

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := s.ListMine(ctx, callerOf(f.rival))
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestJobService_UpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	s := NewJobService(f.jobs)
	ctx := context.Background()

	_, err := s.Update(ctx, callerOf(f.rival), f.job.ID, models.JobPatch{Title: "Hijacked"})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	assert.Equal(t, "Not authorized to update this job", apperr.MessageOf(err))

	updated, err := s.Update(ctx, callerOf(f.employer), f.job.ID, models.JobPatch{Location: "Berlin"})
	require.NoError(t, err)
	assert.Equal(t, "Berlin", updated.Location)
	assert.Equal(t, "Backend Engineer", updated.Title, "empty patch fields are ignored")

	_, err = s.Update(ctx, callerOf(f.employer), "missing", models.JobPatch{})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	err = s.Delete(ctx, callerOf(f.rival), f.job.ID)
	assert.Equal(t, "Not authorized to delete this job", apperr.MessageOf(err))

	require.NoError(t, s.Delete(ctx, callerOf(f.employer), f.job.ID))
	_, err = s.Get(ctx, f.job.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
