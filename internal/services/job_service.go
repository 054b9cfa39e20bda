package services

import (
	"context"
	"strings"
	"time"

	"hirehub/internal/apperr"
	"hirehub/internal/models"
	"hirehub/internal/policy"
	"hirehub/internal/repositories"
)

type JobService struct {
	jobs *repositories.JobRepository
}

func NewJobService(jobs *repositories.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

type JobInput struct {
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Requirements        []string   `json:"requirements"`
	Location            string     `json:"location"`
	SalaryRange         string     `json:"salaryRange"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
}

func (s *JobService) Create(ctx context.Context, caller models.Caller, in JobInput) (*models.Job, error) {
	if err := policy.RequireRole(caller, models.RoleEmployer); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, apperr.Validation("Title and description are required")
	}
	job := &models.Job{
		EmployerID:          caller.ID,
		Title:               in.Title,
		Description:         in.Description,
		Requirements:        in.Requirements,
		Location:            in.Location,
		SalaryRange:         in.SalaryRange,
		ApplicationDeadline: in.ApplicationDeadline,
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, dbErr(err)
	}
	return job, nil
}

func (s *JobService) ListAll(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobs.List(ctx)
	return jobs, dbErr(err)
}

func (s *JobService) Get(ctx context.Context, jobID string) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, lookupErr(err, "Job not found")
	}
	return job, nil
}

// Update overwrites the non-empty fields of patch.
func (s *JobService) Update(ctx context.Context, caller models.Caller, jobID string, patch models.JobPatch) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, lookupErr(err, "Job not found")
	}
	if err := policy.RequireJobOwner(caller, job, "Not authorized to update this job"); err != nil {
		return nil, err
	}

	if patch.Title != "" {
		job.Title = patch.Title
	}
	if patch.Description != "" {
		job.Description = patch.Description
	}
	if patch.Requirements != nil {
		job.Requirements = patch.Requirements
	}
	if patch.Location != "" {
		job.Location = patch.Location
	}
	if patch.SalaryRange != "" {
		job.SalaryRange = patch.SalaryRange
	}
	if patch.ApplicationDeadline != nil {
		job.ApplicationDeadline = patch.ApplicationDeadline
	}
	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, dbErr(err)
	}
	return job, nil
}

func (s *JobService) Delete(ctx context.Context, caller models.Caller, jobID string) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return lookupErr(err, "Job not found")
	}
	if err := policy.RequireJobOwner(caller, job, "Not authorized to delete this job"); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, jobID); err != nil {
		return lookupErr(err, "Job not found")
	}
	return nil
}

func (s *JobService) ListMine(ctx context.Context, caller models.Caller) ([]models.Job, error) {
	if err := policy.RequireRole(caller, models.RoleEmployer); err != nil {
		return nil, err
	}
	jobs, err := s.jobs.ListByEmployer(ctx, caller.ID)
	return jobs, dbErr(err)
}
