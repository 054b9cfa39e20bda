package services

import (
	"context"
	"time"

	"hirehub/internal/apperr"
	"hirehub/internal/events"
	"hirehub/internal/metrics"
	"hirehub/internal/models"
	"hirehub/internal/policy"
	"hirehub/internal/repositories"
	"hirehub/internal/storage"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type ApplicationService struct {
	applications *repositories.ApplicationRepository
	jobs         *repositories.JobRepository
	users        *repositories.UserRepository
	resumes      ResumeSaver
	workflow     Workflow
	events       emitter
	now          func() time.Time
}

func NewApplicationService(
	applications *repositories.ApplicationRepository,
	jobs *repositories.JobRepository,
	users *repositories.UserRepository,
	resumes ResumeSaver,
	workflow Workflow,
	publisher events.Publisher,
	logger *zap.Logger,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		jobs:         jobs,
		users:        users,
		resumes:      resumes,
		workflow:     workflow,
		events:       newEmitter(publisher, logger),
		now:          time.Now,
	}
}

// Apply creates the caller's application to jobID. The résumé snapshot is
// the uploaded file when one is given (which also replaces the profile
// résumé), otherwise the profile résumé.
func (s *ApplicationService) Apply(ctx context.Context, caller models.Caller, jobID string, upload *storage.Upload) (*models.Application, error) {
	if err := policy.RequireRole(caller, models.RoleCandidate); err != nil {
		return nil, err
	}
	if upload != nil {
		if err := storage.Validate(*upload); err != nil {
			return nil, err
		}
	}

	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, lookupErr(err, "Job not found")
	}
	exists, err := s.applications.Exists(ctx, caller.ID, jobID)
	if err != nil {
		return nil, dbErr(err)
	}
	if exists {
		return nil, apperr.Conflict("You have already applied for this job")
	}

	candidate, err := s.users.GetUserByID(ctx, caller.ID)
	if err != nil {
		return nil, lookupErr(err, "User not found")
	}
	resume := candidate.Resume
	if upload != nil {
		if resume, err = s.resumes.Save(ctx, *upload); err != nil {
			return nil, err
		}
	}

	app := &models.Application{
		CandidateID: caller.ID,
		JobID:       jobID,
		Status:      models.StatusApplied,
		AppliedAt:   s.now(),
		Resume:      resume,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		if upload != nil {
			discardResume(ctx, s.resumes, resume, s.events.logger)
		}
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperr.Conflict("You have already applied for this job")
		}
		return nil, dbErr(err)
	}
	if upload != nil {
		if err := s.users.SetResume(ctx, caller.ID, resume); err != nil {
			return nil, dbErr(err)
		}
	}

	metrics.ApplicationsCreated.Inc()
	s.events.emit(ctx, events.Event{
		Type:          events.ApplicationCreated,
		ActorID:       caller.ID,
		ApplicationID: app.ID,
		JobID:         jobID,
		CandidateID:   caller.ID,
		Status:        string(app.Status),
	})
	return app, nil
}

func (s *ApplicationService) ListMine(ctx context.Context, caller models.Caller) ([]models.Application, error) {
	if err := policy.RequireRole(caller, models.RoleCandidate); err != nil {
		return nil, err
	}
	apps, err := s.applications.ListByCandidate(ctx, caller.ID)
	return apps, dbErr(err)
}

func (s *ApplicationService) ListForJob(ctx context.Context, caller models.Caller, jobID string) ([]models.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, lookupErr(err, "Job not found")
	}
	if err := policy.RequireJobOwner(caller, job, "Not authorized to view applications for this job"); err != nil {
		return nil, err
	}
	apps, err := s.applications.ListByJob(ctx, jobID)
	return apps, dbErr(err)
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, caller models.Caller, applicationID string, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, apperr.Validation("Invalid status")
	}
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, lookupErr(err, "Application not found")
	}
	if err := policy.RequireApplicationEmployer(caller, app, "Not authorized to update this application"); err != nil {
		return nil, err
	}
	if err := s.workflow.Check(app.Status, status); err != nil {
		return nil, err
	}

	previous := app.Status
	if err := s.applications.UpdateStatus(ctx, app.ID, status); err != nil {
		return nil, dbErr(err)
	}
	app.Status = status

	metrics.ApplicationStatusChanges.WithLabelValues(string(status)).Inc()
	if previous != status {
		s.events.emit(ctx, events.Event{
			Type:          events.ApplicationStatusChanged,
			ActorID:       caller.ID,
			ApplicationID: app.ID,
			JobID:         app.JobID,
			CandidateID:   app.CandidateID,
			Status:        string(status),
		})
	}
	return app, nil
}
