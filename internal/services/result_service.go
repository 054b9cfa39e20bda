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

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ResultService scores submissions and serves the stored results.
type ResultService struct {
	results      *repositories.TestResultRepository
	tests        *repositories.TestRepository
	applications *repositories.ApplicationRepository
	events       emitter
	now          func() time.Time
}

func NewResultService(
	results *repositories.TestResultRepository,
	tests *repositories.TestRepository,
	applications *repositories.ApplicationRepository,
	publisher events.Publisher,
	logger *zap.Logger,
) *ResultService {
	return &ResultService{
		results:      results,
		tests:        tests,
		applications: applications,
		events:       newEmitter(publisher, logger),
		now:          time.Now,
	}
}

// Submit scores answers against the test of the application's job. An
// application is scored once; a second submission is a conflict. An
// explicit empty answer list is a valid submission, a missing one is not.
func (s *ResultService) Submit(ctx context.Context, caller models.Caller, applicationID string, answers []models.SubmittedAnswer) (*models.TestResult, error) {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, lookupErr(err, "Application not found")
	}
	if err := policy.RequireApplicationCandidate(caller, app, "Not authorized to submit this test"); err != nil {
		return nil, err
	}
	test, err := s.tests.GetByJobID(ctx, app.JobID)
	if err != nil {
		return nil, lookupErr(err, "No test found for this job")
	}
	if answers == nil {
		return nil, apperr.Validation("answers are required")
	}

	graded, score := Score(test.Questions, answers)
	result := &models.TestResult{
		ApplicationID: app.ID,
		Answers:       graded,
		Score:         score,
		CompletedAt:   s.now(),
	}
	if err := s.results.Create(ctx, result); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperr.Conflict("Test already submitted for this application")
		}
		return nil, dbErr(err)
	}
	if err := s.applications.SetTestResult(ctx, app.ID, result.ID); err != nil {
		return nil, dbErr(err)
	}

	metrics.TestSubmissions.Inc()
	s.events.emit(ctx, events.Event{
		Type:          events.TestSubmitted,
		ActorID:       caller.ID,
		ApplicationID: app.ID,
		JobID:         app.JobID,
		CandidateID:   app.CandidateID,
		Score:         &score,
	})
	return result, nil
}

func (s *ResultService) ListMine(ctx context.Context, caller models.Caller) ([]models.TestResult, error) {
	if err := policy.RequireRole(caller, models.RoleCandidate); err != nil {
		return nil, err
	}
	results, err := s.results.ListByCandidate(ctx, caller.ID)
	return results, dbErr(err)
}

func (s *ResultService) GetForApplication(ctx context.Context, caller models.Caller, applicationID string) (*models.TestResult, error) {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, lookupErr(err, "Application not found")
	}
	if err := policy.RequireApplicationEmployer(caller, app, "Not authorized to view results for this application"); err != nil {
		return nil, err
	}
	result, err := s.results.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, lookupErr(err, "No test result found for this application")
	}
	return result, nil
}
