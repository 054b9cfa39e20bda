package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"hirehub/internal/apperr"
	"hirehub/internal/models"
	"hirehub/internal/policy"
	"hirehub/internal/repositories"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// ScreeningService manages the multiple-choice test attached to a job.
type ScreeningService struct {
	tests *repositories.TestRepository
	jobs  *repositories.JobRepository
}

func NewScreeningService(tests *repositories.TestRepository, jobs *repositories.JobRepository) *ScreeningService {
	return &ScreeningService{tests: tests, jobs: jobs}
}

type TestPatch struct {
	Questions []models.Question
	Duration  *int
}

// normalizeQuestions validates questions and assigns ids to new ones.
// Question ids must be unique within a test since answers are graded by id.
func normalizeQuestions(questions []models.Question) ([]models.Question, error) {
	if len(questions) == 0 {
		return nil, apperr.Validation("at least one question is required")
	}
	out := make([]models.Question, len(questions))
	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		n := i + 1
		if strings.TrimSpace(q.QuestionText) == "" {
			return nil, apperr.Validation(fmt.Sprintf("question %d has no text", n))
		}
		if len(q.Options) < 2 {
			return nil, apperr.Validation(fmt.Sprintf("question %d needs at least two options", n))
		}
		if !slices.Contains(q.Options, q.CorrectAnswer) {
			return nil, apperr.Validation(fmt.Sprintf("question %d: correct answer must be one of its options", n))
		}
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		if seen[q.ID] {
			return nil, apperr.Validation(fmt.Sprintf("question %d reuses id %q", n, q.ID))
		}
		seen[q.ID] = true
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out, nil
}

func (s *ScreeningService) Create(ctx context.Context, caller models.Caller, jobID string, questions []models.Question, duration int) (*models.Test, error) {
	const denied = "Not authorized to create test for this job"
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, dbErr(err)
	}
	if err := policy.RequireJobOwner(caller, job, denied); err != nil {
		return nil, err
	}
	if duration < 0 {
		return nil, apperr.Validation("duration must not be negative")
	}
	normalized, err := normalizeQuestions(questions)
	if err != nil {
		return nil, err
	}

	test := &models.Test{JobID: jobID, Questions: normalized, Duration: duration}
	if err := s.tests.Create(ctx, test); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperr.Conflict("A test already exists for this job")
		}
		return nil, dbErr(err)
	}
	return test, nil
}

// GetByJob returns the test of jobID. Correct answers are only included
// when the caller owns the job; caller may be nil for anonymous requests.
func (s *ScreeningService) GetByJob(ctx context.Context, caller *models.Caller, jobID string) (*models.Test, error) {
	test, err := s.tests.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, lookupErr(err, "Test not found for this job")
	}
	if caller != nil && caller.IsEmployer() {
		job, err := s.jobs.GetByID(ctx, jobID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, dbErr(err)
		}
		if policy.RequireJobOwner(*caller, job, "") == nil {
			return test, nil
		}
	}
	redacted := test.Redacted()
	return &redacted, nil
}

// loadOwned fetches a test and checks that the caller owns its job.
func (s *ScreeningService) loadOwned(ctx context.Context, caller models.Caller, testID, denied string) (*models.Test, error) {
	test, err := s.tests.GetByID(ctx, testID)
	if err != nil {
		return nil, lookupErr(err, "Test not found")
	}
	if test.Job == nil {
		return nil, apperr.NotFound("Job not found")
	}
	if err := policy.RequireJobOwner(caller, test.Job, denied); err != nil {
		return nil, err
	}
	return test, nil
}

func (s *ScreeningService) Update(ctx context.Context, caller models.Caller, testID string, patch TestPatch) (*models.Test, error) {
	test, err := s.loadOwned(ctx, caller, testID, "Not authorized to update this test")
	if err != nil {
		return nil, err
	}
	if patch.Questions != nil {
		normalized, err := normalizeQuestions(patch.Questions)
		if err != nil {
			return nil, err
		}
		test.Questions = normalized
	}
	if patch.Duration != nil {
		if *patch.Duration < 0 {
			return nil, apperr.Validation("duration must not be negative")
		}
		test.Duration = *patch.Duration
	}
	if err := s.tests.Save(ctx, test); err != nil {
		return nil, dbErr(err)
	}
	return test, nil
}

func (s *ScreeningService) Delete(ctx context.Context, caller models.Caller, testID string) error {
	if _, err := s.loadOwned(ctx, caller, testID, "Not authorized to delete this test"); err != nil {
		return err
	}
	if err := s.tests.Delete(ctx, testID); err != nil {
		return lookupErr(err, "Test not found")
	}
	return nil
}
