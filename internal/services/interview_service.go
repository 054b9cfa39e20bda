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

	"go.uber.org/zap"
)

type InterviewService struct {
	interviews   *repositories.InterviewRepository
	applications *repositories.ApplicationRepository
	events       emitter
}

func NewInterviewService(
	interviews *repositories.InterviewRepository,
	applications *repositories.ApplicationRepository,
	publisher events.Publisher,
	logger *zap.Logger,
) *InterviewService {
	return &InterviewService{
		interviews:   interviews,
		applications: applications,
		events:       newEmitter(publisher, logger),
	}
}

type ScheduleInput struct {
	ApplicationID string
	ScheduledAt   *time.Time
	Mode          models.InterviewMode
	Location      string
	InterviewerID string
}

func (s *InterviewService) Schedule(ctx context.Context, caller models.Caller, in ScheduleInput) (*models.Interview, error) {
	if in.ScheduledAt == nil || in.ScheduledAt.IsZero() {
		return nil, apperr.Validation("scheduledAt is required")
	}
	if in.Mode == "" {
		in.Mode = models.ModeOnline
	}
	if !in.Mode.Valid() {
		return nil, apperr.Validation("Invalid interview mode")
	}

	app, err := s.applications.GetByID(ctx, in.ApplicationID)
	if err != nil {
		return nil, lookupErr(err, "Application not found")
	}
	if err := policy.RequireApplicationEmployer(caller, app, "Not authorized to schedule interview for this application"); err != nil {
		return nil, err
	}

	interviewer := in.InterviewerID
	if interviewer == "" {
		interviewer = caller.ID
	}
	interview := &models.Interview{
		ApplicationID: app.ID,
		ScheduledAt:   in.ScheduledAt.UTC(),
		Mode:          in.Mode,
		Location:      in.Location,
		InterviewerID: &interviewer,
		Status:        models.InterviewScheduled,
	}
	if err := s.interviews.Create(ctx, interview); err != nil {
		return nil, dbErr(err)
	}
	if err := s.applications.SetInterview(ctx, app.ID, interview.ID); err != nil {
		return nil, dbErr(err)
	}

	metrics.InterviewEvents.WithLabelValues("scheduled").Inc()
	s.emit(ctx, events.InterviewScheduled, caller, app, interview)
	return interview, nil
}

// loadOwned fetches an interview with its ownership chain and checks that
// the caller owns the job behind it.
func (s *InterviewService) loadOwned(ctx context.Context, caller models.Caller, id, denied string) (*models.Interview, error) {
	interview, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Interview not found")
	}
	if err := policy.RequireApplicationEmployer(caller, interview.Application, denied); err != nil {
		return nil, err
	}
	return interview, nil
}

// Update merges the allow-listed fields of patch into the interview.
func (s *InterviewService) Update(ctx context.Context, caller models.Caller, id string, patch models.InterviewPatch) (*models.Interview, error) {
	interview, err := s.loadOwned(ctx, caller, id, "Not authorized to update this interview")
	if err != nil {
		return nil, err
	}

	if patch.ScheduledAt != nil {
		if patch.ScheduledAt.IsZero() {
			return nil, apperr.Validation("scheduledAt is required")
		}
		// a rescheduled interview gets a fresh reminder
		if !patch.ScheduledAt.Equal(interview.ScheduledAt) {
			interview.ReminderSentAt = nil
		}
		interview.ScheduledAt = patch.ScheduledAt.UTC()
	}
	if patch.Mode != nil {
		if !patch.Mode.Valid() {
			return nil, apperr.Validation("Invalid interview mode")
		}
		interview.Mode = *patch.Mode
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, apperr.Validation("Invalid interview status")
		}
		interview.Status = *patch.Status
	}
	if patch.Location != nil {
		interview.Location = *patch.Location
	}
	if patch.Feedback != nil {
		interview.Feedback = *patch.Feedback
	}
	if patch.InterviewerID != nil {
		if *patch.InterviewerID == "" {
			interview.InterviewerID = nil
		} else {
			interviewer := *patch.InterviewerID
			interview.InterviewerID = &interviewer
		}
	}

	if err := s.interviews.Update(ctx, interview); err != nil {
		return nil, dbErr(err)
	}

	metrics.InterviewEvents.WithLabelValues("updated").Inc()
	s.emit(ctx, events.InterviewUpdated, caller, interview.Application, interview)
	return s.reload(ctx, interview)
}

// Cancel marks the interview cancelled. Cancelling twice succeeds.
func (s *InterviewService) Cancel(ctx context.Context, caller models.Caller, id string) (*models.Interview, error) {
	interview, err := s.loadOwned(ctx, caller, id, "Not authorized to cancel this interview")
	if err != nil {
		return nil, err
	}
	if interview.Status == models.InterviewCancelled {
		return interview, nil
	}
	interview.Status = models.InterviewCancelled
	if err := s.interviews.Update(ctx, interview); err != nil {
		return nil, dbErr(err)
	}

	metrics.InterviewEvents.WithLabelValues("cancelled").Inc()
	s.emit(ctx, events.InterviewCancelled, caller, interview.Application, interview)
	return interview, nil
}

func (s *InterviewService) GetDetails(ctx context.Context, caller models.Caller, id string) (*models.Interview, error) {
	interview, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Interview not found")
	}
	if err := policy.RequireInterviewParticipant(caller, interview, "Not authorized to view this interview"); err != nil {
		return nil, err
	}
	return interview, nil
}

func (s *InterviewService) ListMine(ctx context.Context, caller models.Caller) ([]models.Interview, error) {
	if !caller.IsCandidate() {
		return nil, apperr.Forbidden("Only candidates can view their interviews")
	}
	interviews, err := s.interviews.ListByCandidate(ctx, caller.ID)
	return interviews, dbErr(err)
}

func (s *InterviewService) reload(ctx context.Context, interview *models.Interview) (*models.Interview, error) {
	fresh, err := s.interviews.GetByID(ctx, interview.ID)
	if err != nil {
		return nil, lookupErr(err, "Interview not found")
	}
	return fresh, nil
}

func (s *InterviewService) emit(ctx context.Context, typ events.Type, caller models.Caller, app *models.Application, interview *models.Interview) {
	scheduledAt := interview.ScheduledAt
	event := events.Event{
		Type:          typ,
		ActorID:       caller.ID,
		ApplicationID: interview.ApplicationID,
		InterviewID:   interview.ID,
		Status:        string(interview.Status),
		ScheduledAt:   &scheduledAt,
	}
	if app != nil {
		event.JobID = app.JobID
		event.CandidateID = app.CandidateID
	}
	s.events.emit(ctx, event)
}
