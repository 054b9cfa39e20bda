package jobs

import (
	"context"
	"time"

	"hirehub/internal/events"
	"hirehub/internal/repositories"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReminderConfig contains configuration for the reminder job
type ReminderConfig struct {
	Enabled  bool
	Schedule string        // cron spec, e.g. "@every 15m"
	Window   time.Duration // how far ahead an interview is reminded
}

// InterviewReminderJob publishes a reminder for every scheduled interview
// that starts within the configured window, once per interview.
type InterviewReminderJob struct {
	interviews *repositories.InterviewRepository
	publisher  events.Publisher
	config     ReminderConfig
	logger     *zap.Logger
	cron       *cron.Cron
	now        func() time.Time
}

func NewInterviewReminderJob(
	interviews *repositories.InterviewRepository,
	publisher events.Publisher,
	config ReminderConfig,
	logger *zap.Logger,
) *InterviewReminderJob {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InterviewReminderJob{
		interviews: interviews,
		publisher:  publisher,
		config:     config,
		logger:     logger,
		cron:       cron.New(),
		now:        time.Now,
	}
}

// Enabled reports whether Start will schedule the job.
func (j *InterviewReminderJob) Enabled() bool { return j.config.Enabled }

// Start schedules the job. It is a no-op when reminders are disabled.
func (j *InterviewReminderJob) Start(ctx context.Context) error {
	if !j.config.Enabled {
		j.logger.Info("interview reminders disabled, skipping scheduler")
		return nil
	}

	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		sent, err := j.RunOnce(ctx)
		if err != nil {
			j.logger.Error("interview reminder run failed", zap.Error(err))
			return
		}
		if sent > 0 {
			j.logger.Info("interview reminders sent", zap.Int("count", sent))
		}
	})
	if err != nil {
		return errors.Wrap(err, "schedule interview reminders")
	}

	j.cron.Start()
	j.logger.Info("interview reminders started", zap.String("schedule", j.config.Schedule))
	return nil
}

// Stop waits for a running pass to finish.
func (j *InterviewReminderJob) Stop() {
	<-j.cron.Stop().Done()
}

// RunOnce sends the reminders that are due now and returns how many went out.
// An interview is stamped only after its reminder was published, so a failed
// publish is retried on the next pass.
func (j *InterviewReminderJob) RunOnce(ctx context.Context) (int, error) {
	now := j.now().UTC()
	due, err := j.interviews.DueForReminder(ctx, now, now.Add(j.config.Window))
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, interview := range due {
		scheduledAt := interview.ScheduledAt
		event := events.Event{
			Type:          events.InterviewReminder,
			ApplicationID: interview.ApplicationID,
			InterviewID:   interview.ID,
			Status:        string(interview.Status),
			ScheduledAt:   &scheduledAt,
			OccurredAt:    now,
		}
		if interview.Application != nil {
			event.JobID = interview.Application.JobID
			event.CandidateID = interview.Application.CandidateID
		}

		if err := j.publisher.Publish(ctx, event); err != nil {
			j.logger.Warn("failed to publish interview reminder",
				zap.String("interview", interview.ID), zap.Error(err))
			continue
		}
		if err := j.interviews.MarkReminded(ctx, interview.ID, now); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}
