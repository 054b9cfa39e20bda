// Package notify e-mails candidates about changes to their applications
// and interviews.
package notify

import (
	"context"
	"fmt"
	"time"

	"hirehub/internal/events"
	"hirehub/internal/repositories"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Notifier turns lifecycle events into candidate e-mails.
type Notifier struct {
	users  *repositories.UserRepository
	jobs   *repositories.JobRepository
	sender Sender
	logger *zap.Logger
}

func NewNotifier(users *repositories.UserRepository, jobs *repositories.JobRepository, sender Sender, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{users: users, jobs: jobs, sender: sender, logger: logger}
}

func (n *Notifier) HandleEvent(ctx context.Context, event events.Event) error {
	switch event.Type {
	case events.ApplicationStatusChanged, events.InterviewScheduled, events.InterviewCancelled, events.InterviewReminder:
	default:
		return nil
	}
	if event.CandidateID == "" {
		return nil
	}

	candidate, err := n.users.GetUserByID(ctx, event.CandidateID)
	if errors.Is(err, repositories.ErrNotFound) {
		n.logger.Warn("notification recipient vanished", zap.String("candidate", event.CandidateID))
		return nil
	}
	if err != nil {
		return err
	}

	jobTitle := "a job"
	if event.JobID != "" {
		if job, err := n.jobs.GetByID(ctx, event.JobID); err == nil {
			jobTitle = job.Title
		}
	}

	subject, body := compose(event, candidate.Name, jobTitle)
	if err := n.sender.Send(candidate.Email, subject, body); err != nil {
		return errors.Wrapf(err, "notify %s", event.Type)
	}
	n.logger.Info("notification sent",
		zap.String("type", string(event.Type)),
		zap.String("candidate", candidate.ID))
	return nil
}

func compose(event events.Event, name, jobTitle string) (subject, body string) {
	when := "a time to be confirmed"
	if event.ScheduledAt != nil {
		when = event.ScheduledAt.UTC().Format(time.RFC1123)
	}

	switch event.Type {
	case events.ApplicationStatusChanged:
		subject = "Update on your application for " + jobTitle
		body = fmt.Sprintf("Hi %s,\n\nYour application for %s is now %q.", name, jobTitle, event.Status)
	case events.InterviewScheduled:
		subject = "Interview scheduled for " + jobTitle
		body = fmt.Sprintf("Hi %s,\n\nAn interview for %s has been scheduled at %s.", name, jobTitle, when)
	case events.InterviewCancelled:
		subject = "Interview cancelled for " + jobTitle
		body = fmt.Sprintf("Hi %s,\n\nYour interview for %s at %s has been cancelled.", name, jobTitle, when)
	case events.InterviewReminder:
		subject = "Reminder: upcoming interview for " + jobTitle
		body = fmt.Sprintf("Hi %s,\n\nThis is a reminder of your interview for %s at %s.", name, jobTitle, when)
	}
	return subject, body + "\n\nHireHub"
}
