// Package events carries lifecycle notifications between the HTTP services
// and the background consumers (mailer, audit log) over Redis pub/sub.
package events

import (
	"context"
	"time"
)

// Channel is the Redis pub/sub channel every lifecycle event goes through.
const Channel = "hirehub:lifecycle"

type Type string

const (
	ApplicationCreated       Type = "application.created"
	ApplicationStatusChanged Type = "application.status_changed"
	TestSubmitted            Type = "test.submitted"
	InterviewScheduled       Type = "interview.scheduled"
	InterviewUpdated         Type = "interview.updated"
	InterviewCancelled       Type = "interview.cancelled"
	InterviewReminder        Type = "interview.reminder"
)

// Event is the wire form of one lifecycle change. Only the ids relevant to
// the event type are set.
type Event struct {
	Type          Type       `json:"type"`
	ActorID       string     `json:"actorId,omitempty"`
	ApplicationID string     `json:"applicationId,omitempty"`
	JobID         string     `json:"jobId,omitempty"`
	CandidateID   string     `json:"candidateId,omitempty"`
	InterviewID   string     `json:"interviewId,omitempty"`
	Status        string     `json:"status,omitempty"`
	Score         *int       `json:"score,omitempty"`
	ScheduledAt   *time.Time `json:"scheduledAt,omitempty"`
	OccurredAt    time.Time  `json:"occurredAt"`
}

// SubjectID is the id of the record the event is about.
func (e Event) SubjectID() string {
	if e.InterviewID != "" {
		return e.InterviewID
	}
	return e.ApplicationID
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Handler consumes events delivered by a Subscriber.
type Handler interface {
	HandleEvent(ctx context.Context, event Event) error
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) HandleEvent(ctx context.Context, event Event) error { return f(ctx, event) }

// NopPublisher drops every event. Used when Redis is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
