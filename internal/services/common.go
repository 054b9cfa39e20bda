// Package services implements the hiring lifecycle: accounts, jobs,
// applications, screening tests, results and interviews. Every operation
// takes the caller explicitly; nothing is read from request state.
package services

import (
	"context"
	"time"

	"hirehub/internal/apperr"
	"hirehub/internal/events"
	"hirehub/internal/repositories"
	"hirehub/internal/storage"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ResumeSaver stores an uploaded résumé and returns its public path.
type ResumeSaver interface {
	Save(ctx context.Context, upload storage.Upload) (string, error)
	Remove(ctx context.Context, publicPath string) error
}

// discardResume removes a résumé stored for a write that did not commit.
func discardResume(ctx context.Context, resumes ResumeSaver, path string, logger *zap.Logger) {
	if err := resumes.Remove(ctx, path); err != nil {
		logger.Warn("failed to remove orphaned resume", zap.String("path", path), zap.Error(err))
	}
}

// lookupErr turns a repository lookup failure into a NotFound carrying
// message, or an internal error for anything else.
func lookupErr(err error, message string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperr.NotFound(message)
	}
	return apperr.Internal(err, "database error")
}

func dbErr(err error) error {
	if err == nil {
		return nil
	}
	return apperr.Internal(err, "database error")
}

// emitter publishes lifecycle events. A failed publish is logged and never
// fails the operation that produced the event.
type emitter struct {
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func newEmitter(publisher events.Publisher, logger *zap.Logger) emitter {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return emitter{publisher: publisher, logger: logger, now: time.Now}
}

func (e emitter) emit(ctx context.Context, event events.Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = e.now().UTC()
	}
	if err := e.publisher.Publish(ctx, event); err != nil {
		e.logger.Warn("failed to publish lifecycle event",
			zap.String("type", string(event.Type)),
			zap.String("subject", event.SubjectID()),
			zap.Error(err))
	}
}
