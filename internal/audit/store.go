// Package audit keeps an append-only activity log of lifecycle events in
// MongoDB.
package audit

import (
	"context"
	"time"

	"hirehub/internal/events"

	"github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "activity"

// Record is one stored activity document.
type Record struct {
	Type          string     `bson:"type"`
	SubjectID     string     `bson:"subject_id"`
	ActorID       string     `bson:"actor_id,omitempty"`
	ApplicationID string     `bson:"application_id,omitempty"`
	JobID         string     `bson:"job_id,omitempty"`
	CandidateID   string     `bson:"candidate_id,omitempty"`
	InterviewID   string     `bson:"interview_id,omitempty"`
	Status        string     `bson:"status,omitempty"`
	Score         *int       `bson:"score,omitempty"`
	ScheduledAt   *time.Time `bson:"scheduled_at,omitempty"`
	OccurredAt    time.Time  `bson:"occurred_at"`
	RecordedAt    time.Time  `bson:"recorded_at"`
}

func recordOf(event events.Event, now time.Time) Record {
	return Record{
		Type:          string(event.Type),
		SubjectID:     event.SubjectID(),
		ActorID:       event.ActorID,
		ApplicationID: event.ApplicationID,
		JobID:         event.JobID,
		CandidateID:   event.CandidateID,
		InterviewID:   event.InterviewID,
		Status:        event.Status,
		Score:         event.Score,
		ScheduledAt:   event.ScheduledAt,
		OccurredAt:    event.OccurredAt,
		RecordedAt:    now.UTC(),
	}
}

// inserter is the part of *mongo.Collection the store writes through.
type inserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// Store records every event it receives.
type Store struct {
	col inserter
	now func() time.Time
}

// Connect opens a client for uri and verifies it with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongo")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "ping mongo")
	}
	return client, nil
}

// NewStore uses the activity collection of db and ensures its subject index.
func NewStore(ctx context.Context, db *mongo.Database) (*Store, error) {
	col := db.Collection(Collection)
	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "subject_id", Value: 1}, {Key: "occurred_at", Value: -1}},
		Options: options.Index().SetName("subject_recent"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "create activity index")
	}
	return &Store{col: col, now: time.Now}, nil
}

func (s *Store) HandleEvent(ctx context.Context, event events.Event) error {
	if _, err := s.col.InsertOne(ctx, recordOf(event, s.now())); err != nil {
		return errors.Wrap(err, "record activity")
	}
	return nil
}
