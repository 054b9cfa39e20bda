package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"hirehub/internal/events"
	"hirehub/internal/models"
	"hirehub/internal/repositories"
	"hirehub/internal/storage"
	"hirehub/internal/testhelpers"

	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

func (p *recordingPublisher) last() events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events[len(p.events)-1]
}

type fakeResumes struct {
	path    string
	err     error
	uploads []storage.Upload
	removed []string
	onSave  func()
}

func (f *fakeResumes) Save(_ context.Context, u storage.Upload) (string, error) {
	f.uploads = append(f.uploads, u)
	if f.err != nil {
		return "", f.err
	}
	if f.onSave != nil {
		f.onSave()
	}
	return f.path, nil
}

func (f *fakeResumes) Remove(_ context.Context, path string) error {
	f.removed = append(f.removed, path)
	return nil
}

type fixture struct {
	db         *gorm.DB
	users      *repositories.UserRepository
	jobs       *repositories.JobRepository
	apps       *repositories.ApplicationRepository
	tests      *repositories.TestRepository
	results    *repositories.TestResultRepository
	interviews *repositories.InterviewRepository
	pub        *recordingPublisher
	resumes    *fakeResumes

	employer   *models.User
	rival      *models.User
	candidate  *models.User
	candidate2 *models.User
	job        *models.Job
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	f := &fixture{
		db:         db,
		users:      &repositories.UserRepository{DB: db},
		jobs:       &repositories.JobRepository{DB: db},
		apps:       &repositories.ApplicationRepository{DB: db},
		tests:      &repositories.TestRepository{DB: db},
		results:    &repositories.TestResultRepository{DB: db},
		interviews: &repositories.InterviewRepository{DB: db},
		pub:        &recordingPublisher{},
		resumes:    &fakeResumes{path: "uploads/resumes/1-cv.pdf"},
	}
	f.employer = testhelpers.SeedUser(t, db, "acme", models.RoleEmployer)
	f.rival = testhelpers.SeedUser(t, db, "globex", models.RoleEmployer)
	f.candidate = testhelpers.SeedUser(t, db, "alice", models.RoleCandidate)
	f.candidate2 = testhelpers.SeedUser(t, db, "bob", models.RoleCandidate)
	f.job = testhelpers.SeedJob(t, db, f.employer, "Backend Engineer")
	return f
}

func callerOf(u *models.User) models.Caller {
	return models.Caller{ID: u.ID, Role: u.Role}
}

func pdfUpload() *storage.Upload {
	return &storage.Upload{Filename: "cv.pdf", ContentType: "application/pdf", Size: 4}
}

func pngUpload() *storage.Upload {
	return &storage.Upload{Filename: "cv.png", ContentType: "image/png", Size: 4}
}

func ptr[T any](v T) *T { return &v }

var fixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
