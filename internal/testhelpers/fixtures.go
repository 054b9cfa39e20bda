package testhelpers

import (
	"testing"

	"hirehub/internal/models"

	"gorm.io/gorm"
)

// SeedUser inserts a user with the given role.
func SeedUser(t *testing.T, db *gorm.DB, name string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "hash",
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", name, err)
	}
	return user
}

// SeedJob inserts a job owned by employer.
func SeedJob(t *testing.T, db *gorm.DB, employer *models.User, title string) *models.Job {
	t.Helper()
	job := &models.Job{
		EmployerID:   employer.ID,
		Title:        title,
		Description:  title + " description",
		Requirements: []string{"Go"},
		Location:     "Remote",
	}
	if err := db.Omit("Employer").Create(job).Error; err != nil {
		t.Fatalf("failed to seed job %s: %v", title, err)
	}
	return job
}

// SeedApplication inserts an application of candidate for job.
func SeedApplication(t *testing.T, db *gorm.DB, candidate *models.User, job *models.Job) *models.Application {
	t.Helper()
	app := &models.Application{
		CandidateID: candidate.ID,
		JobID:       job.ID,
		Status:      models.StatusApplied,
	}
	if err := db.Omit("Candidate", "Job").Create(app).Error; err != nil {
		t.Fatalf("failed to seed application: %v", err)
	}
	return app
}
