package repositories

import (
	"context"

	"hirehub/internal/models"

	"gorm.io/gorm"
)

type TestResultRepository struct {
	DB *gorm.DB
}

// Create inserts a result; the unique index on application_id rejects resubmission.
func (r *TestResultRepository) Create(ctx context.Context, result *models.TestResult) error {
	return translate(r.DB.WithContext(ctx).Omit("Application").Create(result).Error, "create test result")
}

// GetByApplicationID loads the result joined with candidate and job summaries.
func (r *TestResultRepository) GetByApplicationID(ctx context.Context, applicationID string) (*models.TestResult, error) {
	var result models.TestResult
	err := r.DB.WithContext(ctx).
		Preload("Application").
		Preload("Application.Candidate", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name", "email") }).
		Preload("Application.Job", func(db *gorm.DB) *gorm.DB { return db.Select("id", "title") }).
		First(&result, "application_id = ?", applicationID).Error
	if err != nil {
		return nil, translate(err, "get test result")
	}
	return &result, nil
}

// ListByCandidate returns results of every application owned by the candidate.
func (r *TestResultRepository) ListByCandidate(ctx context.Context, candidateID string) ([]models.TestResult, error) {
	results := []models.TestResult{}
	err := r.DB.WithContext(ctx).
		Joins("JOIN applications ON applications.id = test_results.application_id").
		Where("applications.candidate_id = ?", candidateID).
		Preload("Application").
		Preload("Application.Job", func(db *gorm.DB) *gorm.DB { return db.Select("id", "title") }).
		Order("test_results.completed_at DESC").
		Find(&results).Error
	return results, translate(err, "list candidate test results")
}
