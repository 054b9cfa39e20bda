package repositories

import (
	"context"
	"errors"

	"hirehub/internal/models"

	"gorm.io/gorm"
)

type ApplicationRepository struct {
	DB *gorm.DB
}

// Create inserts the application; a second row for the same candidate and
// job is rejected by the composite unique index and reported as ErrDuplicate.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	return translate(r.DB.WithContext(ctx).Omit("Candidate", "Job").Create(app).Error, "create application")
}

// GetByID loads an application with its job, which carries the employer id
// needed for ownership checks.
func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	if err := r.DB.WithContext(ctx).Preload("Job").First(&app, "id = ?", id).Error; err != nil {
		return nil, translate(err, "get application")
	}
	return &app, nil
}

func (r *ApplicationRepository) Exists(ctx context.Context, candidateID, jobID string) (bool, error) {
	var app models.Application
	err := r.DB.WithContext(ctx).
		Select("id").
		Where("candidate_id = ? AND job_id = ?", candidateID, jobID).
		First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, translate(err, "check application")
	}
	return true, nil
}

func (r *ApplicationRepository) ListByCandidate(ctx context.Context, candidateID string) ([]models.Application, error) {
	apps := []models.Application{}
	err := r.DB.WithContext(ctx).
		Preload("Job", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "description", "location")
		}).
		Where("candidate_id = ?", candidateID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, translate(err, "list candidate applications")
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	apps := []models.Application{}
	err := r.DB.WithContext(ctx).
		Preload("Candidate", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "resume", "skills", "experience")
		}).
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, translate(err, "list job applications")
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	return r.updateColumn(ctx, id, "status", status)
}

func (r *ApplicationRepository) SetTestResult(ctx context.Context, id, resultID string) error {
	return r.updateColumn(ctx, id, "test_result_id", resultID)
}

func (r *ApplicationRepository) SetInterview(ctx context.Context, id, interviewID string) error {
	return r.updateColumn(ctx, id, "interview_id", interviewID)
}

func (r *ApplicationRepository) updateColumn(ctx context.Context, id, column string, value any) error {
	res := r.DB.WithContext(ctx).Model(&models.Application{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return translate(res.Error, "update application "+column)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "update application "+column)
	}
	return nil
}
