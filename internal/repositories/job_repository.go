package repositories

import (
	"context"

	"hirehub/internal/models"

	"gorm.io/gorm"
)

type JobRepository struct {
	DB *gorm.DB
}

func employerSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "company_name")
}

func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	return translate(r.DB.WithContext(ctx).Create(job).Error, "create job")
}

// GetByID loads a job with its employer summary.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.DB.WithContext(ctx).
		Preload("Employer", employerSummary).
		First(&job, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "get job")
	}
	return &job, nil
}

// List returns every job, newest first.
func (r *JobRepository) List(ctx context.Context) ([]models.Job, error) {
	jobs := []models.Job{}
	err := r.DB.WithContext(ctx).
		Preload("Employer", employerSummary).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, translate(err, "list jobs")
}

func (r *JobRepository) ListByEmployer(ctx context.Context, employerID string) ([]models.Job, error) {
	jobs := []models.Job{}
	err := r.DB.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, translate(err, "list employer jobs")
}

func (r *JobRepository) Save(ctx context.Context, job *models.Job) error {
	return translate(r.DB.WithContext(ctx).Omit("Employer").Save(job).Error, "save job")
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, "delete job")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "delete job")
	}
	return nil
}
