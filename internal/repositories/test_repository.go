package repositories

import (
	"context"

	"hirehub/internal/models"

	"gorm.io/gorm"
)

type TestRepository struct {
	DB *gorm.DB
}

// Create inserts a test; the unique index on job_id keeps one test per job.
func (r *TestRepository) Create(ctx context.Context, test *models.Test) error {
	return translate(r.DB.WithContext(ctx).Omit("Job").Create(test).Error, "create test")
}

// GetByID loads a test with its job for the ownership chain.
func (r *TestRepository) GetByID(ctx context.Context, id string) (*models.Test, error) {
	var test models.Test
	if err := r.DB.WithContext(ctx).Preload("Job").First(&test, "id = ?", id).Error; err != nil {
		return nil, translate(err, "get test")
	}
	return &test, nil
}

func (r *TestRepository) GetByJobID(ctx context.Context, jobID string) (*models.Test, error) {
	var test models.Test
	if err := r.DB.WithContext(ctx).First(&test, "job_id = ?", jobID).Error; err != nil {
		return nil, translate(err, "get test by job")
	}
	return &test, nil
}

func (r *TestRepository) Save(ctx context.Context, test *models.Test) error {
	return translate(r.DB.WithContext(ctx).Omit("Job").Save(test).Error, "save test")
}

func (r *TestRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.Test{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, "delete test")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "delete test")
	}
	return nil
}
