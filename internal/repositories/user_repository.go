package repositories

import (
	"context"
	"strings"

	"hirehub/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	return translate(r.DB.WithContext(ctx).Create(user).Error, "create user")
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, translate(err, "get user by id")
	}
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, "email = ?", normalizeEmail(email)).Error; err != nil {
		return nil, translate(err, "get user by email")
	}
	return &user, nil
}

// UpdateUser persists every field of user.
func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	return translate(r.DB.WithContext(ctx).Save(user).Error, "update user")
}

// SetResume records the latest uploaded résumé on the profile.
func (r *UserRepository) SetResume(ctx context.Context, userID, path string) error {
	res := r.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("resume", path)
	if res.Error != nil {
		return translate(res.Error, "set resume")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "set resume")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
