package repositories

import (
	"context"
	"time"

	"hirehub/internal/models"

	"gorm.io/gorm"
)

type InterviewRepository struct {
	DB *gorm.DB
}

func personSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

func (r *InterviewRepository) Create(ctx context.Context, interview *models.Interview) error {
	return translate(r.DB.WithContext(ctx).Omit("Application", "Interviewer").Create(interview).Error, "create interview")
}

// GetByID loads the interview with the whole ownership chain and the
// summaries shown on the details page.
func (r *InterviewRepository) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	var interview models.Interview
	err := r.DB.WithContext(ctx).
		Preload("Application").
		Preload("Application.Job", func(db *gorm.DB) *gorm.DB { return db.Select("id", "title", "employer_id") }).
		Preload("Application.Candidate", personSummary).
		Preload("Interviewer", personSummary).
		First(&interview, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "get interview")
	}
	return &interview, nil
}

func (r *InterviewRepository) ListByCandidate(ctx context.Context, candidateID string) ([]models.Interview, error) {
	interviews := []models.Interview{}
	err := r.DB.WithContext(ctx).
		Joins("JOIN applications ON applications.id = interviews.application_id").
		Where("applications.candidate_id = ?", candidateID).
		Preload("Application").
		Preload("Application.Job", func(db *gorm.DB) *gorm.DB { return db.Select("id", "title") }).
		Preload("Interviewer", personSummary).
		Order("interviews.scheduled_at ASC").
		Find(&interviews).Error
	return interviews, translate(err, "list candidate interviews")
}

// Update writes the mutable columns of interview. Reference columns such as
// application_id are never written.
func (r *InterviewRepository) Update(ctx context.Context, interview *models.Interview) error {
	err := r.DB.WithContext(ctx).
		Model(&models.Interview{}).
		Where("id = ?", interview.ID).
		Select("scheduled_at", "mode", "location", "interviewer_id", "status", "feedback", "reminder_sent_at", "updated_at").
		Updates(map[string]any{
			"scheduled_at":     interview.ScheduledAt,
			"mode":             interview.Mode,
			"location":         interview.Location,
			"interviewer_id":   interview.InterviewerID,
			"status":           interview.Status,
			"feedback":         interview.Feedback,
			"reminder_sent_at": interview.ReminderSentAt,
			"updated_at":       time.Now(),
		}).Error
	return translate(err, "update interview")
}

// DueForReminder lists scheduled interviews starting in [from, to) that have
// not been reminded yet.
func (r *InterviewRepository) DueForReminder(ctx context.Context, from, to time.Time) ([]models.Interview, error) {
	interviews := []models.Interview{}
	err := r.DB.WithContext(ctx).
		Preload("Application").
		Preload("Application.Candidate", personSummary).
		Preload("Application.Job", func(db *gorm.DB) *gorm.DB { return db.Select("id", "title") }).
		Where("status = ? AND reminder_sent_at IS NULL AND scheduled_at >= ? AND scheduled_at < ?",
			models.InterviewScheduled, from, to).
		Find(&interviews).Error
	return interviews, translate(err, "list interviews due for reminder")
}

func (r *InterviewRepository) MarkReminded(ctx context.Context, id string, at time.Time) error {
	err := r.DB.WithContext(ctx).Model(&models.Interview{}).Where("id = ?", id).Update("reminder_sent_at", at).Error
	return translate(err, "mark interview reminded")
}
