package models

import (
	"time"

	"gorm.io/datatypes"
)

// SubmittedAnswer is one answer as sent by the candidate.
type SubmittedAnswer struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// GradedAnswer is a submitted answer after scoring.
type GradedAnswer struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
	Correct    bool   `json:"correct"`
}

// TestResult is the single scoring pass of an application.
type TestResult struct {
	Base
	ApplicationID string                            `gorm:"type:varchar(36);not null;uniqueIndex" json:"applicationId"`
	Application   *Application                      `gorm:"foreignKey:ApplicationID" json:"application,omitempty"`
	Answers       datatypes.JSONSlice[GradedAnswer] `json:"answers"`
	Score         int                               `json:"score"`
	CompletedAt   time.Time                         `json:"completedAt"`
}
