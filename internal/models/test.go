package models

import (
	"gorm.io/datatypes"
)

// Question is a single multiple-choice item of a screening test.
type Question struct {
	ID            string   `json:"id"`
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
}

// Test is the screening test of a job; at most one per job.
type Test struct {
	Base
	JobID     string                        `gorm:"type:varchar(36);not null;uniqueIndex" json:"jobId"`
	Job       *Job                          `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Questions datatypes.JSONSlice[Question] `json:"questions"`
	Duration  int                           `json:"duration"`
}

// Redacted returns a copy of the test with every correct answer removed.
func (t Test) Redacted() Test {
	qs := make(datatypes.JSONSlice[Question], len(t.Questions))
	for i, q := range t.Questions {
		q.Options = append([]string(nil), q.Options...)
		q.CorrectAnswer = ""
		qs[i] = q
	}
	t.Questions = qs
	return t
}
