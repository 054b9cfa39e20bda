package services

import "hirehub/internal/models"

// Score grades answers against the test questions. An answer is correct
// when its question exists and the answer matches the correct option
// exactly. Unknown question ids are kept and marked incorrect; questions
// without an answer are not represented.
func Score(questions []models.Question, answers []models.SubmittedAnswer) ([]models.GradedAnswer, int) {
	byID := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	graded := make([]models.GradedAnswer, 0, len(answers))
	score := 0
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		correct := ok && q.CorrectAnswer == a.Answer
		if correct {
			score++
		}
		graded = append(graded, models.GradedAnswer{
			QuestionID: a.QuestionID,
			Answer:     a.Answer,
			Correct:    correct,
		})
	}
	return graded, score
}
