package entity

import (
	"fmt"
	"time"
)

// Result представляет результат одного пользователя по одной викторине.
// Пара (QuizID, UserID) уникальна: на пользователя хранится не более
// одного результата по викторине.
type Result struct {
	QuizID      string    `json:"quiz_id"`
	UserID      string    `json:"user_id"`
	Answers     []Answer  `json:"answers"`
	Score       string    `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ComputeScore подсчитывает строку счёта вида "<correct> / <total>".
// totalQuestions — текущее количество вопросов викторины, а не количество
// отправленных ответов. Деления нет, totalQuestions может быть нулем.
func ComputeScore(answers []Answer, totalQuestions int) string {
	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}
	return fmt.Sprintf("%d / %d", correct, totalQuestions)
}

// Recalculate пересчитывает счёт результата по текущему числу вопросов
func (r *Result) Recalculate(totalQuestions int) {
	r.Score = ComputeScore(r.Answers, totalQuestions)
}

// AnswerIndex возвращает позицию ответа на вопрос или -1, если ответа нет.
// Используется для upsert: повторный ответ заменяет прежний на том же месте.
func (r *Result) AnswerIndex(questionID string) int {
	for i := range r.Answers {
		if r.Answers[i].QuestionID == questionID {
			return i
		}
	}
	return -1
}

// Clone возвращает глубокую копию результата
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Answers = make([]Answer, len(r.Answers))
	copy(clone.Answers, r.Answers)
	return &clone
}
