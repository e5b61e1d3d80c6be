package entity

import (
	"time"
)

// Quiz представляет викторину с упорядоченным списком вопросов.
// Викторина владеет своими вопросами: удаление викторины удаляет и вопросы.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"created_at"`
}

// QuestionCount возвращает текущее количество вопросов викторины
func (q *Quiz) QuestionCount() int {
	return len(q.Questions)
}

// QuestionByID ищет вопрос по его идентификатору
func (q *Quiz) QuestionByID(questionID string) (*Question, bool) {
	for i := range q.Questions {
		if q.Questions[i].ID == questionID {
			return &q.Questions[i], true
		}
	}
	return nil, false
}

// Clone возвращает глубокую копию викторины.
// Хранилище отдает наружу только копии, чтобы вызывающий код
// не мог изменить внутреннее состояние через общий указатель.
func (q *Quiz) Clone() *Quiz {
	if q == nil {
		return nil
	}
	clone := *q
	clone.Questions = make([]Question, len(q.Questions))
	for i := range q.Questions {
		clone.Questions[i] = *q.Questions[i].Clone()
	}
	return &clone
}
