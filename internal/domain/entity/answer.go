package entity

// Answer представляет ответ пользователя на один вопрос.
// CorrectAnswer — денормализованная копия правильного индекса на момент
// отправки ответа, чтобы результат оставался читаемым сам по себе.
type Answer struct {
	QuestionID     string `json:"question_id"`
	SelectedOption int    `json:"selected_option"`
	CorrectAnswer  int    `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
}
