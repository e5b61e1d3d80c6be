package entity

// Question представляет вопрос викторины.
// Вопрос неизменяем после создания: ни текст, ни варианты не обновляются.
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
}

// IsCorrect проверяет, является ли выбранный вариант правильным
func (q *Question) IsCorrect(selectedOption int) bool {
	return selectedOption == q.CorrectOption
}

// OptionsCount возвращает количество вариантов ответа
func (q *Question) OptionsCount() int {
	return len(q.Options)
}

// IsValidOption проверяет, является ли индекс варианта допустимым
func (q *Question) IsValidOption(selectedOption int) bool {
	return selectedOption >= 0 && selectedOption < len(q.Options)
}

// OptionText возвращает текст варианта по индексу.
// Для индекса вне диапазона возвращает пустую строку.
func (q *Question) OptionText(i int) string {
	if !q.IsValidOption(i) {
		return ""
	}
	return q.Options[i]
}

// Clone возвращает глубокую копию вопроса
func (q *Question) Clone() *Question {
	clone := *q
	clone.Options = make([]string, len(q.Options))
	copy(clone.Options, q.Options)
	return &clone
}
