package repository

import (
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// QuizStore определяет операции хранилища викторин и результатов.
// Все возвращаемые значения — независимые копии: изменение полученного
// объекта не влияет на состояние хранилища.
type QuizStore interface {
	// SaveQuiz сохраняет новую викторину. Идентификаторы должны быть
	// уже сгенерированы вызывающей стороной.
	SaveQuiz(quiz *entity.Quiz) error

	// GetQuiz возвращает викторину по ID вместе с правильными ответами.
	// Скрытие правильных вариантов — задача граничного слоя.
	GetQuiz(quizID string) (*entity.Quiz, error)

	// DeleteQuiz удаляет викторину и каскадно все результаты по ней
	// у всех пользователей. Возвращает удаленную викторину и число
	// удаленных результатов.
	DeleteQuiz(quizID string) (*entity.Quiz, int, error)

	// SubmitAnswer записывает ответ пользователя (upsert по вопросу)
	// и пересчитывает счёт результата.
	SubmitAnswer(quizID, questionID, userID string, selectedOption int) (*entity.Answer, error)

	// GetResults возвращает результат пользователя по викторине.
	GetResults(quizID, userID string) (*entity.Result, error)
}
