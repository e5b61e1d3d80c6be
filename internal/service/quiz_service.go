package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
)

// QuizService предоставляет методы для работы с викторинами
type QuizService struct {
	store repository.QuizStore
}

// NewQuizService создает новый сервис викторин
func NewQuizService(store repository.QuizStore) *QuizService {
	return &QuizService{store: store}
}

// CreateQuiz создает новую викторину, генерируя уникальные идентификаторы
// для викторины и каждого вопроса. Возвращаемая викторина содержит
// правильные ответы — это представление для создателя.
func (s *QuizService) CreateQuiz(title string, questions []entity.Question) (*entity.Quiz, error) {
	quiz := &entity.Quiz{
		ID:        uuid.NewString(),
		Title:     title,
		Questions: make([]entity.Question, len(questions)),
		CreatedAt: time.Now(),
	}
	for i, q := range questions {
		q.ID = uuid.NewString()
		quiz.Questions[i] = q
	}

	if err := s.store.SaveQuiz(quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	log.Printf("[QuizService] Создана викторина %s (%d вопросов)", quiz.ID, len(quiz.Questions))
	return quiz, nil
}

// GetQuiz возвращает викторину по ID
func (s *QuizService) GetQuiz(quizID string) (*entity.Quiz, error) {
	return s.store.GetQuiz(quizID)
}

// DeleteQuiz удаляет викторину и все связанные с ней результаты
func (s *QuizService) DeleteQuiz(quizID string) (*entity.Quiz, int, error) {
	quiz, deletedResults, err := s.store.DeleteQuiz(quizID)
	if err != nil {
		return nil, 0, err
	}

	log.Printf("[QuizService] Удалена викторина %s, каскадно удалено результатов: %d", quizID, deletedResults)
	return quiz, deletedResults, nil
}

// SubmitAnswer записывает ответ пользователя на вопрос викторины
func (s *QuizService) SubmitAnswer(quizID, questionID, userID string, selectedOption int) (*entity.Answer, error) {
	return s.store.SubmitAnswer(quizID, questionID, userID, selectedOption)
}

// GetResults возвращает результат пользователя по викторине
func (s *QuizService) GetResults(quizID, userID string) (*entity.Result, error) {
	return s.store.GetResults(quizID, userID)
}
