package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// Store — in-memory хранилище викторин и результатов.
// Держит две карты: викторины по ID и результаты по ID пользователя
// (у одного пользователя могут сосуществовать результаты разных викторин).
//
// Все мутирующие операции выполняются целиком под write-lock, поэтому
// каскадное удаление никогда не наблюдается наполовину выполненным.
type Store struct {
	mu      sync.RWMutex
	quizzes map[string]*entity.Quiz
	results map[string][]*entity.Result
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		quizzes: make(map[string]*entity.Quiz),
		results: make(map[string][]*entity.Result),
	}
}

// SaveQuiz сохраняет новую викторину
func (s *Store) SaveQuiz(quiz *entity.Quiz) error {
	if quiz == nil || quiz.ID == "" {
		return fmt.Errorf("quiz must have an ID: %w", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Сохраняем копию: вызывающий код остается владельцем своего объекта
	s.quizzes[quiz.ID] = quiz.Clone()
	return nil
}

// GetQuiz возвращает копию викторины по ID
func (s *Store) GetQuiz(quizID string) (*entity.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quiz, ok := s.quizzes[quizID]
	if !ok {
		return nil, fmt.Errorf("quiz with ID %s not found: %w", quizID, apperrors.ErrNotFound)
	}
	return quiz.Clone(), nil
}

// DeleteQuiz удаляет викторину и каскадно все результаты по ней.
//
// Удаление атомарно по построению: отфильтрованные списки результатов
// собираются полностью до какой-либо мутации карт, поэтому откат
// (как в варианте с восстановлением викторины при сбое очистки)
// здесь не нужен — промежуточное состояние непредставимо.
func (s *Store) DeleteQuiz(quizID string) (*entity.Quiz, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quiz, ok := s.quizzes[quizID]
	if !ok {
		return nil, 0, fmt.Errorf("quiz with ID %s not found: %w", quizID, apperrors.ErrNotFound)
	}

	deleted := 0
	filteredByUser := make(map[string][]*entity.Result, len(s.results))
	for userID, userResults := range s.results {
		filtered := make([]*entity.Result, 0, len(userResults))
		for _, r := range userResults {
			if r.QuizID == quizID {
				deleted++
				continue
			}
			filtered = append(filtered, r)
		}
		filteredByUser[userID] = filtered
	}

	// Коммит: с этого места обе карты меняются без единой точки отказа
	delete(s.quizzes, quizID)
	for userID, filtered := range filteredByUser {
		if len(filtered) == 0 {
			// Пользователь без результатов удаляется из карты целиком
			delete(s.results, userID)
		} else {
			s.results[userID] = filtered
		}
	}

	return quiz.Clone(), deleted, nil
}

// SubmitAnswer записывает ответ пользователя на вопрос викторины.
// Повторный ответ на тот же вопрос заменяет прежний на той же позиции,
// новый ответ добавляется в конец. Счёт результата пересчитывается
// по текущему числу вопросов викторины.
func (s *Store) SubmitAnswer(quizID, questionID, userID string, selectedOption int) (*entity.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quiz, ok := s.quizzes[quizID]
	if !ok {
		return nil, fmt.Errorf("quiz with ID %s not found: %w", quizID, apperrors.ErrNotFound)
	}

	question, ok := quiz.QuestionByID(questionID)
	if !ok {
		return nil, fmt.Errorf("question with ID %s not found: %w", questionID, apperrors.ErrNotFound)
	}

	// Индекс вне диапазона вариантов не отклоняется: такой ответ
	// принимается и просто считается неправильным
	answer := entity.Answer{
		QuestionID:     questionID,
		SelectedOption: selectedOption,
		CorrectAnswer:  question.CorrectOption,
		IsCorrect:      question.IsCorrect(selectedOption),
	}

	result := s.findResult(quizID, userID)
	if result == nil {
		// SubmittedAt выставляется один раз, при первом ответе,
		// и не обновляется последующими ответами
		result = &entity.Result{
			QuizID:      quizID,
			UserID:      userID,
			Answers:     []entity.Answer{},
			SubmittedAt: time.Now(),
		}
		s.results[userID] = append(s.results[userID], result)
	}

	if idx := result.AnswerIndex(questionID); idx >= 0 {
		result.Answers[idx] = answer
	} else {
		result.Answers = append(result.Answers, answer)
	}

	result.Recalculate(quiz.QuestionCount())

	answerCopy := answer
	return &answerCopy, nil
}

// GetResults возвращает результат пользователя по викторине.
// Счёт пересчитывается по текущему числу вопросов, если викторина
// еще существует; пересчёт пишет в результат, поэтому берется write-lock.
func (s *Store) GetResults(quizID, userID string) (*entity.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.results[userID]; !ok {
		return nil, fmt.Errorf("no results found for user %s: %w", userID, apperrors.ErrNotFound)
	}

	result := s.findResult(quizID, userID)
	if result == nil {
		return nil, fmt.Errorf("no results found for quiz %s: %w", quizID, apperrors.ErrNotFound)
	}

	if quiz, ok := s.quizzes[quizID]; ok {
		result.Recalculate(quiz.QuestionCount())
	}

	return result.Clone(), nil
}

// findResult ищет результат пары (викторина, пользователь).
// Вызывающий код должен держать lock.
func (s *Store) findResult(quizID, userID string) *entity.Result {
	for _, r := range s.results[userID] {
		if r.QuizID == quizID {
			return r
		}
	}
	return nil
}
