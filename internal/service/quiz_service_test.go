package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// ============================================================================
// Моки для QuizService
// ============================================================================

// MockQuizStore реализует repository.QuizStore
type MockQuizStore struct {
	mock.Mock
}

func (m *MockQuizStore) SaveQuiz(quiz *entity.Quiz) error {
	args := m.Called(quiz)
	return args.Error(0)
}

func (m *MockQuizStore) GetQuiz(quizID string) (*entity.Quiz, error) {
	args := m.Called(quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quiz), args.Error(1)
}

func (m *MockQuizStore) DeleteQuiz(quizID string) (*entity.Quiz, int, error) {
	args := m.Called(quizID)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).(*entity.Quiz), args.Int(1), args.Error(2)
}

func (m *MockQuizStore) SubmitAnswer(quizID, questionID, userID string, selectedOption int) (*entity.Answer, error) {
	args := m.Called(quizID, questionID, userID, selectedOption)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Answer), args.Error(1)
}

func (m *MockQuizStore) GetResults(quizID, userID string) (*entity.Result, error) {
	args := m.Called(quizID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Result), args.Error(1)
}

// ============================================================================
// Тесты для QuizService
// ============================================================================

func TestQuizService_CreateQuiz_GeneratesUniqueIDs(t *testing.T) {
	// Arrange
	mockStore := new(MockQuizStore)
	mockStore.On("SaveQuiz", mock.AnythingOfType("*entity.Quiz")).Return(nil)

	quizService := NewQuizService(mockStore)

	questions := []entity.Question{
		{Text: "Вопрос 1", Options: []string{"A", "B", "C", "D"}, CorrectOption: 2},
		{Text: "Вопрос 2", Options: []string{"A", "B", "C", "D"}, CorrectOption: 0},
	}

	// Act
	quiz, err := quizService.CreateQuiz("Викторина", questions)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, quiz.ID, "ID викторины должен быть сгенерирован")
	require.Len(t, quiz.Questions, 2)
	assert.NotEmpty(t, quiz.Questions[0].ID)
	assert.NotEmpty(t, quiz.Questions[1].ID)
	assert.NotEqual(t, quiz.Questions[0].ID, quiz.Questions[1].ID, "ID вопросов должны быть различны")
	assert.NotEqual(t, quiz.ID, quiz.Questions[0].ID)
	assert.False(t, quiz.CreatedAt.IsZero())
	mockStore.AssertExpectations(t)
}

func TestQuizService_CreateQuiz_DistinctAcrossCalls(t *testing.T) {
	// Arrange: одинаковое содержимое — разные идентификаторы
	mockStore := new(MockQuizStore)
	mockStore.On("SaveQuiz", mock.AnythingOfType("*entity.Quiz")).Return(nil)

	quizService := NewQuizService(mockStore)

	questions := []entity.Question{
		{Text: "Вопрос", Options: []string{"A", "B", "C", "D"}, CorrectOption: 1},
	}

	// Act
	first, err := quizService.CreateQuiz("Викторина", questions)
	require.NoError(t, err)
	second, err := quizService.CreateQuiz("Викторина", questions)
	require.NoError(t, err)

	// Assert
	assert.NotEqual(t, first.ID, second.ID, "Повторное создание дает новый ID викторины")
	assert.NotEqual(t, first.Questions[0].ID, second.Questions[0].ID, "Повторное создание дает новые ID вопросов")
}

func TestQuizService_CreateQuiz_PreservesContentAndOrder(t *testing.T) {
	// Arrange
	mockStore := new(MockQuizStore)

	var saved *entity.Quiz
	mockStore.On("SaveQuiz", mock.AnythingOfType("*entity.Quiz")).
		Run(func(args mock.Arguments) {
			saved = args.Get(0).(*entity.Quiz)
		}).
		Return(nil)

	quizService := NewQuizService(mockStore)

	questions := []entity.Question{
		{Text: "Первый", Options: []string{"A", "B", "C", "D"}, CorrectOption: 3},
		{Text: "Второй", Options: []string{"1", "2", "3", "4"}, CorrectOption: 0},
	}

	// Act
	quiz, err := quizService.CreateQuiz("Моя викторина", questions)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, quiz.ID, saved.ID)
	assert.Equal(t, "Моя викторина", saved.Title)
	require.Len(t, saved.Questions, 2)
	assert.Equal(t, "Первый", saved.Questions[0].Text)
	assert.Equal(t, 3, saved.Questions[0].CorrectOption)
	assert.Equal(t, "Второй", saved.Questions[1].Text)
	assert.Equal(t, 0, saved.Questions[1].CorrectOption)
}

func TestQuizService_CreateQuiz_StoreError(t *testing.T) {
	// Arrange
	mockStore := new(MockQuizStore)
	mockStore.On("SaveQuiz", mock.AnythingOfType("*entity.Quiz")).Return(errors.New("boom"))

	quizService := NewQuizService(mockStore)

	// Act
	quiz, err := quizService.CreateQuiz("Викторина", []entity.Question{
		{Text: "Вопрос", Options: []string{"A", "B", "C", "D"}, CorrectOption: 0},
	})

	// Assert
	assert.Nil(t, quiz)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create quiz")
}

func TestQuizService_GetQuiz_Delegates(t *testing.T) {
	// Arrange
	mockStore := new(MockQuizStore)
	expected := &entity.Quiz{ID: "quiz-1", Title: "Викторина"}
	mockStore.On("GetQuiz", "quiz-1").Return(expected, nil)

	quizService := NewQuizService(mockStore)

	// Act
	quiz, err := quizService.GetQuiz("quiz-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, quiz)
	mockStore.AssertExpectations(t)
}

func TestQuizService_DeleteQuiz_Delegates(t *testing.T) {
	// Arrange
	mockStore := new(MockQuizStore)
	deleted := &entity.Quiz{ID: "quiz-1"}
	mockStore.On("DeleteQuiz", "quiz-1").Return(deleted, 3, nil)

	quizService := NewQuizService(mockStore)

	// Act
	quiz, deletedResults, err := quizService.DeleteQuiz("quiz-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "quiz-1", quiz.ID)
	assert.Equal(t, 3, deletedResults)
	mockStore.AssertExpectations(t)
}

func TestQuizService_DeleteQuiz_NotFound(t *testing.T) {
	// Arrange
	mockStore := new(MockQuizStore)
	mockStore.On("DeleteQuiz", "missing").Return(nil, 0, apperrors.ErrNotFound)

	quizService := NewQuizService(mockStore)

	// Act
	quiz, deletedResults, err := quizService.DeleteQuiz("missing")

	// Assert
	assert.Nil(t, quiz)
	assert.Zero(t, deletedResults)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestQuizService_SubmitAnswer_Delegates(t *testing.T) {
	// Arrange
	mockStore := new(MockQuizStore)
	expected := &entity.Answer{QuestionID: "q-1", SelectedOption: 2, CorrectAnswer: 2, IsCorrect: true}
	mockStore.On("SubmitAnswer", "quiz-1", "q-1", "user-1", 2).Return(expected, nil)

	quizService := NewQuizService(mockStore)

	// Act
	answer, err := quizService.SubmitAnswer("quiz-1", "q-1", "user-1", 2)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, answer)
	mockStore.AssertExpectations(t)
}

func TestQuizService_GetResults_Delegates(t *testing.T) {
	// Arrange
	mockStore := new(MockQuizStore)
	expected := &entity.Result{QuizID: "quiz-1", UserID: "user-1", Score: "1 / 2"}
	mockStore.On("GetResults", "quiz-1", "user-1").Return(expected, nil)

	quizService := NewQuizService(mockStore)

	// Act
	result, err := quizService.GetResults("quiz-1", "user-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "1 / 2", result.Score)
	mockStore.AssertExpectations(t)
}
