package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/handler/dto"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
	"github.com/yourusername/quiz-api/internal/service"
)

// QuizHandler обрабатывает запросы, связанные с викторинами
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// CreateQuestionRequest представляет вопрос в запросе на создание викторины.
// CorrectOption — указатель, чтобы binding:"required" не отвергал индекс 0.
type CreateQuestionRequest struct {
	Text          string   `json:"text" binding:"required,min=1,max=500"`
	Options       []string `json:"options" binding:"required,min=4"`
	CorrectOption *int     `json:"correct_option" binding:"required"`
}

// CreateQuizRequest представляет запрос на создание викторины
type CreateQuizRequest struct {
	Title     string                  `json:"title" binding:"required,min=1,max=100"`
	Questions []CreateQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

// CreateQuiz обрабатывает запрос на создание викторины
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewFailure("Failed to create quiz", err))
		return
	}

	// Преобразуем данные в формат для сервиса
	questions := make([]entity.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		if *q.CorrectOption < 0 || *q.CorrectOption >= len(q.Options) {
			err := fmt.Errorf("invalid correct_option index %d for question '%s'", *q.CorrectOption, q.Text)
			c.JSON(http.StatusBadRequest, dto.NewFailure("Failed to create quiz", err))
			return
		}
		questions = append(questions, entity.Question{
			Text:          q.Text,
			Options:       q.Options,
			CorrectOption: *q.CorrectOption,
		})
	}

	quiz, err := h.quizService.CreateQuiz(req.Title, questions)
	if err != nil {
		h.handleQuizError(c, "Failed to create quiz", err)
		return
	}

	// Представление для создателя: правильные ответы включены
	c.JSON(http.StatusCreated, dto.CreateQuizResponse{
		Response: dto.NewSuccess("Quiz created successfully"),
		Quiz:     dto.NewQuizResponse(quiz, true),
	})
}

// GetQuiz возвращает викторину для прохождения: правильные варианты вырезаны
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(string) // Получаем из контекста

	quiz, err := h.quizService.GetQuiz(quizID)
	if err != nil {
		h.handleQuizError(c, "Failed to get quiz", err)
		return
	}

	c.JSON(http.StatusOK, dto.GetQuizResponse{
		Response: dto.NewSuccess("Quiz retrieved successfully"),
		Quiz:     dto.NewQuizResponse(quiz, false),
	})
}

// DeleteQuiz удаляет викторину и каскадно все результаты по ней
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(string) // Получаем из контекста

	quiz, deletedResults, err := h.quizService.DeleteQuiz(quizID)
	if err != nil {
		h.handleQuizError(c, "Failed to delete quiz", err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteQuizResponse{
		Response:       dto.NewSuccess("Quiz deleted successfully"),
		Quiz:           dto.NewQuizResponse(quiz, true),
		DeletedResults: deletedResults,
	})
}

// SubmitAnswerRequest представляет запрос на отправку ответа.
// Диапазон selected_option намеренно не проверяется: индекс вне списка
// вариантов принимается и засчитывается как неправильный ответ.
type SubmitAnswerRequest struct {
	SelectedOption *int `json:"selected_option" binding:"required"`
}

// SubmitAnswer записывает ответ пользователя на вопрос викторины
func (h *QuizHandler) SubmitAnswer(c *gin.Context) {
	quizID := c.MustGet("quizID").(string)         // Получаем из контекста
	questionID := c.MustGet("questionID").(string) // Получаем из контекста
	userID := c.MustGet("userID").(string)         // Из заголовка userId

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewFailure("Failed to submit answer", err))
		return
	}

	answer, err := h.quizService.SubmitAnswer(quizID, questionID, userID, *req.SelectedOption)
	if err != nil {
		h.handleQuizError(c, "Failed to submit answer", err)
		return
	}

	c.JSON(http.StatusOK, dto.SubmitAnswerResponse{
		Response: dto.NewSuccess("Answer submitted successfully"),
		Answer:   dto.NewAnswerResponse(answer),
	})
}

// GetResults возвращает результат пользователя по викторине
func (h *QuizHandler) GetResults(c *gin.Context) {
	quizID := c.MustGet("quizID").(string) // Получаем из контекста
	userID := c.Param("userID")

	result, err := h.quizService.GetResults(quizID, userID)
	if err != nil {
		h.handleQuizError(c, "Failed to get results", err)
		return
	}

	c.JSON(http.StatusOK, dto.GetResultsResponse{
		Response: dto.NewSuccess("Results retrieved successfully"),
		Result:   dto.NewResultResponse(result),
	})
}

// handleQuizError обрабатывает ошибки от сервиса и отправляет соответствующий HTTP ответ
func (h *QuizHandler) handleQuizError(c *gin.Context, message string, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.NewFailure(message, err))
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, dto.NewFailure(message, err))
	} else {
		log.Printf("ERROR: Internal server error in QuizHandler: %v", err)
		c.JSON(http.StatusInternalServerError, dto.NewFailure(message, errors.New("internal server error")))
	}
}
