package dto

import (
	"time"

	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// Response — базовый конверт ответа API.
// Каждая операция отвечает единообразно: success, человекочитаемое
// message и, для неуспеха, строка error с деталями.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// QuestionResponse представляет вопрос в формате для ответа клиенту.
// CorrectOption — указатель: в представлении для прохождения викторины
// поле опускается целиком, а не обнуляется.
type QuestionResponse struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectOption *int     `json:"correct_option,omitempty"`
}

// QuizResponse представляет викторину в формате для ответа клиенту
type QuizResponse struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Questions []QuestionResponse `json:"questions"`
	CreatedAt time.Time          `json:"created_at"`
}

// AnswerResponse представляет записанный ответ пользователя
type AnswerResponse struct {
	QuestionID     string `json:"question_id"`
	SelectedOption int    `json:"selected_option"`
	CorrectAnswer  int    `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
}

// ResultResponse представляет результат пользователя по викторине
type ResultResponse struct {
	QuizID      string           `json:"quiz_id"`
	UserID      string           `json:"user_id"`
	Answers     []AnswerResponse `json:"answers"`
	Score       string           `json:"score"`
	SubmittedAt time.Time        `json:"submitted_at"`
}

// CreateQuizResponse — конверт ответа на создание викторины
type CreateQuizResponse struct {
	Response
	Quiz *QuizResponse `json:"quiz,omitempty"`
}

// GetQuizResponse — конверт ответа на получение викторины
type GetQuizResponse struct {
	Response
	Quiz *QuizResponse `json:"quiz,omitempty"`
}

// DeleteQuizResponse — конверт ответа на удаление викторины
type DeleteQuizResponse struct {
	Response
	Quiz           *QuizResponse `json:"quiz,omitempty"`
	DeletedResults int           `json:"deleted_results"`
}

// SubmitAnswerResponse — конверт ответа на отправку ответа
type SubmitAnswerResponse struct {
	Response
	Answer *AnswerResponse `json:"answer,omitempty"`
}

// GetResultsResponse — конверт ответа на получение результатов
type GetResultsResponse struct {
	Response
	Result *ResultResponse `json:"result,omitempty"`
}

// NewQuestionResponse создает DTO для вопроса.
// При includeCorrect=false правильный вариант вырезается из ответа.
func NewQuestionResponse(q *entity.Question, includeCorrect bool) QuestionResponse {
	options := make([]string, len(q.Options))
	copy(options, q.Options)

	resp := QuestionResponse{
		ID:      q.ID,
		Text:    q.Text,
		Options: options,
	}
	if includeCorrect {
		correct := q.CorrectOption
		resp.CorrectOption = &correct
	}
	return resp
}

// NewQuizResponse создает DTO для викторины.
// includeCorrect=true — представление для создателя (с правильными
// ответами), false — представление для прохождения.
func NewQuizResponse(quiz *entity.Quiz, includeCorrect bool) *QuizResponse {
	if quiz == nil {
		return nil
	}

	questions := make([]QuestionResponse, len(quiz.Questions))
	for i := range quiz.Questions {
		questions[i] = NewQuestionResponse(&quiz.Questions[i], includeCorrect)
	}

	return &QuizResponse{
		ID:        quiz.ID,
		Title:     quiz.Title,
		Questions: questions,
		CreatedAt: quiz.CreatedAt,
	}
}

// NewAnswerResponse создает DTO для ответа пользователя
func NewAnswerResponse(answer *entity.Answer) *AnswerResponse {
	if answer == nil {
		return nil
	}
	return &AnswerResponse{
		QuestionID:     answer.QuestionID,
		SelectedOption: answer.SelectedOption,
		CorrectAnswer:  answer.CorrectAnswer,
		IsCorrect:      answer.IsCorrect,
	}
}

// NewResultResponse создает DTO для результата
func NewResultResponse(result *entity.Result) *ResultResponse {
	if result == nil {
		return nil
	}

	answers := make([]AnswerResponse, len(result.Answers))
	for i := range result.Answers {
		answers[i] = *NewAnswerResponse(&result.Answers[i])
	}

	return &ResultResponse{
		QuizID:      result.QuizID,
		UserID:      result.UserID,
		Answers:     answers,
		Score:       result.Score,
		SubmittedAt: result.SubmittedAt,
	}
}

// NewSuccess создает успешный конверт ответа
func NewSuccess(message string) Response {
	return Response{Success: true, Message: message}
}

// NewFailure создает конверт неуспешного ответа
func NewFailure(message string, err error) Response {
	resp := Response{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
