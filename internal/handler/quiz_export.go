package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/quiz-api/internal/domain/entity"
)

// ExportResults экспортирует результат пользователя в CSV или Excel формате
// GET /api/quizzes/:id/results/:userID/export?format=csv|xlsx
func (h *QuizHandler) ExportResults(c *gin.Context) {
	quizID := c.MustGet("quizID").(string)
	userID := c.Param("userID")
	format := c.DefaultQuery("format", "csv")

	result, err := h.quizService.GetResults(quizID, userID)
	if err != nil {
		h.handleQuizError(c, "Failed to export results", err)
		return
	}

	// Викторина нужна для текстов вопросов и вариантов
	quiz, err := h.quizService.GetQuiz(quizID)
	if err != nil {
		h.handleQuizError(c, "Failed to export results", err)
		return
	}

	filename := fmt.Sprintf("quiz_%s_results_%s", quizID, time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, quiz, result, filename)
	default:
		h.exportCSV(c, quiz, result, filename)
	}
}

// exportRow — одна строка экспорта: ответ пользователя на вопрос
type exportRow struct {
	Question  string
	Selected  string
	Correct   string
	IsCorrect string
}

// buildExportRows собирает строки экспорта по ответам результата
func buildExportRows(quiz *entity.Quiz, result *entity.Result) []exportRow {
	rows := make([]exportRow, 0, len(result.Answers))
	for _, a := range result.Answers {
		questionText := a.QuestionID
		selectedText := strconv.Itoa(a.SelectedOption)
		correctText := strconv.Itoa(a.CorrectAnswer)

		if question, ok := quiz.QuestionByID(a.QuestionID); ok {
			questionText = question.Text
			// Вариант вне диапазона остается числом: текста для него нет
			if text := question.OptionText(a.SelectedOption); text != "" {
				selectedText = text
			}
			if text := question.OptionText(a.CorrectAnswer); text != "" {
				correctText = text
			}
		}

		isCorrect := "No"
		if a.IsCorrect {
			isCorrect = "Yes"
		}

		rows = append(rows, exportRow{
			Question:  sanitizeForExcel(questionText),
			Selected:  sanitizeForExcel(selectedText),
			Correct:   sanitizeForExcel(correctText),
			IsCorrect: isCorrect,
		})
	}
	return rows
}

// exportCSV экспортирует результат в CSV с правильным экранированием спецсимволов
func (h *QuizHandler) exportCSV(c *gin.Context, quiz *entity.Quiz, result *entity.Result, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	// Используем encoding/csv для правильного экранирования запятых/кавычек
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// Сводка
	writer.Write([]string{"Quiz", sanitizeForExcel(quiz.Title)})
	writer.Write([]string{"User", sanitizeForExcel(result.UserID)})
	writer.Write([]string{"Score", result.Score})
	writer.Write([]string{"Submitted at", result.SubmittedAt.Format(time.RFC3339)})
	writer.Write([]string{})

	// Заголовки
	writer.Write([]string{"Question", "Selected answer", "Correct answer", "Correct"})

	// Данные
	for _, row := range buildExportRows(quiz, result) {
		writer.Write([]string{row.Question, row.Selected, row.Correct, row.IsCorrect})
	}
}

// exportXLSX экспортирует результат в Excel с использованием StreamWriter
func (h *QuizHandler) exportXLSX(c *gin.Context, quiz *entity.Quiz, result *entity.Result, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Results"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuizHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	// Сводка и заголовки
	summary := [][]interface{}{
		{"Quiz", sanitizeForExcel(quiz.Title)},
		{"User", sanitizeForExcel(result.UserID)},
		{"Score", result.Score},
		{"Submitted at", result.SubmittedAt.Format(time.RFC3339)},
		{},
		{"Question", "Selected answer", "Correct answer", "Correct"},
	}
	for i, rowValues := range summary {
		cell := fmt.Sprintf("A%d", i+1)
		if err := sw.SetRow(cell, rowValues); err != nil {
			log.Printf("[QuizHandler] Ошибка записи строки %d: %v", i+1, err)
		}
	}

	// Данные
	for i, row := range buildExportRows(quiz, result) {
		rowNum := len(summary) + i + 1
		cell := fmt.Sprintf("A%d", rowNum)
		values := []interface{}{row.Question, row.Selected, row.Correct, row.IsCorrect}
		if err := sw.SetRow(cell, values); err != nil {
			log.Printf("[QuizHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuizHandler] Ошибка при Flush: %v", err)
	}

	// Записываем в response
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuizHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
