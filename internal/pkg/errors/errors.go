package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда викторина, вопрос или результаты не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")
)
