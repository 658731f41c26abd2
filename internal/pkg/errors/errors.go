package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись, страница или ресурс не найдены.
	ErrNotFound = errors.New("resource not found")

	// ErrBadRequest используется для некорректных входных данных
	// (пустое тело запроса, отсутствие обязательных полей).
	ErrBadRequest = errors.New("bad request")

	// ErrUnprocessable используется как catch-all для ошибок персистентности
	// во время мутирующих операций.
	ErrUnprocessable = errors.New("unprocessable")
)
