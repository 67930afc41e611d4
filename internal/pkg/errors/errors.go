package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок авторизации (неверный токен, нет прав).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden используется, когда у пользователя недостаточно прав для действия.
	// Зарезервирована для внешнего слоя авторизации (например, запрет на пересдачу);
	// сам движок проверки ответов попытки не блокирует.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation используется для ошибок валидации входных данных.
	// Конкретный нарушающий ID передается в обертке через fmt.Errorf("%w").
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для конфликтов состояния.
	ErrConflict = errors.New("resource state conflict")
)
