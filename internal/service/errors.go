package service

import "errors"

// Доменные ошибки, возвращаемые сервисами. Обработчики переводят их
// в HTTP-статусы, не раскрывая внутренних деталей.
var (
	// ErrUsernameTaken - имя пользователя уже зарегистрировано.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUserNotFound - пользователь не найден (не должно происходить после аутентификации).
	ErrUserNotFound = errors.New("user not found")
	// ErrNotFound - запрошенная запись отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyCancelled - бронирование уже отменено; отмена терминальна,
	// дальнейшая смена статуса запрещена даже администратору.
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	// ErrBookingNotCancellable - единый ответ на неудачную отмену клиентом:
	// запись отсутствует, принадлежит другому пользователю или уже обработана.
	// Причины намеренно неразличимы для вызывающей стороны.
	ErrBookingNotCancellable = errors.New("booking not found or already processed")
)
