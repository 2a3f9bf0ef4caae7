package models

import "errors"

// Ожидаемые исходы операций. Обработчики переводят их в HTTP статусы
// через errors.Is, всё остальное считается внутренней ошибкой.
var (
	ErrAlreadyExists      = errors.New("пользователь с таким email уже существует")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrUserNotFound       = errors.New("пользователь не найден")
	ErrPostNotFound       = errors.New("пост не найден")
	ErrCommentNotFound    = errors.New("комментарий не найден")
	ErrForbidden          = errors.New("нет прав на это действие")
	ErrInvalidToken       = errors.New("недействительный токен")
	ErrTokenExpired       = errors.New("токен истек")
)
