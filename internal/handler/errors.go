package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"arba/internal/models"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteDomainError переводит ожидаемые исходы в статусы, всё остальное
// прячется за 500 без деталей
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrAlreadyExists):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidCredentials):
		WriteError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, models.ErrInvalidToken), errors.Is(err, models.ErrTokenExpired):
		WriteError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, models.ErrForbidden):
		WriteError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrPostNotFound),
		errors.Is(err, models.ErrCommentNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	default:
		log.Printf("Внутренняя ошибка: %v", err)
		WriteError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
