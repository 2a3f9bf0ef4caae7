package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"arba/internal/models"
)

type CreateCommentRequest struct {
	PostID string `json:"post_id" validate:"required,uuid"`
	Text   string `json:"text" validate:"required"`
}

type EditCommentRequest struct {
	CommentID string `json:"comment_id" validate:"required,uuid"`
	Text      string `json:"text" validate:"required"`
}

type CommentResponse struct {
	CommentID   string    `json:"comment_id"`
	PostID      string    `json:"post_id"`
	AuthorEmail string    `json:"author_email"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}

func commentResponse(comment *models.Comment) CommentResponse {
	return CommentResponse{
		CommentID:   comment.CommentID,
		PostID:      comment.PostID,
		AuthorEmail: comment.AuthorEmail,
		Text:        comment.Text,
		CreatedAt:   comment.CreatedAt,
	}
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	callerEmail, ok := r.Context().Value("userEmail").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.CreateComment(r.Context(), req.PostID, req.Text, callerEmail)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, commentResponse(comment), http.StatusCreated)
}

// GetComments отдает пустой список, а не 404, когда комментариев нет
func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postID := r.URL.Query().Get("post_id")
	if postID == "" {
		WriteError(w, "Параметр post_id обязателен", http.StatusBadRequest)
		return
	}

	comments, err := h.CommentService.GetComments(r.Context(), postID)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	response := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		response = append(response, commentResponse(&comments[i]))
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) EditComment(w http.ResponseWriter, r *http.Request) {
	callerEmail, ok := r.Context().Value("userEmail").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req EditCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.EditComment(r.Context(), req.CommentID, callerEmail, req.Text)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, commentResponse(comment), http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	callerEmail, ok := r.Context().Value("userEmail").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	commentID := mux.Vars(r)["comment_id"]

	if err := h.CommentService.DeleteComment(r.Context(), commentID, callerEmail); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"detail": "Comment deleted successfully"}, http.StatusOK)
}
