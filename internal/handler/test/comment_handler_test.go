package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	handlers "arba/internal/handler"
	"arba/internal/models"
)

func commentRouter(handler *handlers.Handlers) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/comments", handler.CreateComment).Methods(http.MethodPost)
	router.HandleFunc("/comments", handler.GetComments).Methods(http.MethodGet)
	router.HandleFunc("/comments", handler.EditComment).Methods(http.MethodPut)
	router.HandleFunc("/comments/{comment_id}", handler.DeleteComment).Methods(http.MethodDelete)
	return router
}

func TestCreateCommentHandler(t *testing.T) {
	postID := "11111111-1111-1111-1111-111111111111"
	author := "bob@example.com"

	t.Run("Успешное создание", func(t *testing.T) {
		mockComment := new(MockCommentService)
		mockComment.On("CreateComment", mock.Anything, postID, "отличный пост", author).
			Return(&models.Comment{
				CommentID:   "33333333-3333-3333-3333-333333333333",
				PostID:      postID,
				Text:        "отличный пост",
				AuthorEmail: author,
				CreatedAt:   time.Now().UTC(),
			}, nil)

		handler := newTestHandlers(nil, nil, nil, mockComment)

		bodyBytes, _ := json.Marshal(map[string]string{"post_id": postID, "text": "отличный пост"})
		req := httptest.NewRequest(http.MethodPost, "/comments", bytes.NewReader(bodyBytes))
		req = withCaller(req, author, "Боб")
		rec := httptest.NewRecorder()

		commentRouter(handler).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var response handlers.CommentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, postID, response.PostID)
		assert.Equal(t, author, response.AuthorEmail)
		assert.False(t, response.CreatedAt.IsZero())
	})

	t.Run("Несуществующий пост - 404", func(t *testing.T) {
		mockComment := new(MockCommentService)
		mockComment.On("CreateComment", mock.Anything, postID, "привет", author).
			Return(nil, models.ErrPostNotFound)

		handler := newTestHandlers(nil, nil, nil, mockComment)

		bodyBytes, _ := json.Marshal(map[string]string{"post_id": postID, "text": "привет"})
		req := httptest.NewRequest(http.MethodPost, "/comments", bytes.NewReader(bodyBytes))
		req = withCaller(req, author, "Боб")
		rec := httptest.NewRecorder()

		commentRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Пустой текст - 400", func(t *testing.T) {
		handler := newTestHandlers(nil, nil, nil, new(MockCommentService))

		bodyBytes, _ := json.Marshal(map[string]string{"post_id": postID, "text": ""})
		req := httptest.NewRequest(http.MethodPost, "/comments", bytes.NewReader(bodyBytes))
		req = withCaller(req, author, "Боб")
		rec := httptest.NewRecorder()

		commentRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetCommentsHandler(t *testing.T) {
	postID := "11111111-1111-1111-1111-111111111111"

	t.Run("Пост без комментариев - пустой массив, не 404", func(t *testing.T) {
		mockComment := new(MockCommentService)
		mockComment.On("GetComments", mock.Anything, postID).
			Return([]models.Comment{}, nil)

		handler := newTestHandlers(nil, nil, nil, mockComment)

		req := httptest.NewRequest(http.MethodGet, "/comments?post_id="+postID, nil)
		req = withCaller(req, "bob@example.com", "Боб")
		rec := httptest.NewRecorder()

		commentRouter(handler).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("Без post_id - 400", func(t *testing.T) {
		handler := newTestHandlers(nil, nil, nil, new(MockCommentService))

		req := httptest.NewRequest(http.MethodGet, "/comments", nil)
		req = withCaller(req, "bob@example.com", "Боб")
		rec := httptest.NewRecorder()

		commentRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEditCommentHandler(t *testing.T) {
	commentID := "33333333-3333-3333-3333-333333333333"

	t.Run("Чужой комментарий - 403", func(t *testing.T) {
		mockComment := new(MockCommentService)
		mockComment.On("EditComment", mock.Anything, commentID, "mallory@example.com", "взломано").
			Return(nil, models.ErrForbidden)

		handler := newTestHandlers(nil, nil, nil, mockComment)

		bodyBytes, _ := json.Marshal(map[string]string{"comment_id": commentID, "text": "взломано"})
		req := httptest.NewRequest(http.MethodPut, "/comments", bytes.NewReader(bodyBytes))
		req = withCaller(req, "mallory@example.com", "Мэллори")
		rec := httptest.NewRecorder()

		commentRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Автор правит свой комментарий", func(t *testing.T) {
		mockComment := new(MockCommentService)
		mockComment.On("EditComment", mock.Anything, commentID, "bob@example.com", "исправлено").
			Return(&models.Comment{
				CommentID:   commentID,
				PostID:      "11111111-1111-1111-1111-111111111111",
				Text:        "исправлено",
				AuthorEmail: "bob@example.com",
				CreatedAt:   time.Now().UTC(),
			}, nil)

		handler := newTestHandlers(nil, nil, nil, mockComment)

		bodyBytes, _ := json.Marshal(map[string]string{"comment_id": commentID, "text": "исправлено"})
		req := httptest.NewRequest(http.MethodPut, "/comments", bytes.NewReader(bodyBytes))
		req = withCaller(req, "bob@example.com", "Боб")
		rec := httptest.NewRecorder()

		commentRouter(handler).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var response handlers.CommentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "исправлено", response.Text)
	})
}

func TestDeleteCommentHandler(t *testing.T) {
	commentID := "33333333-3333-3333-3333-333333333333"

	t.Run("Автор удаляет комментарий", func(t *testing.T) {
		mockComment := new(MockCommentService)
		mockComment.On("DeleteComment", mock.Anything, commentID, "bob@example.com").Return(nil)

		handler := newTestHandlers(nil, nil, nil, mockComment)

		req := httptest.NewRequest(http.MethodDelete, "/comments/"+commentID, nil)
		req = withCaller(req, "bob@example.com", "Боб")
		rec := httptest.NewRecorder()

		commentRouter(handler).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Comment deleted successfully")
	})

	t.Run("Несуществующий комментарий - 404", func(t *testing.T) {
		mockComment := new(MockCommentService)
		mockComment.On("DeleteComment", mock.Anything, commentID, "bob@example.com").
			Return(models.ErrCommentNotFound)

		handler := newTestHandlers(nil, nil, nil, mockComment)

		req := httptest.NewRequest(http.MethodDelete, "/comments/"+commentID, nil)
		req = withCaller(req, "bob@example.com", "Боб")
		rec := httptest.NewRecorder()

		commentRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
