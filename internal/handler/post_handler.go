package handlers

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"arba/internal/models"
)

type PostResponse struct {
	PostID     string `json:"post_id"`
	Caption    string `json:"caption"`
	Image      string `json:"image,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
	OwnerEmail string `json:"owner_email"`
}

// в хранилище изображение лежит сырыми байтами, наружу уходит base64
func (h *Handlers) postResponse(r *http.Request, post *models.Post) PostResponse {
	response := PostResponse{
		PostID:     post.PostID,
		Caption:    post.Caption,
		OwnerEmail: post.OwnerEmail,
	}

	if post.Image != nil {
		response.Image = base64.StdEncoding.EncodeToString(post.Image)
		response.ImageURL = h.PostService.ImageURL(r.Context(), post)
	}

	return response
}

// readImageFile читает необязательный файл из multipart формы,
// nil - файл не передан
func (h *Handlers) readImageFile(r *http.Request) ([]byte, error) {
	file, _, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	callerEmail, ok := r.Context().Value("userEmail").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	caption := r.FormValue("caption")
	if caption == "" {
		WriteError(w, "Подпись обязательна", http.StatusBadRequest)
		return
	}

	image, err := h.readImageFile(r)
	if err != nil {
		WriteError(w, "Ошибка чтения изображения", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), caption, image, callerEmail)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, h.postResponse(r, post), http.StatusCreated)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.GetPosts(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	response := make([]PostResponse, 0, len(posts))
	for i := range posts {
		response = append(response, h.postResponse(r, &posts[i]))
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) EditPost(w http.ResponseWriter, r *http.Request) {
	callerEmail, ok := r.Context().Value("userEmail").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["post_id"]

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// непереданные поля остаются без изменений
	var caption *string
	if value := r.FormValue("caption"); value != "" {
		caption = &value
	}

	image, err := h.readImageFile(r)
	if err != nil {
		WriteError(w, "Ошибка чтения изображения", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.EditPost(r.Context(), postID, callerEmail, caption, image)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, h.postResponse(r, post), http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	callerEmail, ok := r.Context().Value("userEmail").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["post_id"]

	if err := h.PostService.DeletePost(r.Context(), postID, callerEmail); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"detail": "Post deleted successfully"}, http.StatusOK)
}
