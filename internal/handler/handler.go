package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"arba/internal/config"
	"arba/internal/database"
	"arba/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	UserService    service.UserService
	PostService    service.PostService
	CommentService service.CommentService
	DB             *database.DB
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(service *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    service.Auth,
		UserService:    service.User,
		PostService:    service.Post,
		CommentService: service.Comment,
		DB:             db,
		Cfg:            config,
		Validate:       validator.New(),
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"Hello": "World"}, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if h.DB != nil {
		if err := h.DB.HealthCheck(); err != nil {
			WriteError(w, "БД недоступна", http.StatusServiceUnavailable)
			return
		}
	}

	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
