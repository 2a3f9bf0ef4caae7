package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"arba/cmd/app"
	"arba/internal/config"
	handlers "arba/internal/handler"
	"arba/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/users/signup", handler.SignUp).Methods(http.MethodPost)
	router.HandleFunc("/users/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/users", handler.GetUsers).Methods(http.MethodGet)

	router.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	router.HandleFunc("/posts/{post_id}", handler.EditPost).Methods(http.MethodPut)
	router.HandleFunc("/posts/{post_id}", handler.DeletePost).Methods(http.MethodDelete)

	router.HandleFunc("/comments", handler.CreateComment).Methods(http.MethodPost)
	router.HandleFunc("/comments", handler.GetComments).Methods(http.MethodGet)
	router.HandleFunc("/comments", handler.EditComment).Methods(http.MethodPut)
	router.HandleFunc("/comments/{comment_id}", handler.DeleteComment).Methods(http.MethodDelete)

	// аутентификация ближе всего к обработчикам, preflight до нее не доходит
	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(services.Auth),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
