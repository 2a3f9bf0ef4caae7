package service

import (
	"arba/internal/config"
	"arba/internal/repository"
	"arba/internal/storage"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Post    PostService
	Comment CommentService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, cfg),
		User:    NewUserService(rep.User),
		Post:    NewPostService(rep.Post, rep.User, storage),
		Comment: NewCommentService(rep.Comment, rep.Post, rep.User),
	}
}
