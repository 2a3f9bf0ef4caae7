package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"arba/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, name, email, password string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, postID, ownerEmail string, caption *string, image []byte) error
	Delete(ctx context.Context, postID string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)
	GetByPostID(ctx context.Context, postID string) ([]models.Comment, error)
	UpdateText(ctx context.Context, commentID, text string) error
	Delete(ctx context.Context, commentID string) error
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
	}
}
