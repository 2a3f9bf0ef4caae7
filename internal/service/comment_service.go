package service

import (
	"context"

	"arba/internal/models"
	"arba/internal/repository"
)

type CommentService interface {
	CreateComment(ctx context.Context, postID, text, authorEmail string) (*models.Comment, error)
	GetComments(ctx context.Context, postID string) ([]models.Comment, error)
	EditComment(ctx context.Context, commentID, callerEmail, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID, callerEmail string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// CreateComment требует существующего поста, комментировать может любой
// аутентифицированный пользователь
func (s *commentService) CreateComment(ctx context.Context, postID, text, authorEmail string) (*models.Comment, error) {
	if _, err := s.userRepo.GetUserByEmail(ctx, authorEmail); err != nil {
		return nil, err
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:        text,
		PostID:      postID,
		AuthorEmail: authorEmail,
	}

	err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

// GetComments не проверяет существование поста, пустой список - валидный
// результат
func (s *commentService) GetComments(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.commentRepo.GetByPostID(ctx, postID)
}

func (s *commentService) EditComment(ctx context.Context, commentID, callerEmail, text string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if comment.AuthorEmail != callerEmail {
		return nil, models.ErrForbidden
	}

	err = s.commentRepo.UpdateText(ctx, commentID, text)
	if err != nil {
		return nil, err
	}

	comment.Text = text
	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, callerEmail string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.AuthorEmail != callerEmail {
		return models.ErrForbidden
	}

	return s.commentRepo.Delete(ctx, commentID)
}
