package service

import (
	"context"
	"log"

	"arba/internal/models"
	"arba/internal/repository"
	"arba/internal/storage"
)

type PostService interface {
	CreatePost(ctx context.Context, caption string, image []byte, ownerEmail string) (*models.Post, error)
	GetPosts(ctx context.Context) ([]models.Post, error)
	EditPost(ctx context.Context, postID, callerEmail string, caption *string, image []byte) (*models.Post, error)
	DeletePost(ctx context.Context, postID, callerEmail string) error
	ImageURL(ctx context.Context, post *models.Post) string
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	storage  storage.Storage
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, storage storage.Storage) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		storage:  storage,
	}
}

func (p *postService) CreatePost(ctx context.Context, caption string, image []byte, ownerEmail string) (*models.Post, error) {
	// владелец должен существовать
	if _, err := p.userRepo.GetUserByEmail(ctx, ownerEmail); err != nil {
		return nil, err
	}

	post := &models.Post{
		Caption:    caption,
		Image:      image,
		OwnerEmail: ownerEmail,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	p.mirrorImage(ctx, post)

	return post, nil
}

func (p *postService) GetPosts(ctx context.Context) ([]models.Post, error) {
	return p.postRepo.GetAll(ctx)
}

// EditPost сначала проверяет существование, затем владельца и только
// потом меняет пост. Непереданные поля остаются как были
func (p *postService) EditPost(ctx context.Context, postID, callerEmail string, caption *string, image []byte) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.OwnerEmail != callerEmail {
		return nil, models.ErrForbidden
	}

	err = p.postRepo.Update(ctx, postID, callerEmail, caption, image)
	if err != nil {
		return nil, err
	}

	updated, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if image != nil {
		p.mirrorImage(ctx, updated)
	}

	return updated, nil
}

func (p *postService) DeletePost(ctx context.Context, postID, callerEmail string) error {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.OwnerEmail != callerEmail {
		return models.ErrForbidden
	}

	err = p.postRepo.Delete(ctx, postID)
	if err != nil {
		return err
	}

	if p.storage != nil && post.Image != nil {
		if err := p.storage.DeletePostImage(ctx, postID); err != nil {
			log.Printf("Предупреждение: не удалось удалить копию изображения из MinIO: %v", err)
		}
	}

	return nil
}

// ImageURL возвращает временную ссылку на копию изображения в MinIO,
// пустую строку если зеркалирование выключено или изображения нет
func (p *postService) ImageURL(ctx context.Context, post *models.Post) string {
	if p.storage == nil || post.Image == nil {
		return ""
	}

	url, err := p.storage.GetPostImageURL(ctx, post.PostID)
	if err != nil {
		log.Printf("Предупреждение: не удалось получить ссылку на изображение: %v", err)
		return ""
	}

	return url
}

// зеркалирование не влияет на исход запроса, источником истины остается БД
func (p *postService) mirrorImage(ctx context.Context, post *models.Post) {
	if p.storage == nil || post.Image == nil {
		return
	}

	if _, err := p.storage.UploadPostImage(ctx, post.PostID, post.Image); err != nil {
		log.Printf("Предупреждение: не удалось зеркалировать изображение в MinIO: %v", err)
	}
}
