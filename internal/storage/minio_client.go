package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"arba/internal/config"
)

// Storage зеркалирует изображения постов для отдачи по временным ссылкам.
// Источник истины - БД, ошибки зеркалирования не прерывают запрос
type Storage interface {
	UploadPostImage(ctx context.Context, postID string, data []byte) (string, error)
	DeletePostImage(ctx context.Context, postID string) error
	GetPostImageURL(ctx context.Context, postID string) (string, error)
}

type MinIOClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания клиента MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки бакета: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания бакета: %w", err)
		}
	}

	return &MinIOClient{client: client, cfg: cfg}, nil
}

// объект именуется по посту, повторная загрузка перезаписывает старую копию
func (m *MinIOClient) objectName(postID string) string {
	return fmt.Sprintf("posts/%s", postID)
}

func (m *MinIOClient) UploadPostImage(ctx context.Context, postID string, data []byte) (string, error) {
	objectName := m.objectName(postID)

	contentType := http.DetectContentType(data)

	_, err := m.client.PutObject(ctx, m.cfg.MinIO.BucketName, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"post-id":     postID,
				"uploaded-at": time.Now().Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	return objectName, nil
}

func (m *MinIOClient) DeletePostImage(ctx context.Context, postID string) error {
	err := m.client.RemoveObject(ctx, m.cfg.MinIO.BucketName, m.objectName(postID),
		minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}

func (m *MinIOClient) GetPostImageURL(ctx context.Context, postID string) (string, error) {
	presignedURL, err := m.client.PresignedGetObject(ctx, m.cfg.MinIO.BucketName,
		m.objectName(postID), m.cfg.MinIO.URLExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("ошибка генерации ссылки: %w", err)
	}

	return presignedURL.String(), nil
}
