package models

import (
	"time"
)

type User struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type Post struct {
	PostID     string `json:"postId" db:"post_id"`
	Caption    string `json:"caption" db:"caption"`
	Image      []byte `json:"image,omitempty" db:"image"`
	OwnerEmail string `json:"ownerEmail" db:"owner_email"`
}

type Comment struct {
	CommentID   string    `json:"commentId" db:"comment_id"`
	Text        string    `json:"text" db:"text"`
	PostID      string    `json:"postId" db:"post_id"`
	AuthorEmail string    `json:"authorEmail" db:"author_email"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Claims - проверенные данные из подписанного токена
type Claims struct {
	Email string
	Name  string
}
