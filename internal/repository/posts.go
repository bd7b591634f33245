package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Okelahbegitu/fesnuk-api/internal/models"
)

// PostRepository gives access to the posts table. Every lookup, update and
// delete filters by both the post id and the owning account id, so a post
// owned by someone else behaves exactly like a missing one.
type PostRepository interface {
	CreatePost(ctx context.Context, accountID int64, title, body string) (*models.Post, error)
	GetPostsByAccount(ctx context.Context, accountID int64) ([]models.Post, error)
	GetPostByID(ctx context.Context, postID, accountID int64) (*models.Post, error)
	UpdatePost(ctx context.Context, postID, accountID int64, title, body string) error
	DeletePost(ctx context.Context, postID, accountID int64) error
}

type postRepository struct {
	db     *Database
	logger *zap.Logger
}

func NewPostRepository(db *Database, logger *zap.Logger) PostRepository {
	return &postRepository{db: db, logger: logger}
}

func (r *postRepository) CreatePost(ctx context.Context, accountID int64, title, body string) (*models.Post, error) {
	post := &models.Post{AccountID: accountID, Title: title, Body: body}
	query := `INSERT INTO posts (account_id, title, body) VALUES ($1, $2, $3) RETURNING id`
	if err := sqlx.GetContext(ctx, r.db.ext, &post.ID, query, accountID, title, body); err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}
	return post, nil
}

func (r *postRepository) GetPostsByAccount(ctx context.Context, accountID int64) ([]models.Post, error) {
	posts := make([]models.Post, 0)
	query := `SELECT id, account_id, title, body FROM posts WHERE account_id = $1 ORDER BY id`
	if err := sqlx.SelectContext(ctx, r.db.ext, &posts, query, accountID); err != nil {
		return nil, fmt.Errorf("failed to select posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) GetPostByID(ctx context.Context, postID, accountID int64) (*models.Post, error) {
	var post models.Post
	query := `SELECT id, account_id, title, body FROM posts WHERE id = $1 AND account_id = $2`
	if err := sqlx.GetContext(ctx, r.db.ext, &post, query, postID, accountID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to select post: %w", err)
	}
	return &post, nil
}

func (r *postRepository) UpdatePost(ctx context.Context, postID, accountID int64, title, body string) error {
	query := `UPDATE posts SET title = $1, body = $2 WHERE id = $3 AND account_id = $4`
	result, err := r.db.ext.ExecContext(ctx, query, title, body, postID, accountID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *postRepository) DeletePost(ctx context.Context, postID, accountID int64) error {
	query := `DELETE FROM posts WHERE id = $1 AND account_id = $2`
	result, err := r.db.ext.ExecContext(ctx, query, postID, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}
	return nil
}
