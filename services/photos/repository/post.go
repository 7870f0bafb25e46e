package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sployal/fine-back-sub000/internal/pkg/apperr"
	"github.com/sployal/fine-back-sub000/internal/pkg/models"
)

// PhotoRepo implements the photos.PhotoRepo interface over Supabase Postgres
type PhotoRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPhotoRepository creates a new photo repository
func NewPhotoRepository(cfg *models.Config, db *sqlx.DB) *PhotoRepo {
	return &PhotoRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreatePost inserts a post and its image rows in one database transaction
func (r *PhotoRepo) CreatePost(ctx context.Context, post *models.Post) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperr.Wrap(apperr.KindDependency, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	postQuery := `
		INSERT INTO posts (id, sender_id, recipient_id, caption, tags, created_at, updated_at)
		VALUES (:id, :sender_id, :recipient_id, :caption, :tags, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, postQuery, post); err != nil {
		return apperr.Wrap(apperr.KindDependency, "failed to insert post", err)
	}

	imageQuery := `
		INSERT INTO images (id, post_id, public_id, url, payment_status, created_at)
		VALUES (:id, :post_id, :public_id, :url, :payment_status, :created_at)
	`
	for _, image := range post.Images {
		if _, err := tx.NamedExecContext(ctx, imageQuery, image); err != nil {
			return apperr.Wrap(apperr.KindDependency, "failed to insert image", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperr.Wrap(apperr.KindDependency, "failed to commit post", err)
	}
	return nil
}

// GetPostByID fetches a post with its images
func (r *PhotoRepo) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	query := `
		SELECT id, sender_id, recipient_id, caption, tags, created_at, updated_at
		FROM posts WHERE id = $1
	`
	var post models.Post
	if err := r.db.GetContext(ctx, &post, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Newf(apperr.KindNotFound, "post %s not found", id)
		}
		return nil, apperr.Wrap(apperr.KindDependency, "failed to fetch post", err)
	}

	images, err := r.GetImagesByPostID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Images = images

	return &post, nil
}

// ListPostsByRecipient returns posts addressed to a user, newest first
func (r *PhotoRepo) ListPostsByRecipient(ctx context.Context, filter models.PostFilter) ([]*models.Post, error) {
	query := `
		SELECT id, sender_id, recipient_id, caption, tags, created_at, updated_at
		FROM posts WHERE recipient_id = $1
	`
	args := []interface{}{filter.UserID}

	if filter.Tag != "" {
		query += fmt.Sprintf(` AND $%d = ANY(tags)`, len(args)+1)
		args = append(args, filter.Tag)
	}

	query += ` ORDER BY created_at DESC`

	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, len(args)+1)
		args = append(args, filter.Offset)
	}

	posts := []*models.Post{}
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, apperr.Wrap(apperr.KindDependency, "failed to list posts", err)
	}

	for _, post := range posts {
		images, err := r.GetImagesByPostID(ctx, post.ID)
		if err != nil {
			return nil, err
		}
		post.Images = images
	}

	return posts, nil
}

// GetImagesByPostID fetches the images belonging to a post
func (r *PhotoRepo) GetImagesByPostID(ctx context.Context, postID string) ([]*models.Image, error) {
	query := `
		SELECT id, post_id, public_id, url, payment_status, created_at
		FROM images WHERE post_id = $1 ORDER BY created_at
	`
	images := []*models.Image{}
	if err := r.db.SelectContext(ctx, &images, query, postID); err != nil {
		return nil, apperr.Wrap(apperr.KindDependency, "failed to fetch post images", err)
	}
	return images, nil
}

// DeletePost removes a post; the images cascade via the foreign key
func (r *PhotoRepo) DeletePost(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id); err != nil {
		return apperr.Wrap(apperr.KindDependency, "failed to delete post", err)
	}
	return nil
}
