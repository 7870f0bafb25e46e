package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sployal/fine-back-sub000/internal/pkg/apperr"
	"github.com/sployal/fine-back-sub000/internal/pkg/logger"
	"github.com/sployal/fine-back-sub000/internal/pkg/models"
	"github.com/sployal/fine-back-sub000/services/photos"
)

// PhotoUC implements the photos.PhotoUC interface
type PhotoUC struct {
	cfg    *models.Config
	repo   photos.PhotoRepo
	media  photos.MediaGW
	logger *logger.ZapLogger
}

// NewPhotoUC creates a new photo use case
func NewPhotoUC(cfg *models.Config, repo photos.PhotoRepo, media photos.MediaGW, zapLogger *logger.ZapLogger) *PhotoUC {
	return &PhotoUC{
		cfg:    cfg,
		repo:   repo,
		media:  media,
		logger: zapLogger,
	}
}

// CreatePost records a photo collection sent to a recipient. Images marked
// paid-on-send are immediately visible; the rest stay unpaid until a
// completed payment unlocks them.
func (uc *PhotoUC) CreatePost(ctx context.Context, senderID string, req *models.CreatePostRequest) (*models.Post, error) {
	if req.RecipientID == "" {
		return nil, apperr.New(apperr.KindValidation, "recipient_id is required")
	}
	if len(req.Images) == 0 {
		return nil, apperr.New(apperr.KindValidation, "images must not be empty")
	}

	now := time.Now()
	post := &models.Post{
		ID:          uuid.New().String(),
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Caption:     req.Caption,
		Tags:        req.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, img := range req.Images {
		if img.PublicID == "" || img.URL == "" {
			return nil, apperr.New(apperr.KindValidation, "each image requires public_id and url")
		}
		status := models.ImageStatusUnpaid
		if img.Paid {
			status = models.ImageStatusPaid
		}
		post.Images = append(post.Images, &models.Image{
			ID:            uuid.New().String(),
			PostID:        post.ID,
			PublicID:      img.PublicID,
			URL:           img.URL,
			PaymentStatus: status,
			CreatedAt:     now,
		})
	}

	if err := uc.repo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// GetPost fetches a post. Senders see everything; recipients see only the
// images they have paid for; anyone else is rejected.
func (uc *PhotoUC) GetPost(ctx context.Context, requesterID, postID string) (*models.Post, error) {
	post, err := uc.repo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	switch requesterID {
	case post.SenderID:
		return post, nil
	case post.RecipientID:
		post.Images = paidOnly(post.Images)
		return post, nil
	default:
		return nil, apperr.New(apperr.KindAuthorization, "not allowed to view this post")
	}
}

// ListReceivedPosts returns the posts addressed to a user with unpaid
// images filtered out
func (uc *PhotoUC) ListReceivedPosts(ctx context.Context, userID string, filter models.PostFilter) ([]*models.Post, error) {
	filter.UserID = userID
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	posts, err := uc.repo.ListPostsByRecipient(ctx, filter)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		post.Images = paidOnly(post.Images)
	}
	return posts, nil
}

// DeletePost removes a post and its CDN assets. Only the sender may delete;
// asset cleanup is best-effort after the database row is gone.
func (uc *PhotoUC) DeletePost(ctx context.Context, requesterID, postID string) error {
	post, err := uc.repo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.SenderID != requesterID {
		return apperr.New(apperr.KindAuthorization, "only the sender can delete a post")
	}

	if err := uc.repo.DeletePost(ctx, postID); err != nil {
		return err
	}

	for _, image := range post.Images {
		if err := uc.media.Destroy(ctx, image.PublicID); err != nil {
			uc.logger.Warn("failed to destroy CDN asset",
				logger.String("post_id", postID),
				logger.String("public_id", image.PublicID),
				logger.Err(err),
			)
		}
	}

	return nil
}

func paidOnly(images []*models.Image) []*models.Image {
	filtered := make([]*models.Image, 0, len(images))
	for _, image := range images {
		if image.PaymentStatus == models.ImageStatusPaid {
			filtered = append(filtered, image)
		}
	}
	return filtered
}
