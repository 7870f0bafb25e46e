package photos

import (
	"context"

	"github.com/sployal/fine-back-sub000/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/sployal/fine-back-sub000/services/photos PhotoRepo

// PhotoRepo defines the persistence operations for posts and images
type PhotoRepo interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	ListPostsByRecipient(ctx context.Context, filter models.PostFilter) ([]*models.Post, error)
	GetImagesByPostID(ctx context.Context, postID string) ([]*models.Image, error)
	DeletePost(ctx context.Context, id string) error
}

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/sployal/fine-back-sub000/services/photos MediaGW

// MediaGW defines the outbound operations to the image CDN
type MediaGW interface {
	Destroy(ctx context.Context, publicID string) error
}
