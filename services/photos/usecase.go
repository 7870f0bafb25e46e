package photos

import (
	"context"

	"github.com/sployal/fine-back-sub000/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/sployal/fine-back-sub000/services/photos PhotoUC

// PhotoUC represents the photo-sharing usecase interface
type PhotoUC interface {
	CreatePost(ctx context.Context, senderID string, req *models.CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, requesterID, postID string) (*models.Post, error)
	ListReceivedPosts(ctx context.Context, userID string, filter models.PostFilter) ([]*models.Post, error)
	DeletePost(ctx context.Context, requesterID, postID string) error
}
