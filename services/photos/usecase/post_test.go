package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sployal/fine-back-sub000/internal/pkg/apperr"
	"github.com/sployal/fine-back-sub000/internal/pkg/logger"
	"github.com/sployal/fine-back-sub000/internal/pkg/models"
	"github.com/sployal/fine-back-sub000/services/photos/mocks"
)

func newTestUC(t *testing.T, ctrl *gomock.Controller) (*PhotoUC, *mocks.MockPhotoRepo, *mocks.MockMediaGW) {
	t.Helper()
	zapLogger, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	assert.NoError(t, err)

	mockRepo := mocks.NewMockPhotoRepo(ctrl)
	mockMedia := mocks.NewMockMediaGW(ctrl)
	uc := NewPhotoUC(&models.Config{}, mockRepo, mockMedia, zapLogger)
	return uc, mockRepo, mockMedia
}

func mixedPost() *models.Post {
	return &models.Post{
		ID:          "post-1",
		SenderID:    "sender-1",
		RecipientID: "recipient-1",
		Caption:     "weekend shots",
		Images: []*models.Image{
			{ID: "img-1", PostID: "post-1", PublicID: "pub-1", URL: "https://cdn/1.jpg", PaymentStatus: models.ImageStatusPaid},
			{ID: "img-2", PostID: "post-1", PublicID: "pub-2", URL: "https://cdn/2.jpg", PaymentStatus: models.ImageStatusUnpaid},
		},
	}
}

func TestCreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _ := newTestUC(t, ctrl)

	req := &models.CreatePostRequest{
		RecipientID: "recipient-1",
		Caption:     "weekend shots",
		Tags:        []string{"weekend"},
		Images: []models.CreateImageRequest{
			{PublicID: "pub-1", URL: "https://cdn/1.jpg", Paid: true},
			{PublicID: "pub-2", URL: "https://cdn/2.jpg"},
		},
	}

	mockRepo.EXPECT().
		CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, post *models.Post) error {
			assert.NotEmpty(t, post.ID)
			assert.Equal(t, "sender-1", post.SenderID)
			assert.Len(t, post.Images, 2)
			assert.Equal(t, models.ImageStatusPaid, post.Images[0].PaymentStatus)
			assert.Equal(t, models.ImageStatusUnpaid, post.Images[1].PaymentStatus)
			return nil
		})

	post, err := uc.CreatePost(context.Background(), "sender-1", req)

	assert.NoError(t, err)
	assert.Equal(t, "recipient-1", post.RecipientID)
}

func TestCreatePost_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.CreatePostRequest
	}{
		{"missing recipient", &models.CreatePostRequest{
			Images: []models.CreateImageRequest{{PublicID: "pub-1", URL: "https://cdn/1.jpg"}},
		}},
		{"no images", &models.CreatePostRequest{RecipientID: "recipient-1"}},
		{"image without url", &models.CreatePostRequest{
			RecipientID: "recipient-1",
			Images:      []models.CreateImageRequest{{PublicID: "pub-1"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc, _, _ := newTestUC(t, ctrl)

			_, err := uc.CreatePost(context.Background(), "sender-1", tt.req)

			assert.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}
}

func TestGetPost_SenderSeesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _ := newTestUC(t, ctrl)

	mockRepo.EXPECT().GetPostByID(gomock.Any(), "post-1").Return(mixedPost(), nil)

	post, err := uc.GetPost(context.Background(), "sender-1", "post-1")

	assert.NoError(t, err)
	assert.Len(t, post.Images, 2)
}

func TestGetPost_RecipientSeesPaidOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _ := newTestUC(t, ctrl)

	mockRepo.EXPECT().GetPostByID(gomock.Any(), "post-1").Return(mixedPost(), nil)

	post, err := uc.GetPost(context.Background(), "recipient-1", "post-1")

	assert.NoError(t, err)
	assert.Len(t, post.Images, 1)
	assert.Equal(t, "img-1", post.Images[0].ID)
}

func TestGetPost_StrangerRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _ := newTestUC(t, ctrl)

	mockRepo.EXPECT().GetPostByID(gomock.Any(), "post-1").Return(mixedPost(), nil)

	_, err := uc.GetPost(context.Background(), "stranger", "post-1")

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindAuthorization))
}

func TestListReceivedPosts_FiltersUnpaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _ := newTestUC(t, ctrl)

	mockRepo.EXPECT().
		ListPostsByRecipient(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.PostFilter) ([]*models.Post, error) {
			assert.Equal(t, "recipient-1", filter.UserID)
			assert.Equal(t, 20, filter.Limit)
			return []*models.Post{mixedPost()}, nil
		})

	posts, err := uc.ListReceivedPosts(context.Background(), "recipient-1", models.PostFilter{})

	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Len(t, posts[0].Images, 1)
	assert.Equal(t, models.ImageStatusPaid, posts[0].Images[0].PaymentStatus)
}

func TestDeletePost_SenderOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, _ := newTestUC(t, ctrl)

	mockRepo.EXPECT().GetPostByID(gomock.Any(), "post-1").Return(mixedPost(), nil)

	err := uc.DeletePost(context.Background(), "recipient-1", "post-1")

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindAuthorization))
}

func TestDeletePost_DestroysAssets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockMedia := newTestUC(t, ctrl)

	mockRepo.EXPECT().GetPostByID(gomock.Any(), "post-1").Return(mixedPost(), nil)
	mockRepo.EXPECT().DeletePost(gomock.Any(), "post-1").Return(nil)
	mockMedia.EXPECT().Destroy(gomock.Any(), "pub-1").Return(nil)
	mockMedia.EXPECT().Destroy(gomock.Any(), "pub-2").Return(nil)

	assert.NoError(t, uc.DeletePost(context.Background(), "sender-1", "post-1"))
}

func TestDeletePost_CDNFailureIsBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, mockRepo, mockMedia := newTestUC(t, ctrl)

	mockRepo.EXPECT().GetPostByID(gomock.Any(), "post-1").Return(mixedPost(), nil)
	mockRepo.EXPECT().DeletePost(gomock.Any(), "post-1").Return(nil)
	mockMedia.EXPECT().Destroy(gomock.Any(), "pub-1").
		Return(apperr.New(apperr.KindDependency, "cdn unavailable"))
	mockMedia.EXPECT().Destroy(gomock.Any(), "pub-2").Return(nil)

	// The database row is already gone; asset cleanup failures are logged only
	assert.NoError(t, uc.DeletePost(context.Background(), "sender-1", "post-1"))
}
