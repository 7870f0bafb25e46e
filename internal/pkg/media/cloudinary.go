package media

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/sployal/fine-back-sub000/internal/pkg/models"
)

// CloudinaryClient wraps the image CDN operations the service needs
type CloudinaryClient struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryClient creates a new CDN client from account credentials
func NewCloudinaryClient(config models.CloudinaryConfig) (*CloudinaryClient, error) {
	cld, err := cloudinary.NewFromParams(config.CloudName, config.APIKey, config.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	return &CloudinaryClient{
		cld:    cld,
		folder: config.Folder,
	}, nil
}

// Destroy removes an uploaded asset by its public id. Used when a post is
// deleted; failures are reported to the caller but the caller treats asset
// cleanup as best-effort.
func (c *CloudinaryClient) Destroy(ctx context.Context, publicID string) error {
	resp, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to destroy asset %s: %w", publicID, err)
	}
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("unexpected destroy result for asset %s: %s", publicID, resp.Result)
	}
	return nil
}

// UploadFromURL ingests a remote image into the account's configured folder
func (c *CloudinaryClient) UploadFromURL(ctx context.Context, url string) (string, string, error) {
	resp, err := c.cld.Upload.Upload(ctx, url, uploader.UploadParams{
		Folder: c.folder,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload asset: %w", err)
	}
	return resp.PublicID, resp.SecureURL, nil
}
