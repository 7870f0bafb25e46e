package models

import (
	"time"

	"github.com/lib/pq"
)

// ImagePaymentStatus marks whether an image has been unlocked for its recipient
type ImagePaymentStatus string

const (
	ImageStatusUnpaid ImagePaymentStatus = "unpaid"
	ImageStatusPaid   ImagePaymentStatus = "paid"
)

// Post is a photo collection sent from one user to another
type Post struct {
	ID          string         `json:"id" db:"id"`
	SenderID    string         `json:"sender_id" db:"sender_id"`
	RecipientID string         `json:"recipient_id" db:"recipient_id"`
	Caption     string         `json:"caption" db:"caption"`
	Tags        pq.StringArray `json:"tags" db:"tags"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
	Images      []*Image       `json:"images,omitempty" db:"-"`
}

// Image is a single CDN-hosted photo belonging to a post
type Image struct {
	ID            string             `json:"id" db:"id"`
	PostID        string             `json:"post_id" db:"post_id"`
	PublicID      string             `json:"public_id" db:"public_id"`
	URL           string             `json:"url" db:"url"`
	PaymentStatus ImagePaymentStatus `json:"payment_status" db:"payment_status"`
	CreatedAt     time.Time          `json:"created_at" db:"created_at"`
}

// CreatePostRequest is the client request to send a photo collection
type CreatePostRequest struct {
	RecipientID string               `json:"recipient_id"`
	Caption     string               `json:"caption"`
	Tags        []string             `json:"tags,omitempty"`
	Images      []CreateImageRequest `json:"images"`
}

// CreateImageRequest describes one uploaded image within a post
type CreateImageRequest struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
	Paid     bool   `json:"paid"`
}

// PostFilter narrows post listing queries
type PostFilter struct {
	UserID string
	Tag    string
	Limit  int
	Offset int
}
