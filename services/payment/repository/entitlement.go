package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/sployal/fine-back-sub000/internal/pkg/apperr"
)

// MarkImagesPaid flips the referenced images from unpaid to paid in one
// batch. Only images that are still unpaid and belong to a post addressed to
// the buyer match; the initiation-time photo ids are not trusted blindly.
// The parent posts get their update timestamp touched in the same database
// transaction. Returns the number of images updated.
func (r *PaymentRepo) MarkImagesPaid(ctx context.Context, photoIDs []string, buyerID string) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindDependency, "failed to begin entitlement transaction", err)
	}
	defer tx.Rollback()

	updateQuery := `
		UPDATE images i
		SET payment_status = 'paid'
		FROM posts p
		WHERE p.id = i.post_id
		  AND i.id = ANY($1)
		  AND i.payment_status = 'unpaid'
		  AND p.recipient_id = $2
	`
	result, err := tx.ExecContext(ctx, updateQuery, pq.Array(photoIDs), buyerID)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindDependency, "failed to update image payment status", err)
	}

	matched, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	if matched > 0 {
		touchQuery := `
			UPDATE posts
			SET updated_at = now()
			WHERE id IN (SELECT DISTINCT post_id FROM images WHERE id = ANY($1))
		`
		if _, err := tx.ExecContext(ctx, touchQuery, pq.Array(photoIDs)); err != nil {
			return 0, apperr.Wrap(apperr.KindDependency, "failed to touch parent posts", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, apperr.Wrap(apperr.KindDependency, "failed to commit entitlement update", err)
	}

	return matched, nil
}
