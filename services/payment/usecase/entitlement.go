package usecase

import (
	"context"

	"github.com/sployal/fine-back-sub000/internal/pkg/apperr"
	"github.com/sployal/fine-back-sub000/internal/pkg/logger"
	"github.com/sployal/fine-back-sub000/internal/pkg/models"
)

// unlockImages marks the purchased images as paid for the buyer. Ownership
// is re-checked at entitlement time: only unpaid images on posts addressed
// to the buyer match. Zero matches signals a data inconsistency.
func (uc *PaymentUC) unlockImages(ctx context.Context, tx *models.Transaction) error {
	matched, err := uc.repo.MarkImagesPaid(ctx, []string(tx.PhotoIDs), tx.UserID)
	if err != nil {
		return err
	}

	if matched == 0 {
		return apperr.Newf(apperr.KindDataInconsistency,
			"no unpaid images matched for buyer %s (ids %v)", tx.UserID, []string(tx.PhotoIDs))
	}

	if int(matched) < len(tx.PhotoIDs) {
		uc.logger.Warn("partial entitlement match",
			logger.String("transaction_id", tx.ID),
			logger.Int64("matched", matched),
			logger.Int("requested", len(tx.PhotoIDs)),
		)
	}

	return nil
}
