package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"steam_trader/internal/domain"
	"steam_trader/internal/domain/entity"
	"steam_trader/pkg/errcodes"
)

// TradeRepository is the Postgres ledger of decided offers. One row per offer;
// rows are inserted once and only the status advances afterwards.
type TradeRepository struct {
	db *sqlx.DB
}

func NewTradeRepository(db *sqlx.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

func (r *TradeRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// Create inserts the decided offer. Inserting an already-decided offer is a
// conflict, not an upsert: deciding twice is a caller bug.
func (r *TradeRepository) Create(ctx context.Context, record *entity.TradeRecord) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO trades (offer_id, partner_id, reason, status, received_value, given_value, decided_at, updated_at)
			VALUES (:offer_id, :partner_id, :reason, :status, :received_value, :given_value, :decided_at, :updated_at)`

		params := map[string]any{
			"offer_id":       record.OfferID,
			"partner_id":     record.PartnerID,
			"reason":         record.Reason,
			"status":         string(record.Status),
			"received_value": record.ReceivedValue,
			"given_value":    record.GivenValue,
			"decided_at":     record.DecidedAt,
			"updated_at":     record.UpdatedAt,
		}

		if _, err := tx.NamedExecContext(ctx, query, params); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert trade")
		}

		return nil
	})
}

// Exists reports whether the offer has already been decided.
func (r *TradeRepository) Exists(ctx context.Context, offerID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM trades WHERE offer_id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, offerID); err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "failed to check trade existence")
	}

	return exists, nil
}

// UpdateStatus advances the status of a decided offer.
func (r *TradeRepository) UpdateStatus(ctx context.Context, offerID string, status entity.TradeStatus) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE trades
			SET status = $1, updated_at = $2
			WHERE offer_id = $3`

		res, err := tx.ExecContext(ctx, query, string(status), time.Now(), offerID)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to update trade status")
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
		}

		if rows == 0 {
			return domain.NewError(errcodes.OfferNotFound, "trade not found")
		}

		return nil
	})
}

// List returns decided offers, newest first.
func (r *TradeRepository) List(ctx context.Context, limit, offset int) ([]entity.TradeRecord, error) {
	query := `
		SELECT offer_id, partner_id, reason, status, received_value, given_value, decided_at, updated_at
		FROM trades
		ORDER BY decided_at DESC
		LIMIT $1 OFFSET $2`

	var schemas []tradeSchema
	if err := r.db.SelectContext(ctx, &schemas, query, limit, offset); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list trades")
	}

	records := make([]entity.TradeRecord, 0, len(schemas))
	for _, s := range schemas {
		records = append(records, s.toDomain())
	}

	return records, nil
}
