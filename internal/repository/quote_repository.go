package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mercuryins/pas-service/internal/model"
)

type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

const quoteColumns = `
	id,
	quote_number,
	vehicle_id,
	customer_id,
	premium_amount,
	coverage_details,
	status,
	created_at
`

func (r *QuoteRepository) Create(ctx context.Context, quote *model.Quote) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO quotes (
			id,
			quote_number,
			vehicle_id,
			customer_id,
			premium_amount,
			coverage_details,
			status,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		quote.ID,
		quote.QuoteNumber,
		quote.VehicleID,
		quote.CustomerID,
		quote.PremiumAmount,
		quote.CoverageDetails,
		quote.Status,
		quote.CreatedAt,
	).Error
}

func (r *QuoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Quote, error) {
	var quote model.Quote
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+quoteColumns+`
		FROM quotes
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&quote).Error
	if err != nil {
		return nil, err
	}
	if quote.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &quote, nil
}

func (r *QuoteRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Quote, error) {
	var quotes []model.Quote
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+quoteColumns+`
		FROM quotes
		WHERE customer_id = ?
	`, customerID).Scan(&quotes).Error
	if err != nil {
		return nil, err
	}
	return quotes, nil
}

// MarkConverted flips GENERATED|SAVED to CONVERTED. The WHERE guard
// makes the transition single-shot; a second call matches no row.
func (r *QuoteRepository) MarkConverted(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (SELECT 1 FROM quotes WHERE id = ?)
	`, id).Scan(&exists).Error; err != nil {
		return false, err
	}
	if !exists {
		return false, gorm.ErrRecordNotFound
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE quotes
		SET status = ?
		WHERE id = ? AND status <> ?
	`, model.QuoteStatusConverted, id, model.QuoteStatusConverted)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
