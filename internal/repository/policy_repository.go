package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mercuryins/pas-service/internal/model"
)

type PolicyRepository struct {
	db *gorm.DB
}

func NewPolicyRepository(db *gorm.DB) *PolicyRepository {
	return &PolicyRepository{db: db}
}

const policyColumns = `
	id,
	policy_number,
	quote_id,
	vehicle_id,
	customer_id,
	agent_id,
	start_date,
	end_date,
	premium_amount,
	status
`

const insertPolicySQL = `
	INSERT INTO policies (
		id,
		policy_number,
		quote_id,
		vehicle_id,
		customer_id,
		agent_id,
		start_date,
		end_date,
		premium_amount,
		status
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

func policyArgs(policy *model.Policy) []interface{} {
	return []interface{}{
		policy.ID,
		policy.PolicyNumber,
		policy.QuoteID,
		policy.VehicleID,
		policy.CustomerID,
		policy.AgentID,
		policy.StartDate,
		policy.EndDate,
		policy.PremiumAmount,
		policy.Status,
	}
}

func (r *PolicyRepository) Create(ctx context.Context, policy *model.Policy) error {
	return r.db.WithContext(ctx).Exec(insertPolicySQL, policyArgs(policy)...).Error
}

// CreateFromQuote inserts the policy and flips its source quote to
// CONVERTED in one transaction. When the quote is already CONVERTED the
// transaction rolls back and (false, nil) is returned.
func (r *PolicyRepository) CreateFromQuote(ctx context.Context, policy *model.Policy) (bool, error) {
	converted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Exec(`
			UPDATE quotes
			SET status = ?
			WHERE id = ? AND status <> ?
		`, model.QuoteStatusConverted, policy.QuoteID, model.QuoteStatusConverted)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		if err := tx.Exec(insertPolicySQL, policyArgs(policy)...).Error; err != nil {
			return err
		}
		converted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return converted, nil
}

func (r *PolicyRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Policy, error) {
	var policy model.Policy
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+policyColumns+`
		FROM policies
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&policy).Error
	if err != nil {
		return nil, err
	}
	if policy.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &policy, nil
}

func (r *PolicyRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Policy, error) {
	var policies []model.Policy
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+policyColumns+`
		FROM policies
		WHERE customer_id = ?
	`, customerID).Scan(&policies).Error
	if err != nil {
		return nil, err
	}
	return policies, nil
}

func (r *PolicyRepository) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]model.Policy, error) {
	var policies []model.Policy
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+policyColumns+`
		FROM policies
		WHERE agent_id = ?
	`, agentID).Scan(&policies).Error
	if err != nil {
		return nil, err
	}
	return policies, nil
}

func (r *PolicyRepository) UpdateDates(ctx context.Context, id uuid.UUID, startDate, endDate time.Time) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE policies
		SET start_date = ?, end_date = ?
		WHERE id = ?
	`, startDate, endDate, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PolicyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM policies WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
