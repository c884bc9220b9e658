package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mercuryins/pas-service/internal/model"
)

type ClaimRepository struct {
	db *gorm.DB
}

func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

const claimColumns = `
	id,
	claim_number,
	policy_id,
	customer_id,
	description,
	status,
	created_at
`

func (r *ClaimRepository) Create(ctx context.Context, claim *model.Claim) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO claims (
			id,
			claim_number,
			policy_id,
			customer_id,
			description,
			status,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		claim.ID,
		claim.ClaimNumber,
		claim.PolicyID,
		claim.CustomerID,
		claim.Description,
		claim.Status,
		claim.CreatedAt,
	).Error
}

func (r *ClaimRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Claim, error) {
	var claim model.Claim
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+claimColumns+`
		FROM claims
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&claim).Error
	if err != nil {
		return nil, err
	}
	if claim.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	paths, err := r.listDocuments(ctx, claim.ID)
	if err != nil {
		return nil, err
	}
	claim.DocumentPaths = paths
	return &claim, nil
}

func (r *ClaimRepository) ListByPolicy(ctx context.Context, policyID uuid.UUID) ([]model.Claim, error) {
	var claims []model.Claim
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+claimColumns+`
		FROM claims
		WHERE policy_id = ?
	`, policyID).Scan(&claims).Error
	if err != nil {
		return nil, err
	}

	for i := range claims {
		paths, err := r.listDocuments(ctx, claims[i].ID)
		if err != nil {
			return nil, err
		}
		claims[i].DocumentPaths = paths
	}
	return claims, nil
}

// AppendDocument adds the path at the next position. Positions are
// assigned inside a transaction so an append either fully lands or not
// at all; duplicate paths are allowed.
func (r *ClaimRepository) AppendDocument(ctx context.Context, claimID uuid.UUID, path string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Exec(`
			INSERT INTO claim_documents (claim_id, position, document_path)
			SELECT ?, COALESCE(MAX(position), 0) + 1, ?
			FROM claim_documents
			WHERE claim_id = ?
		`, claimID, path, claimID).Error
	})
}

func (r *ClaimRepository) CountByPolicy(ctx context.Context, policyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM claims WHERE policy_id = ?
	`, policyID).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ClaimRepository) listDocuments(ctx context.Context, claimID uuid.UUID) ([]string, error) {
	paths := []string{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT document_path
		FROM claim_documents
		WHERE claim_id = ?
		ORDER BY position
	`, claimID).Scan(&paths).Error
	if err != nil {
		return nil, err
	}
	return paths, nil
}
