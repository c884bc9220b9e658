package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mercuryins/pas-service/internal/model"
)

type ClaimService struct {
	claims   ClaimRepository
	policies PolicyRepository
	users    UserRepository
	now      func() time.Time
}

func NewClaimService(claims ClaimRepository, policies PolicyRepository, users UserRepository) *ClaimService {
	return &ClaimService{
		claims:   claims,
		policies: policies,
		users:    users,
		now:      time.Now,
	}
}

type FileClaimInput struct {
	PolicyID    uuid.UUID
	CustomerID  uuid.UUID
	Description string
}

// File registers a claim against a policy. Whether the customer is the
// policy's own customer is not verified here; that gate belongs to the
// boundary layer.
func (s *ClaimService) File(ctx context.Context, input FileClaimInput) (*model.Claim, error) {
	if _, err := s.policies.GetByID(ctx, input.PolicyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: policy", ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, input.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer", ErrNotFound)
		}
		return nil, err
	}

	claim := &model.Claim{
		ID:            uuid.New(),
		ClaimNumber:   NewClaimNumber(),
		PolicyID:      input.PolicyID,
		CustomerID:    input.CustomerID,
		Description:   input.Description,
		Status:        model.ClaimStatusNew,
		DocumentPaths: []string{},
		CreatedAt:     s.now(),
	}
	if err := s.claims.Create(ctx, claim); err != nil {
		return nil, err
	}
	return claim, nil
}

func (s *ClaimService) GetByID(ctx context.Context, id uuid.UUID) (*model.Claim, error) {
	claim, err := s.claims.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: claim", ErrNotFound)
		}
		return nil, err
	}
	return claim, nil
}

func (s *ClaimService) GetByPolicy(ctx context.Context, policyID uuid.UUID) ([]model.Claim, error) {
	if _, err := s.policies.GetByID(ctx, policyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: policy", ErrNotFound)
		}
		return nil, err
	}
	return s.claims.ListByPolicy(ctx, policyID)
}

// UploadDocument appends a path reference to the claim's document list.
// The list keeps insertion order and allows duplicates; path validation
// belongs to the storage collaborator.
func (s *ClaimService) UploadDocument(ctx context.Context, claimID uuid.UUID, path string) (*model.Claim, error) {
	if _, err := s.claims.GetByID(ctx, claimID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: claim", ErrNotFound)
		}
		return nil, err
	}
	if err := s.claims.AppendDocument(ctx, claimID, path); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, claimID)
}
