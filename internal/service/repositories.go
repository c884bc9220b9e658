package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mercuryins/pas-service/internal/model"
)

// Persistence contracts consumed by the lifecycle services. The GORM
// implementations live in internal/repository; misses surface as
// gorm.ErrRecordNotFound.

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	List(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	GetByVIN(ctx context.Context, vin string) (*model.Vehicle, error)
}

type QuoteRepository interface {
	Create(ctx context.Context, quote *model.Quote) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Quote, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Quote, error)
	// MarkConverted flips GENERATED|SAVED to CONVERTED. Returns false
	// without error when the quote exists but is already CONVERTED.
	MarkConverted(ctx context.Context, id uuid.UUID) (bool, error)
}

type PolicyRepository interface {
	Create(ctx context.Context, policy *model.Policy) error
	// CreateFromQuote inserts the policy and flips its source quote to
	// CONVERTED in one transaction. Returns false without error (and
	// persists nothing) when the quote is already CONVERTED.
	CreateFromQuote(ctx context.Context, policy *model.Policy) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Policy, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Policy, error)
	ListByAgent(ctx context.Context, agentID uuid.UUID) ([]model.Policy, error)
	UpdateDates(ctx context.Context, id uuid.UUID, startDate, endDate time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ClaimRepository interface {
	Create(ctx context.Context, claim *model.Claim) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Claim, error)
	ListByPolicy(ctx context.Context, policyID uuid.UUID) ([]model.Claim, error)
	AppendDocument(ctx context.Context, claimID uuid.UUID, path string) error
	CountByPolicy(ctx context.Context, policyID uuid.UUID) (int64, error)
}
