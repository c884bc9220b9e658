package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mercuryins/pas-service/internal/model"
)

const standardCoverage = "Standard auto coverage"

type QuoteService struct {
	quotes    QuoteRepository
	policies  PolicyRepository
	users     UserRepository
	vehicles  VehicleRepository
	registry  *VehicleRegistry
	rating    *RatingEngine
	policySeq *PolicyNumberSeq
	now       func() time.Time
}

func NewQuoteService(
	quotes QuoteRepository,
	policies PolicyRepository,
	users UserRepository,
	vehicles VehicleRepository,
	rating *RatingEngine,
	policySeq *PolicyNumberSeq,
) *QuoteService {
	return &QuoteService{
		quotes:    quotes,
		policies:  policies,
		users:     users,
		vehicles:  vehicles,
		registry:  NewVehicleRegistry(vehicles),
		rating:    rating,
		policySeq: policySeq,
		now:       time.Now,
	}
}

type GenerateQuoteInput struct {
	CustomerID uuid.UUID
	Make       string
	Model      string
	Year       int
	VIN        string
	DriverAge  int
}

// Generate rates a quote from raw vehicle and driver facts. The
// vehicle is resolved by VIN or created under the customer.
func (s *QuoteService) Generate(ctx context.Context, input GenerateQuoteInput) (*model.Quote, error) {
	customer, err := s.users.GetByID(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer", ErrNotFound)
		}
		return nil, err
	}

	vehicle, err := s.registry.ResolveOrCreate(ctx, input.VIN, input.Make, input.Model, input.Year, customer.ID)
	if err != nil {
		return nil, err
	}

	quote := &model.Quote{
		ID:              uuid.New(),
		QuoteNumber:     NewQuoteNumber(),
		VehicleID:       vehicle.ID,
		CustomerID:      customer.ID,
		PremiumAmount:   s.rating.Rate(input.DriverAge, input.Year),
		CoverageDetails: standardCoverage,
		Status:          model.QuoteStatusGenerated,
		CreatedAt:       s.now(),
	}
	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

type SaveQuoteInput struct {
	CustomerID      uuid.UUID
	VehicleID       uuid.UUID
	CoverageDetails string
	PremiumAmount   decimal.Decimal
}

// Save persists an agent-entered quote verbatim; no rating is applied.
func (s *QuoteService) Save(ctx context.Context, input SaveQuoteInput) (*model.Quote, error) {
	customer, err := s.users.GetByID(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer", ErrNotFound)
		}
		return nil, err
	}
	vehicle, err := s.vehicles.GetByID(ctx, input.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehicle", ErrNotFound)
		}
		return nil, err
	}

	quote := &model.Quote{
		ID:              uuid.New(),
		QuoteNumber:     NewQuoteNumber(),
		VehicleID:       vehicle.ID,
		CustomerID:      customer.ID,
		PremiumAmount:   input.PremiumAmount,
		CoverageDetails: input.CoverageDetails,
		Status:          model.QuoteStatusSaved,
		CreatedAt:       s.now(),
	}
	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *QuoteService) GetByID(ctx context.Context, id uuid.UUID) (*model.Quote, error) {
	quote, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: quote", ErrNotFound)
		}
		return nil, err
	}
	return quote, nil
}

// GetByCustomer fails when the customer id itself does not resolve; a
// customer with zero quotes yields an empty slice.
func (s *QuoteService) GetByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Quote, error) {
	if _, err := s.users.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer", ErrNotFound)
		}
		return nil, err
	}
	return s.quotes.ListByCustomer(ctx, customerID)
}

// MarkConverted transitions GENERATED|SAVED to CONVERTED. Converting
// an already-CONVERTED quote fails closed with ErrInvalidState, since
// at most one policy may ever derive from a quote.
func (s *QuoteService) MarkConverted(ctx context.Context, id uuid.UUID) error {
	converted, err := s.quotes.MarkConverted(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: quote", ErrNotFound)
		}
		return err
	}
	if !converted {
		return fmt.Errorf("%w: quote already converted", ErrInvalidState)
	}
	return nil
}

// ConvertToPolicy creates a policy covering one year from today and
// flips the source quote to CONVERTED. Both writes commit atomically or
// not at all.
func (s *QuoteService) ConvertToPolicy(ctx context.Context, quoteID, agentID uuid.UUID) (uuid.UUID, error) {
	quote, err := s.quotes.GetByID(ctx, quoteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fmt.Errorf("%w: quote", ErrNotFound)
		}
		return uuid.Nil, err
	}
	if _, err := s.users.GetByID(ctx, agentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fmt.Errorf("%w: agent", ErrNotFound)
		}
		return uuid.Nil, err
	}
	if quote.Status == model.QuoteStatusConverted {
		return uuid.Nil, fmt.Errorf("%w: quote already converted", ErrInvalidState)
	}

	start := dateOnly(s.now())
	policy := &model.Policy{
		ID:            uuid.New(),
		PolicyNumber:  s.policySeq.Next(),
		QuoteID:       quote.ID,
		VehicleID:     quote.VehicleID,
		CustomerID:    quote.CustomerID,
		AgentID:       agentID,
		StartDate:     start,
		EndDate:       start.AddDate(1, 0, 0),
		PremiumAmount: quote.PremiumAmount,
		Status:        model.PolicyStatusActive,
	}

	converted, err := s.policies.CreateFromQuote(ctx, policy)
	if err != nil {
		return uuid.Nil, err
	}
	if !converted {
		// Lost the race against a concurrent conversion.
		return uuid.Nil, fmt.Errorf("%w: quote already converted", ErrInvalidState)
	}
	return policy.ID, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
