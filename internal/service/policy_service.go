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

type ScheduleGenerator interface {
	Generate(doc model.PolicyDocument) ([]byte, error)
}

type BookExporter interface {
	Generate(book model.AgentBook) ([]byte, error)
}

type PolicyService struct {
	policies  PolicyRepository
	quotes    QuoteRepository
	users     UserRepository
	vehicles  VehicleRepository
	claims    ClaimRepository
	policySeq *PolicyNumberSeq
	schedule  ScheduleGenerator
	book      BookExporter
}

func NewPolicyService(
	policies PolicyRepository,
	quotes QuoteRepository,
	users UserRepository,
	vehicles VehicleRepository,
	claims ClaimRepository,
	policySeq *PolicyNumberSeq,
	schedule ScheduleGenerator,
	book BookExporter,
) *PolicyService {
	return &PolicyService{
		policies:  policies,
		quotes:    quotes,
		users:     users,
		vehicles:  vehicles,
		claims:    claims,
		policySeq: policySeq,
		schedule:  schedule,
		book:      book,
	}
}

type CreatePolicyInput struct {
	QuoteID   uuid.UUID
	AgentID   uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// Create issues a policy from a quote with caller-supplied dates. The
// quote's status is left untouched; the convert path is the one that
// flips it. Vehicle, customer and premium are copied from the quote
// and evolve independently afterwards.
func (s *PolicyService) Create(ctx context.Context, input CreatePolicyInput) (*model.Policy, error) {
	quote, err := s.quotes.GetByID(ctx, input.QuoteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: quote", ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, input.AgentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: agent", ErrNotFound)
		}
		return nil, err
	}
	if input.StartDate.After(input.EndDate) {
		return nil, fmt.Errorf("%w: start date after end date", ErrInvalidState)
	}

	policy := &model.Policy{
		ID:            uuid.New(),
		PolicyNumber:  s.policySeq.Next(),
		QuoteID:       quote.ID,
		VehicleID:     quote.VehicleID,
		CustomerID:    quote.CustomerID,
		AgentID:       input.AgentID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		PremiumAmount: quote.PremiumAmount,
		Status:        model.PolicyStatusActive,
	}
	if err := s.policies.Create(ctx, policy); err != nil {
		return nil, err
	}
	return policy, nil
}

func (s *PolicyService) GetByID(ctx context.Context, id uuid.UUID) (*model.Policy, error) {
	policy, err := s.policies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: policy", ErrNotFound)
		}
		return nil, err
	}
	return policy, nil
}

func (s *PolicyService) GetByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Policy, error) {
	if _, err := s.users.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer", ErrNotFound)
		}
		return nil, err
	}
	return s.policies.ListByCustomer(ctx, customerID)
}

func (s *PolicyService) GetByAgent(ctx context.Context, agentID uuid.UUID) ([]model.Policy, error) {
	if _, err := s.users.GetByID(ctx, agentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: agent", ErrNotFound)
		}
		return nil, err
	}
	return s.policies.ListByAgent(ctx, agentID)
}

// Update mutates only the coverage period; premium and status stay as
// they are.
func (s *PolicyService) Update(ctx context.Context, id uuid.UUID, startDate, endDate time.Time) (*model.Policy, error) {
	if startDate.After(endDate) {
		return nil, fmt.Errorf("%w: start date after end date", ErrInvalidState)
	}
	if err := s.policies.UpdateDates(ctx, id, startDate, endDate); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: policy", ErrNotFound)
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete hard-deletes the policy. Deletion is restricted while claims
// still reference it, so no dangling references are left behind.
func (s *PolicyService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.policies.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: policy", ErrNotFound)
		}
		return err
	}
	claimCount, err := s.claims.CountByPolicy(ctx, id)
	if err != nil {
		return err
	}
	if claimCount > 0 {
		return fmt.Errorf("%w: policy has filed claims", ErrInvalidState)
	}
	return s.policies.Delete(ctx, id)
}

type DocumentResult struct {
	FileName string
	Content  []byte
}

// GetDocument renders the policy schedule PDF.
func (s *PolicyService) GetDocument(ctx context.Context, id uuid.UUID) (*DocumentResult, error) {
	policy, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	quote, err := s.quotes.GetByID(ctx, policy.QuoteID)
	if err != nil {
		return nil, err
	}
	vehicle, err := s.vehicles.GetByID(ctx, policy.VehicleID)
	if err != nil {
		return nil, err
	}
	customer, err := s.users.GetByID(ctx, policy.CustomerID)
	if err != nil {
		return nil, err
	}
	agent, err := s.users.GetByID(ctx, policy.AgentID)
	if err != nil {
		return nil, err
	}

	content, err := s.schedule.Generate(model.PolicyDocument{
		Policy:   *policy,
		Quote:    *quote,
		Vehicle:  *vehicle,
		Customer: *customer,
		Agent:    *agent,
	})
	if err != nil {
		return nil, err
	}
	return &DocumentResult{
		FileName: fmt.Sprintf("policy-%s.pdf", policy.PolicyNumber),
		Content:  content,
	}, nil
}

// ExportByAgent renders the agent's book of business as a workbook.
func (s *PolicyService) ExportByAgent(ctx context.Context, agentID uuid.UUID) (*DocumentResult, error) {
	agent, err := s.users.GetByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: agent", ErrNotFound)
		}
		return nil, err
	}
	policies, err := s.policies.ListByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, policy := range policies {
		total = total.Add(policy.PremiumAmount)
	}

	content, err := s.book.Generate(model.AgentBook{
		Agent:        *agent,
		Policies:     policies,
		TotalPremium: total,
	})
	if err != nil {
		return nil, err
	}
	return &DocumentResult{
		FileName: fmt.Sprintf("policies-%s.xlsx", agentID),
		Content:  content,
	}, nil
}
