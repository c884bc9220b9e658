package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mercuryins/pas-service/internal/model"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockVehicleRepository struct {
	mock.Mock
}

func (m *mockVehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *mockVehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVehicleRepository) GetByVIN(ctx context.Context, vin string) (*model.Vehicle, error) {
	args := m.Called(ctx, vin)
	if v := args.Get(0); v != nil {
		return v.(*model.Vehicle), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockQuoteRepository struct {
	mock.Mock
}

func (m *mockQuoteRepository) Create(ctx context.Context, quote *model.Quote) error {
	return m.Called(ctx, quote).Error(0)
}

func (m *mockQuoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Quote, error) {
	args := m.Called(ctx, id)
	if q := args.Get(0); q != nil {
		return q.(*model.Quote), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockQuoteRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Quote, error) {
	args := m.Called(ctx, customerID)
	if q := args.Get(0); q != nil {
		return q.([]model.Quote), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockQuoteRepository) MarkConverted(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockPolicyRepository struct {
	mock.Mock
}

func (m *mockPolicyRepository) Create(ctx context.Context, policy *model.Policy) error {
	return m.Called(ctx, policy).Error(0)
}

func (m *mockPolicyRepository) CreateFromQuote(ctx context.Context, policy *model.Policy) (bool, error) {
	args := m.Called(ctx, policy)
	return args.Bool(0), args.Error(1)
}

func (m *mockPolicyRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Policy, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*model.Policy), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPolicyRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Policy, error) {
	args := m.Called(ctx, customerID)
	if p := args.Get(0); p != nil {
		return p.([]model.Policy), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPolicyRepository) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]model.Policy, error) {
	args := m.Called(ctx, agentID)
	if p := args.Get(0); p != nil {
		return p.([]model.Policy), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPolicyRepository) UpdateDates(ctx context.Context, id uuid.UUID, startDate, endDate time.Time) error {
	return m.Called(ctx, id, startDate, endDate).Error(0)
}

func (m *mockPolicyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockClaimRepository struct {
	mock.Mock
}

func (m *mockClaimRepository) Create(ctx context.Context, claim *model.Claim) error {
	return m.Called(ctx, claim).Error(0)
}

func (m *mockClaimRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Claim, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*model.Claim), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClaimRepository) ListByPolicy(ctx context.Context, policyID uuid.UUID) ([]model.Claim, error) {
	args := m.Called(ctx, policyID)
	if c := args.Get(0); c != nil {
		return c.([]model.Claim), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClaimRepository) AppendDocument(ctx context.Context, claimID uuid.UUID, path string) error {
	return m.Called(ctx, claimID, path).Error(0)
}

func (m *mockClaimRepository) CountByPolicy(ctx context.Context, policyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, policyID)
	return args.Get(0).(int64), args.Error(1)
}
