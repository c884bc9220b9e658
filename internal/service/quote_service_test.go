package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mercuryins/pas-service/internal/model"
)

func newQuoteServiceForTest(
	quotes *mockQuoteRepository,
	policies *mockPolicyRepository,
	users *mockUserRepository,
	vehicles *mockVehicleRepository,
	at time.Time,
) *QuoteService {
	svc := NewQuoteService(quotes, policies, users, vehicles, NewRatingEngine(), NewPolicyNumberSeq())
	svc.now = fixedClock(at)
	svc.rating.now = svc.now
	svc.policySeq.now = svc.now
	return svc
}

func TestQuoteService_Generate(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	customerID := uuid.New()
	customer := &model.User{ID: customerID, Role: model.RoleCustomer}

	t.Run("creates vehicle on unknown VIN", func(t *testing.T) {
		quotes := new(mockQuoteRepository)
		users := new(mockUserRepository)
		vehicles := new(mockVehicleRepository)
		svc := newQuoteServiceForTest(quotes, new(mockPolicyRepository), users, vehicles, now)

		users.On("GetByID", mock.Anything, customerID).Return(customer, nil)
		vehicles.On("GetByVIN", mock.Anything, "1HGCM82633A004352").Return(nil, gorm.ErrRecordNotFound)
		vehicles.On("Create", mock.Anything, mock.AnythingOfType("*model.Vehicle")).Return(nil)
		quotes.On("Create", mock.Anything, mock.AnythingOfType("*model.Quote")).Return(nil)

		quote, err := svc.Generate(context.Background(), GenerateQuoteInput{
			CustomerID: customerID,
			Make:       "Honda",
			Model:      "Accord",
			Year:       2010,
			VIN:        "1HGCM82633A004352",
			DriverAge:  24,
		})
		require.NoError(t, err)

		assert.Equal(t, model.QuoteStatusGenerated, quote.Status)
		assert.True(t, strings.HasPrefix(quote.QuoteNumber, "MER-QUO-"))
		assert.Equal(t, "Standard auto coverage", quote.CoverageDetails)
		assert.True(t, quote.PremiumAmount.Equal(mustDecimal(t, "4050")), "premium %s", quote.PremiumAmount)
		assert.Equal(t, customerID, quote.CustomerID)

		created := vehicles.Calls[1].Arguments.Get(1).(*model.Vehicle)
		assert.Equal(t, "1HGCM82633A004352", created.VIN)
		assert.Equal(t, customerID, created.CustomerID)
		assert.Equal(t, created.ID, quote.VehicleID)
	})

	t.Run("reuses vehicle on known VIN", func(t *testing.T) {
		quotes := new(mockQuoteRepository)
		users := new(mockUserRepository)
		vehicles := new(mockVehicleRepository)
		svc := newQuoteServiceForTest(quotes, new(mockPolicyRepository), users, vehicles, now)

		existing := &model.Vehicle{
			ID:         uuid.New(),
			Make:       "Toyota",
			Model:      "Camry",
			Year:       2018,
			VIN:        "4T1BF1FK5HU300001",
			CustomerID: uuid.New(),
		}
		users.On("GetByID", mock.Anything, customerID).Return(customer, nil)
		vehicles.On("GetByVIN", mock.Anything, existing.VIN).Return(existing, nil)
		quotes.On("Create", mock.Anything, mock.AnythingOfType("*model.Quote")).Return(nil)

		// Submitted attributes differ from the stored vehicle; the
		// stored one wins untouched.
		quote, err := svc.Generate(context.Background(), GenerateQuoteInput{
			CustomerID: customerID,
			Make:       "Toyota",
			Model:      "Corolla",
			Year:       2016,
			VIN:        existing.VIN,
			DriverAge:  30,
		})
		require.NoError(t, err)

		assert.Equal(t, existing.ID, quote.VehicleID)
		vehicles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		// Rating uses the submitted year, not the stored one.
		assert.True(t, quote.PremiumAmount.Equal(mustDecimal(t, "3000")), "premium %s", quote.PremiumAmount)
	})

	t.Run("unknown customer", func(t *testing.T) {
		users := new(mockUserRepository)
		svc := newQuoteServiceForTest(new(mockQuoteRepository), new(mockPolicyRepository), users, new(mockVehicleRepository), now)

		users.On("GetByID", mock.Anything, customerID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Generate(context.Background(), GenerateQuoteInput{CustomerID: customerID})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestQuoteService_Save(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	customerID := uuid.New()
	vehicleID := uuid.New()

	quotes := new(mockQuoteRepository)
	users := new(mockUserRepository)
	vehicles := new(mockVehicleRepository)
	svc := newQuoteServiceForTest(quotes, new(mockPolicyRepository), users, vehicles, now)

	users.On("GetByID", mock.Anything, customerID).Return(&model.User{ID: customerID}, nil)
	vehicles.On("GetByID", mock.Anything, vehicleID).Return(&model.Vehicle{ID: vehicleID}, nil)
	quotes.On("Create", mock.Anything, mock.AnythingOfType("*model.Quote")).Return(nil)

	quote, err := svc.Save(context.Background(), SaveQuoteInput{
		CustomerID:      customerID,
		VehicleID:       vehicleID,
		CoverageDetails: "Collision only",
		PremiumAmount:   mustDecimal(t, "1234.56"),
	})
	require.NoError(t, err)

	// Saved verbatim: no rating pass, no coverage rewrite.
	assert.Equal(t, model.QuoteStatusSaved, quote.Status)
	assert.Equal(t, "Collision only", quote.CoverageDetails)
	assert.True(t, quote.PremiumAmount.Equal(mustDecimal(t, "1234.56")))
}

func TestQuoteService_GetByCustomer(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	customerID := uuid.New()

	t.Run("empty slice when customer has no quotes", func(t *testing.T) {
		quotes := new(mockQuoteRepository)
		users := new(mockUserRepository)
		svc := newQuoteServiceForTest(quotes, new(mockPolicyRepository), users, new(mockVehicleRepository), now)

		users.On("GetByID", mock.Anything, customerID).Return(&model.User{ID: customerID}, nil)
		quotes.On("ListByCustomer", mock.Anything, customerID).Return([]model.Quote{}, nil)

		got, err := svc.GetByCustomer(context.Background(), customerID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown customer", func(t *testing.T) {
		users := new(mockUserRepository)
		svc := newQuoteServiceForTest(new(mockQuoteRepository), new(mockPolicyRepository), users, new(mockVehicleRepository), now)

		users.On("GetByID", mock.Anything, customerID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByCustomer(context.Background(), customerID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestQuoteService_MarkConverted(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	quoteID := uuid.New()

	t.Run("already converted", func(t *testing.T) {
		quotes := new(mockQuoteRepository)
		svc := newQuoteServiceForTest(quotes, new(mockPolicyRepository), new(mockUserRepository), new(mockVehicleRepository), now)

		quotes.On("MarkConverted", mock.Anything, quoteID).Return(false, nil)

		err := svc.MarkConverted(context.Background(), quoteID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("unknown quote", func(t *testing.T) {
		quotes := new(mockQuoteRepository)
		svc := newQuoteServiceForTest(quotes, new(mockPolicyRepository), new(mockUserRepository), new(mockVehicleRepository), now)

		quotes.On("MarkConverted", mock.Anything, quoteID).Return(false, gorm.ErrRecordNotFound)

		err := svc.MarkConverted(context.Background(), quoteID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestQuoteService_ConvertToPolicy(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	quoteID := uuid.New()
	agentID := uuid.New()
	customerID := uuid.New()
	vehicleID := uuid.New()

	quote := &model.Quote{
		ID:            quoteID,
		QuoteNumber:   "MER-QUO-" + uuid.NewString(),
		VehicleID:     vehicleID,
		CustomerID:    customerID,
		PremiumAmount: mustDecimal(t, "3600"),
		Status:        model.QuoteStatusGenerated,
	}

	t.Run("copies quote terms into a one-year policy", func(t *testing.T) {
		quotes := new(mockQuoteRepository)
		policies := new(mockPolicyRepository)
		users := new(mockUserRepository)
		svc := newQuoteServiceForTest(quotes, policies, users, new(mockVehicleRepository), now)

		quotes.On("GetByID", mock.Anything, quoteID).Return(quote, nil)
		users.On("GetByID", mock.Anything, agentID).Return(&model.User{ID: agentID, Role: model.RoleAgent}, nil)
		policies.On("CreateFromQuote", mock.Anything, mock.AnythingOfType("*model.Policy")).Return(true, nil)

		policyID, err := svc.ConvertToPolicy(context.Background(), quoteID, agentID)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, policyID)

		created := policies.Calls[0].Arguments.Get(1).(*model.Policy)
		assert.Equal(t, policyID, created.ID)
		assert.Equal(t, quoteID, created.QuoteID)
		assert.Equal(t, vehicleID, created.VehicleID)
		assert.Equal(t, customerID, created.CustomerID)
		assert.Equal(t, agentID, created.AgentID)
		assert.True(t, created.PremiumAmount.Equal(quote.PremiumAmount))
		assert.Equal(t, model.PolicyStatusActive, created.Status)
		assert.True(t, strings.HasPrefix(created.PolicyNumber, "MER-POL-"))

		wantStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		assert.True(t, created.StartDate.Equal(wantStart), "start %s", created.StartDate)
		assert.True(t, created.EndDate.Equal(wantStart.AddDate(1, 0, 0)), "end %s", created.EndDate)
	})

	t.Run("already converted quote", func(t *testing.T) {
		quotes := new(mockQuoteRepository)
		policies := new(mockPolicyRepository)
		users := new(mockUserRepository)
		svc := newQuoteServiceForTest(quotes, policies, users, new(mockVehicleRepository), now)

		converted := *quote
		converted.Status = model.QuoteStatusConverted
		quotes.On("GetByID", mock.Anything, quoteID).Return(&converted, nil)
		users.On("GetByID", mock.Anything, agentID).Return(&model.User{ID: agentID}, nil)

		_, err := svc.ConvertToPolicy(context.Background(), quoteID, agentID)
		assert.ErrorIs(t, err, ErrInvalidState)
		policies.AssertNotCalled(t, "CreateFromQuote", mock.Anything, mock.Anything)
	})

	t.Run("loses the conversion race", func(t *testing.T) {
		quotes := new(mockQuoteRepository)
		policies := new(mockPolicyRepository)
		users := new(mockUserRepository)
		svc := newQuoteServiceForTest(quotes, policies, users, new(mockVehicleRepository), now)

		quotes.On("GetByID", mock.Anything, quoteID).Return(quote, nil)
		users.On("GetByID", mock.Anything, agentID).Return(&model.User{ID: agentID}, nil)
		policies.On("CreateFromQuote", mock.Anything, mock.AnythingOfType("*model.Policy")).Return(false, nil)

		_, err := svc.ConvertToPolicy(context.Background(), quoteID, agentID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("unknown agent", func(t *testing.T) {
		quotes := new(mockQuoteRepository)
		users := new(mockUserRepository)
		svc := newQuoteServiceForTest(quotes, new(mockPolicyRepository), users, new(mockVehicleRepository), now)

		quotes.On("GetByID", mock.Anything, quoteID).Return(quote, nil)
		users.On("GetByID", mock.Anything, agentID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.ConvertToPolicy(context.Background(), quoteID, agentID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
