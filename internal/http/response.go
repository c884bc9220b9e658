package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mercuryins/pas-service/internal/model"
)

// Hand-written projections per entity. Every field is mapped
// explicitly, so a model change that drops a field fails to compile
// instead of silently vanishing from responses.

type userResponse struct {
	ID            uuid.UUID  `json:"id"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Email         string     `json:"email"`
	Role          model.Role `json:"role"`
	DOB           *string    `json:"dob"`
	LicenseNumber *string    `json:"licenseNumber"`
}

func toUserResponse(user *model.User) userResponse {
	var dob *string
	if user.DOB != nil {
		formatted := user.DOB.Format("2006-01-02")
		dob = &formatted
	}
	return userResponse{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		Role:          user.Role,
		DOB:           dob,
		LicenseNumber: user.LicenseNumber,
	}
}

type quoteResponse struct {
	ID              uuid.UUID         `json:"id"`
	QuoteNumber     string            `json:"quoteNumber"`
	VehicleID       uuid.UUID         `json:"vehicleId"`
	CustomerID      uuid.UUID         `json:"customerId"`
	PremiumAmount   decimal.Decimal   `json:"premiumAmount"`
	CoverageDetails string            `json:"coverageDetails"`
	Status          model.QuoteStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
}

func toQuoteResponse(quote *model.Quote) quoteResponse {
	return quoteResponse{
		ID:              quote.ID,
		QuoteNumber:     quote.QuoteNumber,
		VehicleID:       quote.VehicleID,
		CustomerID:      quote.CustomerID,
		PremiumAmount:   quote.PremiumAmount,
		CoverageDetails: quote.CoverageDetails,
		Status:          quote.Status,
		CreatedAt:       quote.CreatedAt,
	}
}

func toQuoteResponses(quotes []model.Quote) []quoteResponse {
	responses := make([]quoteResponse, 0, len(quotes))
	for i := range quotes {
		responses = append(responses, toQuoteResponse(&quotes[i]))
	}
	return responses
}

type policyResponse struct {
	ID            uuid.UUID          `json:"id"`
	PolicyNumber  string             `json:"policyNumber"`
	QuoteID       uuid.UUID          `json:"quoteId"`
	VehicleID     uuid.UUID          `json:"vehicleId"`
	CustomerID    uuid.UUID          `json:"customerId"`
	AgentID       uuid.UUID          `json:"agentId"`
	StartDate     string             `json:"startDate"`
	EndDate       string             `json:"endDate"`
	PremiumAmount decimal.Decimal    `json:"premiumAmount"`
	Status        model.PolicyStatus `json:"status"`
}

func toPolicyResponse(policy *model.Policy) policyResponse {
	return policyResponse{
		ID:            policy.ID,
		PolicyNumber:  policy.PolicyNumber,
		QuoteID:       policy.QuoteID,
		VehicleID:     policy.VehicleID,
		CustomerID:    policy.CustomerID,
		AgentID:       policy.AgentID,
		StartDate:     policy.StartDate.Format("2006-01-02"),
		EndDate:       policy.EndDate.Format("2006-01-02"),
		PremiumAmount: policy.PremiumAmount,
		Status:        policy.Status,
	}
}

func toPolicyResponses(policies []model.Policy) []policyResponse {
	responses := make([]policyResponse, 0, len(policies))
	for i := range policies {
		responses = append(responses, toPolicyResponse(&policies[i]))
	}
	return responses
}

type claimResponse struct {
	ID            uuid.UUID         `json:"id"`
	ClaimNumber   string            `json:"claimNumber"`
	PolicyID      uuid.UUID         `json:"policyId"`
	CustomerID    uuid.UUID         `json:"customerId"`
	Description   string            `json:"description"`
	Status        model.ClaimStatus `json:"status"`
	DocumentPaths []string          `json:"documentPaths"`
	CreatedAt     time.Time         `json:"createdAt"`
}

func toClaimResponse(claim *model.Claim) claimResponse {
	paths := claim.DocumentPaths
	if paths == nil {
		paths = []string{}
	}
	return claimResponse{
		ID:            claim.ID,
		ClaimNumber:   claim.ClaimNumber,
		PolicyID:      claim.PolicyID,
		CustomerID:    claim.CustomerID,
		Description:   claim.Description,
		Status:        claim.Status,
		DocumentPaths: paths,
		CreatedAt:     claim.CreatedAt,
	}
}

func toClaimResponses(claims []model.Claim) []claimResponse {
	responses := make([]claimResponse, 0, len(claims))
	for i := range claims {
		responses = append(responses, toClaimResponse(&claims[i]))
	}
	return responses
}
