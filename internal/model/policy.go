package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PolicyStatus string

const (
	PolicyStatusActive    PolicyStatus = "ACTIVE"
	PolicyStatusExpired   PolicyStatus = "EXPIRED"
	PolicyStatusCancelled PolicyStatus = "CANCELLED"
)

// Policy binds coverage derived from exactly one Quote. VehicleID,
// CustomerID and PremiumAmount are copied from the quote at creation
// time and evolve independently afterwards.
type Policy struct {
	ID            uuid.UUID
	PolicyNumber  string // "MER-POL-<millis>", unique, immutable
	QuoteID       uuid.UUID
	VehicleID     uuid.UUID
	CustomerID    uuid.UUID
	AgentID       uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	PremiumAmount decimal.Decimal
	Status        PolicyStatus
}

// PolicyDocument carries everything the schedule PDF needs.
type PolicyDocument struct {
	Policy   Policy
	Quote    Quote
	Vehicle  Vehicle
	Customer User
	Agent    User
}

// AgentBook is an agent's set of in-force policies for the xlsx export.
type AgentBook struct {
	Agent        User
	Policies     []Policy
	TotalPremium decimal.Decimal
}
