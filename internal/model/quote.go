package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuoteStatus string

const (
	QuoteStatusGenerated QuoteStatus = "GENERATED"
	QuoteStatusSaved     QuoteStatus = "SAVED"
	QuoteStatusConverted QuoteStatus = "CONVERTED" // terminal
)

type Quote struct {
	ID              uuid.UUID
	QuoteNumber     string // "MER-QUO-<uuid>", unique, immutable
	VehicleID       uuid.UUID
	CustomerID      uuid.UUID
	PremiumAmount   decimal.Decimal
	CoverageDetails string
	Status          QuoteStatus
	CreatedAt       time.Time
}
