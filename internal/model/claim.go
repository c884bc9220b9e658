package model

import (
	"time"

	"github.com/google/uuid"
)

type ClaimStatus string

const (
	ClaimStatusNew      ClaimStatus = "NEW"
	ClaimStatusInReview ClaimStatus = "IN_REVIEW"
	ClaimStatusApproved ClaimStatus = "APPROVED"
	ClaimStatusDenied   ClaimStatus = "DENIED"
	ClaimStatusClosed   ClaimStatus = "CLOSED"
)

type Claim struct {
	ID          uuid.UUID
	ClaimNumber string // "MER-CLM-<uuid>", unique, immutable
	PolicyID    uuid.UUID
	CustomerID  uuid.UUID
	Description string
	Status      ClaimStatus
	// DocumentPaths is append-only and keeps insertion order.
	DocumentPaths []string `gorm:"-"`
	CreatedAt     time.Time
}
