package model

import "github.com/google/uuid"

type Vehicle struct {
	ID         uuid.UUID
	Make       string
	Model      string
	Year       int
	VIN        string // unique, immutable once created
	CustomerID uuid.UUID
}
