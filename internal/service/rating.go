package service

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	youngDriverAgeLimit = 25
	oldVehicleAgeYears  = 10
)

var (
	basePremium          = decimal.NewFromInt(3000)
	youngDriverSurcharge = decimal.NewFromFloat(0.20)
	oldVehicleSurcharge  = decimal.NewFromFloat(0.15)
)

// RatingEngine computes a premium from driver age and vehicle year.
// Deterministic and pure apart from the injected clock.
type RatingEngine struct {
	now func() time.Time
}

func NewRatingEngine() *RatingEngine {
	return &RatingEngine{now: time.Now}
}

// Rate applies both surcharges on top of the base, each computed from
// the base itself, never compounding on the other. Implausible inputs
// are accepted as-is; plausibility checks belong to the caller.
func (e *RatingEngine) Rate(driverAge, vehicleYear int) decimal.Decimal {
	premium := basePremium
	if driverAge < youngDriverAgeLimit {
		premium = premium.Add(basePremium.Mul(youngDriverSurcharge))
	}
	if e.now().Year()-vehicleYear > oldVehicleAgeYears {
		premium = premium.Add(basePremium.Mul(oldVehicleSurcharge))
	}
	return premium
}
