package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mercuryins/pas-service/internal/model"
)

// VehicleRegistry resolves vehicles by VIN, creating them on first
// sight. VINs are globally unique; a record is never updated or
// deleted through this path.
type VehicleRegistry struct {
	vehicles VehicleRepository
}

func NewVehicleRegistry(vehicles VehicleRepository) *VehicleRegistry {
	return &VehicleRegistry{vehicles: vehicles}
}

// ResolveOrCreate returns the existing vehicle for the VIN unchanged;
// make, model and year on the request are ignored on a hit. The owner
// customer must already be resolved by the caller.
func (r *VehicleRegistry) ResolveOrCreate(ctx context.Context, vin, make, vehicleModel string, year int, ownerID uuid.UUID) (*model.Vehicle, error) {
	existing, err := r.vehicles.GetByVIN(ctx, vin)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	vehicle := &model.Vehicle{
		ID:         uuid.New(),
		Make:       make,
		Model:      vehicleModel,
		Year:       year,
		VIN:        vin,
		CustomerID: ownerID,
	}
	if err := r.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}
