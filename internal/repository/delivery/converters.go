package delivery

import (
	"driver-earnings/internal/entities"
)

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:            d.ID,
		DriverID:      d.DriverID,
		RestaurantID:  d.RestaurantID,
		ConnectionID:  d.ConnectionID,
		ShiftID:       d.ShiftID,
		Earning:       valueOrZero(d.Earning),
		DistanceMiles: valueOrZero(d.DistanceMiles),
		Address:       d.Address,
		Postcode:      d.Postcode,
		Status:        entities.DeliveryStatus(d.Status),
		StartTime:     d.StartTime,
		CompletedAt:   d.CompletedAt,
		CreatedAt:     d.CreatedAt,
	}
}

func ToDomainList(deliveriesDB []DeliveryDB) []entities.Delivery {
	if len(deliveriesDB) == 0 {
		return []entities.Delivery{}
	}

	result := make([]entities.Delivery, len(deliveriesDB))
	for i := range deliveriesDB {
		result[i] = *ToDomain(&deliveriesDB[i])
	}
	return result
}

func FromDomainModify(d *entities.DeliveryModify) *DeliveryModifyDB {
	if d == nil {
		return nil
	}
	deliveryModifyDB := &DeliveryModifyDB{
		ID:            d.ID,
		DriverID:      d.DriverID,
		RestaurantID:  d.RestaurantID,
		ConnectionID:  d.ConnectionID,
		ShiftID:       d.ShiftID,
		Earning:       d.Earning,
		DistanceMiles: d.DistanceMiles,
		Address:       d.Address,
		Postcode:      d.Postcode,
		StartTime:     d.StartTime,
		CompletedAt:   d.CompletedAt,
	}

	if d.Status != nil {
		status := d.Status.String()
		deliveryModifyDB.Status = &status
	}

	return deliveryModifyDB
}

// NULL в числовых колонках читается как ноль.
func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
