package connection

import "driver-earnings/internal/entities"

func ToDomain(c *ConnectionDB) *entities.Connection {
	if c == nil {
		return nil
	}
	return &entities.Connection{
		ID:                 c.ID,
		DriverID:           c.DriverID,
		RestaurantID:       c.RestaurantID,
		DriverName:         c.DriverName,
		RestaurantName:     c.RestaurantName,
		RestaurantPostcode: c.RestaurantPostcode,
		Status:             entities.ConnectionStatus(c.Status),
		HourlyRate:         c.HourlyRate,
		MileageRate:        c.MileageRate,
		LocalRate:          c.LocalRate,
		SubscriptionEnd:    c.SubscriptionEnd,
		CreatedAt:          c.CreatedAt,
	}
}
