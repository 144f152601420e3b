package report_test

import (
	"time"

	"driver-earnings/internal/entities"
	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
)

var (
	driverID     = uuid.MustParse("8a6e0804-2bd0-4672-b79d-d97027f9071a")
	restaurantID = uuid.MustParse("0c6d4b1e-5d7e-4a3a-9a53-0b0e1b3b7f11")
	connectionA  = uuid.MustParse("3f1c2b7e-9d1e-4a55-8d6f-2b9f0b6f2c01")
	connectionB  = uuid.MustParse("3f1c2b7e-9d1e-4a55-8d6f-2b9f0b6f2c02")
)

// day10 - опорные сутки для тестов, 10 марта 2026 UTC.
func day10(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
}

func completedDelivery(createdAt time.Time, minutes int, earning, miles float64) entities.Delivery {
	return entities.Delivery{
		ID:            uuid.New(),
		DriverID:      driverID,
		RestaurantID:  restaurantID,
		ConnectionID:  pointer.To(connectionA),
		Earning:       earning,
		DistanceMiles: miles,
		Status:        entities.DeliveryCompleted,
		StartTime:     createdAt,
		CompletedAt:   pointer.To(createdAt.Add(time.Duration(minutes) * time.Minute)),
		CreatedAt:     createdAt,
	}
}

func ongoingDelivery(createdAt time.Time, earning, miles float64) entities.Delivery {
	return entities.Delivery{
		ID:            uuid.New(),
		DriverID:      driverID,
		RestaurantID:  restaurantID,
		ConnectionID:  pointer.To(connectionA),
		Earning:       earning,
		DistanceMiles: miles,
		Status:        entities.DeliveryOngoing,
		StartTime:     createdAt,
		CreatedAt:     createdAt,
	}
}

func endedShift(start, end time.Time) entities.Shift {
	return entities.Shift{
		ID:           uuid.New(),
		DriverID:     driverID,
		RestaurantID: restaurantID,
		ConnectionID: pointer.To(connectionA),
		Status:       entities.ShiftEnded,
		StartTime:    start,
		EndTime:      pointer.To(end),
		CreatedAt:    start,
	}
}

func activeShift(start time.Time) entities.Shift {
	return entities.Shift{
		ID:           uuid.New(),
		DriverID:     driverID,
		RestaurantID: restaurantID,
		ConnectionID: pointer.To(connectionA),
		Status:       entities.ShiftActive,
		StartTime:    start,
		CreatedAt:    start,
	}
}

func modified[T any](record T, set func(*T)) T {
	set(&record)
	return record
}
