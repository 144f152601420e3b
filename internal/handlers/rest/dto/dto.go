package dto

import (
	"time"

	"github.com/google/uuid"
)

type PingResponse struct {
	Message  *string   `json:"message,omitempty"`
	Time     time.Time `json:"time"`
	Timezone string    `json:"timezone"`
}

type Window struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end,omitempty"`
}

type Rates struct {
	Hourly  float64 `json:"hourly"`
	Mileage float64 `json:"mileage"`
	Local   float64 `json:"local"`
}

type Chart struct {
	Labels   []string  `json:"labels"`
	Earnings []float64 `json:"earnings"`
	Mileage  []float64 `json:"mileage"`
}

type Report struct {
	Period                 string     `json:"period"`
	Window                 Window     `json:"window"`
	TotalEarnings          float64    `json:"total_earnings"`
	TotalMileage           float64    `json:"total_mileage"`
	TotalShiftMinutes      float64    `json:"total_shift_minutes"`
	HourlyEarnings         float64    `json:"hourly_earnings"`
	AggregatedEarnings     float64    `json:"aggregated_earnings"`
	AvgDeliveryTimeMinutes float64    `json:"avg_delivery_time_minutes"`
	DeliveriesPerHour      float64    `json:"deliveries_per_hour"`
	AvgSpeed               float64    `json:"avg_speed"`
	CompletedDeliveries    int        `json:"completed_deliveries"`
	EfficiencyScore        int        `json:"efficiency_score"`
	FirstShiftStart        *time.Time `json:"first_shift_start,omitempty"`
	Rates                  Rates      `json:"rates"`
	Chart                  Chart      `json:"chart"`
}

type Dashboard struct {
	Window             Window     `json:"window"`
	ConnectionID       *uuid.UUID `json:"connection_id,omitempty"`
	DeliveryEarnings   float64    `json:"delivery_earnings"`
	ShiftMinutes       float64    `json:"shift_minutes"`
	ShiftDuration      string     `json:"shift_duration"`
	FirstShiftStart    string     `json:"first_shift_start"`
	HourlyEarnings     float64    `json:"hourly_earnings"`
	TotalEarnings      float64    `json:"total_earnings"`
	ActiveShift        *Shift     `json:"active_shift,omitempty"`
	DeliveriesLogged   int        `json:"deliveries_logged"`
	SubscriptionActive bool       `json:"subscription_active"`
}

type Delivery struct {
	ID            uuid.UUID  `json:"id"`
	DriverID      uuid.UUID  `json:"driver_id"`
	RestaurantID  uuid.UUID  `json:"restaurant_id"`
	ConnectionID  *uuid.UUID `json:"connection_id,omitempty"`
	ShiftID       *uuid.UUID `json:"shift_id,omitempty"`
	Earning       float64    `json:"earning"`
	DistanceMiles float64    `json:"distance_miles"`
	Address       string     `json:"address"`
	Postcode      string     `json:"postcode"`
	Status        string     `json:"status"`
	StartTime     time.Time  `json:"start_time"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

type Shift struct {
	ID           uuid.UUID  `json:"id"`
	DriverID     uuid.UUID  `json:"driver_id"`
	RestaurantID uuid.UUID  `json:"restaurant_id"`
	ConnectionID *uuid.UUID `json:"connection_id,omitempty"`
	Status       string     `json:"status"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
}

type DeliveryCreateRequest struct {
	ProfileID     uuid.UUID `json:"profile_id"`
	ConnectionID  uuid.UUID `json:"connection_id"`
	DistanceMiles float64   `json:"distance_miles"`
	Address       string    `json:"address"`
	Postcode      string    `json:"postcode"`
}

type DeliveryCompleteRequest struct {
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type ShiftToggleRequest struct {
	ProfileID    uuid.UUID `json:"profile_id"`
	ConnectionID uuid.UUID `json:"connection_id"`
}

type ShiftToggleResponse struct {
	Shift  Shift  `json:"shift"`
	Action string `json:"action"`
}
