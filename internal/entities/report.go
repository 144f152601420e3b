package entities

import (
	"time"

	"github.com/google/uuid"
)

type ReportQuery struct {
	ProfileID    uuid.UUID
	ConnectionID *uuid.UUID
	Period       Period
	Policy       DayPolicy
	Now          time.Time
}

type DashboardQuery struct {
	ProfileID    uuid.UUID
	ConnectionID *uuid.UUID
	Now          time.Time
}

// RecordFilter - что читать из хранилища для отчёта. Колонка владельца
// (driver_id или restaurant_id) выбирается по роли.
type RecordFilter struct {
	ProfileID    uuid.UUID
	Role         Role
	ConnectionID *uuid.UUID
	Window       Window
}

// ReportInput - всё, от чего зависит отчёт. Часы внутри не читаются.
type ReportInput struct {
	Period     Period
	Window     Window
	Filter     ConnectionFilter
	Deliveries []Delivery
	Shifts     []Shift
	Connection *Connection
	Profile    *Profile
	Now        time.Time
}

type Report struct {
	Period                 Period
	Window                 Window
	TotalEarnings          float64
	TotalMileage           float64
	TotalShiftMinutes      float64
	HourlyEarnings         float64
	AggregatedEarnings     float64
	AvgDeliveryTimeMinutes float64
	DeliveriesPerHour      float64
	AvgSpeed               float64
	CompletedDeliveries    int
	EfficiencyScore        int
	FirstShiftStart        *time.Time
	Rates                  Rates
	Chart                  Chart
}

const NoDataLabel = "No Data"

// Chart - выровненные по дням ряды: Earnings[i] и Mileage[i] относятся к Labels[i].
type Chart struct {
	Labels   []string
	Earnings []float64
	Mileage  []float64
}

type Dashboard struct {
	Window             Window
	ConnectionID       *uuid.UUID
	DeliveryEarnings   float64
	ShiftMinutes       float64
	ShiftDuration      string
	FirstShiftStart    string
	HourlyEarnings     float64
	TotalEarnings      float64
	ActiveShift        *Shift
	DeliveriesLogged   int
	SubscriptionActive bool
}
