package report

import (
	"sort"
	"time"

	"driver-earnings/internal/entities"
	"github.com/shopspring/decimal"
)

// ISO-дата: лексикографический порядок совпадает с хронологическим.
const dayLabelLayout = "2006-01-02"

// BuildChart раскладывает завершённые доставки по дням (по created_at в поясе now).
// Оплата смены приписывается дню её начала и добавляется только к дням,
// в которых есть доставки. Пустой результат заменяется точкой "No Data".
func BuildChart(completed []entities.Delivery, shifts []entities.Shift, hourlyRate float64, now time.Time) entities.Chart {
	loc := now.Location()

	earnings := make(map[string]decimal.Decimal)
	mileage := make(map[string]float64)
	for i := range completed {
		label := dayLabel(completed[i].CreatedAt, loc)
		earnings[label] = earnings[label].Add(money(completed[i].Earning))
		mileage[label] += nonNegative(completed[i].DistanceMiles)
	}

	if len(earnings) == 0 {
		return entities.Chart{
			Labels:   []string{entities.NoDataLabel},
			Earnings: []float64{0},
			Mileage:  []float64{0},
		}
	}

	for i := range shifts {
		label := dayLabel(shifts[i].StartTime, loc)
		dayEarnings, ok := earnings[label]
		if !ok {
			continue
		}
		shiftPay := HourlyEarnings(hourlyRate, ShiftMinutes(shifts[i], now))
		earnings[label] = dayEarnings.Add(money(shiftPay))
	}

	labels := make([]string, 0, len(earnings))
	for label := range earnings {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	chart := entities.Chart{
		Labels:   labels,
		Earnings: make([]float64, len(labels)),
		Mileage:  make([]float64, len(labels)),
	}
	for i, label := range labels {
		chart.Earnings[i] = earnings[label].InexactFloat64()
		chart.Mileage[i] = mileage[label]
	}

	return chart
}

func dayLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayLabelLayout)
}
