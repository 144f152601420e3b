package report

import "math"

// Опорные значения "хорошо" и "плохо" для каждой метрики.
const (
	deliveriesPerHourBad  = 1.5
	deliveriesPerHourGood = 4.0

	avgDeliveryTimeGood = 15.0
	avgDeliveryTimeBad  = 40.0

	avgSpeedBad  = 10.0
	avgSpeedGood = 30.0

	deliveriesPerHourWeight = 0.4
	avgDeliveryTimeWeight   = 0.3
	avgSpeedWeight          = 0.3
)

// EfficiencyScore сводит три метрики в целое число от 0 до 100.
// Каждая метрика линейно переводится в 0..100 между "плохо" и "хорошо"
// и обрезается отдельно, затем берётся взвешенная сумма.
func EfficiencyScore(deliveriesPerHour, avgDeliveryTimeMinutes, avgSpeed float64) int {
	deliveriesPerHourScore := scale(deliveriesPerHour, deliveriesPerHourBad, deliveriesPerHourGood)
	avgSpeedScore := scale(avgSpeed, avgSpeedBad, avgSpeedGood)
	// время доставки инвертировано: меньше - лучше
	avgDeliveryTimeScore := clamp(1-(avgDeliveryTimeMinutes-avgDeliveryTimeGood)/(avgDeliveryTimeBad-avgDeliveryTimeGood), 0, 1) * 100
	if !isFinite(avgDeliveryTimeMinutes) {
		avgDeliveryTimeScore = 0
	}

	score := deliveriesPerHourWeight*deliveriesPerHourScore +
		avgDeliveryTimeWeight*avgDeliveryTimeScore +
		avgSpeedWeight*avgSpeedScore

	return int(math.Round(clamp(score, 0, 100)))
}

func scale(x, bad, good float64) float64 {
	if !isFinite(x) {
		return 0
	}
	return clamp((x-bad)/(good-bad), 0, 1) * 100
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
