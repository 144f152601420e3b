package report

import "driver-earnings/internal/entities"

// ResolveRates выбирает каждую ставку отдельно: ставка связи, если задана,
// иначе ставка профиля, иначе ноль.
func ResolveRates(connection *entities.Connection, profile *entities.Profile) entities.Rates {
	var connHourly, connMileage, connLocal *float64
	if connection != nil {
		connHourly, connMileage, connLocal = connection.HourlyRate, connection.MileageRate, connection.LocalRate
	}

	var profHourly, profMileage, profLocal *float64
	if profile != nil {
		profHourly, profMileage, profLocal = profile.HourlyRate, profile.MileageRate, profile.LocalRate
	}

	return entities.Rates{
		Hourly:  firstRate(connHourly, profHourly),
		Mileage: firstRate(connMileage, profMileage),
		Local:   firstRate(connLocal, profLocal),
	}
}

func firstRate(rates ...*float64) float64 {
	for _, rate := range rates {
		if rate != nil && isFinite(*rate) {
			return *rate
		}
	}
	return 0
}
