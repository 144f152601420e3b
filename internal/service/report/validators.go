package report

import (
	"github.com/google/uuid"
)

func isValidProfileID(id uuid.UUID) bool {
	return id != uuid.Nil
}

func isValidPeriod(period string) bool {
	switch period {
	case "today", "week", "month", "year":
		return true
	default:
		return false
	}
}

func isValidDayPolicy(policy string) bool {
	switch policy {
	case "business", "calendar":
		return true
	default:
		return false
	}
}
