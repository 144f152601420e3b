package delivery

import (
	"math"

	"github.com/google/uuid"
)

func isValidID(id uuid.UUID) bool {
	return id != uuid.Nil
}

func isValidDistance(distanceMiles float64) bool {
	return !math.IsNaN(distanceMiles) && !math.IsInf(distanceMiles, 0) && distanceMiles >= 0
}
