package profile

import "driver-earnings/internal/entities"

// ToDomain сохраняет NULL ставки как nil: "не задана" и "задана нулём"
// различаются при выборе ставки.
func ToDomain(p *ProfileDB) *entities.Profile {
	if p == nil {
		return nil
	}
	return &entities.Profile{
		ID:                 p.ID,
		Name:               p.Name,
		Role:               entities.Role(p.Role),
		HourlyRate:         p.HourlyRate,
		MileageRate:        p.MileageRate,
		LocalRate:          p.LocalRate,
		ActiveConnectionID: p.ActiveConnectionID,
	}
}
