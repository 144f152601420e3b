package shift

import "driver-earnings/internal/entities"

func ToDomain(s *ShiftDB) *entities.Shift {
	if s == nil {
		return nil
	}
	return &entities.Shift{
		ID:           s.ID,
		DriverID:     s.DriverID,
		RestaurantID: s.RestaurantID,
		ConnectionID: s.ConnectionID,
		Status:       entities.ShiftStatus(s.Status),
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		CreatedAt:    s.CreatedAt,
	}
}

func ToDomainList(shiftsDB []ShiftDB) []entities.Shift {
	if len(shiftsDB) == 0 {
		return []entities.Shift{}
	}

	result := make([]entities.Shift, len(shiftsDB))
	for i := range shiftsDB {
		result[i] = *ToDomain(&shiftsDB[i])
	}
	return result
}

func FromDomainModify(s *entities.ShiftModify) *ShiftModifyDB {
	if s == nil {
		return nil
	}
	shiftModifyDB := &ShiftModifyDB{
		ID:           s.ID,
		DriverID:     s.DriverID,
		RestaurantID: s.RestaurantID,
		ConnectionID: s.ConnectionID,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
	}

	if s.Status != nil {
		status := s.Status.String()
		shiftModifyDB.Status = &status
	}

	return shiftModifyDB
}
