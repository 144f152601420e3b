package repository

import (
	"fmt"
	"strings"

	"driver-earnings/internal/entities"
)

// OwnerColumn - колонка, по которой записи принадлежат профилю данной роли.
func OwnerColumn(role entities.Role) (string, error) {
	switch role {
	case entities.RoleDriver:
		return "driver_id", nil
	case entities.RoleRestaurant:
		return "restaurant_id", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
}

func ColumnList(columns []string) string {
	return strings.Join(columns, ", ")
}
