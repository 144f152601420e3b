package entities

import "errors"

// Ошибки "не найдено" возвращаются репозиториями и общие для нескольких сервисов.
var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrConnectionNotFound = errors.New("connection not found")
	ErrDeliveryNotFound   = errors.New("delivery not found")
	ErrShiftNotFound      = errors.New("shift not found")
)
