package shift_toggle_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"driver-earnings/internal/handlers/rest/dto"
	"driver-earnings/internal/service/shift"
	"driver-earnings/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	now     func() time.Time
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		now:     time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.ShiftToggleRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	toggle, err := h.service.ToggleShift(r.Context(), request.ProfileID, request.ConnectionID, h.now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, shift.ErrInvalidProfileID),
			errors.Is(err, shift.ErrInvalidConnectionID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shift.ErrProfileNotFound),
			errors.Is(err, shift.ErrConnectionNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shift.ErrNotDriver),
			errors.Is(err, shift.ErrConnectionNotOwned):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, shift.ErrActiveShiftExists),
			errors.Is(err, shift.ErrConnectionNotAccepted):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("toggle shift")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromShiftToggle(toggle))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
