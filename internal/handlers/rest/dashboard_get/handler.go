package dashboard_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"driver-earnings/internal/entities"
	"driver-earnings/internal/handlers/rest/dto"
	"driver-earnings/internal/service/report"
	"driver-earnings/pkg/logger"
	"github.com/google/uuid"
)

type Handler struct {
	log      handlerLogger
	service  Service
	location *time.Location
	now      func() time.Time
}

func New(log handlerLogger, service Service, location *time.Location) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "dashboard_get"),
	)

	return &Handler{
		service:  service,
		log:      handlerLog,
		location: location,
		now:      time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	profileID, err := uuid.Parse(params.Get("profile_id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var connectionID *uuid.UUID
	if raw := params.Get("connection_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		connectionID = &id
	}

	at, err := dto.ParseAt(params.Get("at"), h.location, h.now)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	dashboard, err := h.service.Dashboard(r.Context(), entities.DashboardQuery{
		ProfileID:    profileID,
		ConnectionID: connectionID,
		Now:          at,
	})
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidProfileID),
			errors.Is(err, report.ErrMissingNow):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, report.ErrProfileNotFound),
			errors.Is(err, report.ErrConnectionNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, report.ErrConnectionNotOwned):
			w.WriteHeader(http.StatusForbidden)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("profile_id", profileID.String()),
			).Error("build dashboard")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromDashboard(dashboard))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
