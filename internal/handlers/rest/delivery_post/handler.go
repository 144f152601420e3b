package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"driver-earnings/internal/entities"
	"driver-earnings/internal/handlers/rest/dto"
	"driver-earnings/internal/service/delivery"
	"driver-earnings/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.DeliveryCreateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryEntity, err := h.service.LogDelivery(r.Context(), entities.DeliveryCreate{
		ProfileID:     request.ProfileID,
		ConnectionID:  request.ConnectionID,
		DistanceMiles: request.DistanceMiles,
		Address:       request.Address,
		Postcode:      request.Postcode,
	})
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidProfileID),
			errors.Is(err, delivery.ErrInvalidConnectionID),
			errors.Is(err, delivery.ErrInvalidDistance):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrProfileNotFound),
			errors.Is(err, delivery.ErrConnectionNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrNotDriver),
			errors.Is(err, delivery.ErrConnectionNotOwned),
			errors.Is(err, delivery.ErrSubscriptionInactive):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, delivery.ErrConnectionNotAccepted):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("log delivery")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromDelivery(deliveryEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
