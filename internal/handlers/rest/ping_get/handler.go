package ping_get

import (
	"encoding/json"
	"net/http"
	"time"

	"driver-earnings/internal/handlers/rest/dto"
	"driver-earnings/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	location *time.Location
	now      func() time.Time
}

// New - ping отдаёт часы сервера в поясе отчётов, по ним видно, какое "сегодня" у сервиса.
func New(log handlerLogger, location *time.Location) *Handler {
	handlerLog := log.With()
	if location == nil {
		location = time.UTC
	}

	return &Handler{
		log:      handlerLog,
		location: location,
		now:      time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := "pong"
	res := dto.PingResponse{
		Message:  &message,
		Time:     h.now().In(h.location).Truncate(time.Second),
		Timezone: h.location.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
