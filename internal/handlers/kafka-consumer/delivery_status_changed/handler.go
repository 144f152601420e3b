package delivery_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"driver-earnings/internal/entities"
	deliveryservice "driver-earnings/internal/service/delivery"
	"driver-earnings/pkg/logger"
	"github.com/IBM/sarama"
)

type Handler struct {
	deliveryService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, deliveryService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "delivery.status.changed"),
	)

	return &Handler{
		deliveryService:          deliveryService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("delivery.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("delivery.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение. true - прервать ConsumeClaim,
// сообщение при этом не коммитится и будет прочитано снова.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("delivery.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("delivery", event.DeliveryID.String()),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	if entities.DeliveryStatus(event.Status) != entities.DeliveryCompleted {
		msgLog.Warn("delivery.status.changed handler skipped unsupported status")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("delivery.status.changed processing")

	var completedAt time.Time
	if event.CompletedAt != nil {
		completedAt = *event.CompletedAt
	}

	delivery, err := h.deliveryService.CompleteDelivery(ctx, event.DeliveryID, completedAt)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, deliveryservice.ErrAlreadyCompleted):
			msgLog.Info("delivery.status.changed handler delivery already completed")

		case errors.Is(err, deliveryservice.ErrDeliveryNotFound),
			errors.Is(err, deliveryservice.ErrInvalidDeliveryID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.status.changed handler unknown delivery")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("delivery.status.changed handler failed to complete delivery")
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("delivery", delivery.ID.String()),
		logger.NewField("current_status", delivery.Status.String()),
		logger.NewField("offset", message.Offset),
	).Info("delivery.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
