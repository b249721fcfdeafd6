package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/segmentio/kafka-go"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=event_handler.go -destination=../../mocks/events.go -package=mocks -typed

type LeadService interface {
	IntakeLead(ctx context.Context, lead entity.Lead) (entity.Contact, error)
}

type EventHandler struct {
	s LeadService
}

func NewEventHandler(s LeadService) *EventHandler {
	return &EventHandler{s: s}
}

// OnLeadReceived turns an inbound lead into a contact. A lead that fails
// validation is logged and dropped since replaying it cannot succeed.
func (h *EventHandler) OnLeadReceived(ctx context.Context, msg kafka.Message) error {
	var lead entity.Lead

	err := json.Unmarshal(msg.Value, &lead)
	if err != nil {
		return fmt.Errorf("unmarshal lead: %w", err)
	}

	contact, err := h.s.IntakeLead(ctx, lead)
	if err != nil {
		if errors.Is(err, entity.ErrValidationFailed) {
			slog.WarnContext(ctx, "lead dropped", "error", err, "offset", msg.Offset)
			return nil
		}

		return fmt.Errorf("intake lead: %w", err)
	}

	slog.DebugContext(ctx, "lead stored", "contact_id", contact.ID)

	return nil
}
