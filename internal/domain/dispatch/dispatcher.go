// Package dispatch routes classified actions to their handler collaborators.
// It owns no business logic: one action in, one handler out.
package dispatch

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/FACorreiaa/contabot/internal/domain/interpret"
)

// FallbackReply is returned when an action type has no registered handler.
// With handlers registered for the full closed set this is unreachable, but
// the dispatcher never raises for it either way.
const FallbackReply = "No reconozco esa acción todavía. Intenta decirlo de otra forma."

// Handler is an outbound ledger-write or report collaborator. Expected
// domain outcomes ("no encontré ese cliente") come back as the display
// string; only infrastructure failures surface as errors.
type Handler interface {
	Handle(ctx context.Context, action interpret.Action, userID, tenantID uuid.UUID) (string, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, action interpret.Action, userID, tenantID uuid.UUID) (string, error)

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, action interpret.Action, userID, tenantID uuid.UUID) (string, error) {
	return f(ctx, action, userID, tenantID)
}

// Dispatcher maps each action type to exactly one handler.
type Dispatcher struct {
	handlers map[interpret.ActionType]Handler
	logger   *slog.Logger
}

// New creates an empty dispatcher.
func New(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[interpret.ActionType]Handler),
		logger:   logger,
	}
}

// Register binds a handler to an action type, replacing any previous one.
func (d *Dispatcher) Register(t interpret.ActionType, h Handler) {
	d.handlers[t] = h
}

// Registered reports whether an action type has a handler bound.
func (d *Dispatcher) Registered(t interpret.ActionType) bool {
	_, ok := d.handlers[t]
	return ok
}

// Dispatch invokes the single handler registered for the action and returns
// its display string. Caller identifiers pass through unchanged; the
// dispatcher reads nothing from them. An unregistered action type yields the
// static fallback string, never an error.
func (d *Dispatcher) Dispatch(ctx context.Context, action interpret.Action, userID, tenantID uuid.UUID) (string, error) {
	h, ok := d.handlers[action.Type]
	if !ok {
		d.logger.Warn("no handler registered for action", "action", action.Type)
		dispatchTotal.WithLabelValues(string(action.Type), outcomeUnregistered).Inc()
		return FallbackReply, nil
	}

	reply, err := h.Handle(ctx, action, userID, tenantID)
	if err != nil {
		dispatchTotal.WithLabelValues(string(action.Type), outcomeError).Inc()
		return "", err
	}
	dispatchTotal.WithLabelValues(string(action.Type), outcomeOK).Inc()
	return reply, nil
}
