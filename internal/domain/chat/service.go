// Package chat is the request boundary of the assistant: one user message
// in, one well-formed reply out, whatever happens underneath.
package chat

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/contabot/internal/domain/interpret"
	"github.com/FACorreiaa/contabot/internal/domain/ledger"
)

// Uniform user-facing messages for failures underneath the boundary. The
// reply envelope stays well-formed even when the action could not complete.
const (
	replyActionFailed        = "No pude completar esa acción ahora mismo. Inténtalo de nuevo en un momento."
	replyFallbackUnavailable = "No entendí tu mensaje y ahora mismo no puedo ayudarte con eso. Inténtalo de nuevo."
)

// suggestionLimit caps how many example phrasings the fallback receives.
const suggestionLimit = 3

// Classifier turns one raw message into exactly one action.
type Classifier interface {
	Classify(raw string) interpret.Action
}

// Dispatcher routes a classified action to its handler collaborator.
type Dispatcher interface {
	Dispatch(ctx context.Context, action interpret.Action, userID, tenantID uuid.UUID) (string, error)
}

// SnapshotBuilder aggregates the tenant's financial state for the fallback.
type SnapshotBuilder interface {
	Build(ctx context.Context, tenantID uuid.UUID) (ledger.Snapshot, error)
}

// Fallback is the conversational collaborator used when no action was
// classified. The shipped implementation is template-based; a generative
// one plugs in behind the same interface.
type Fallback interface {
	Respond(ctx context.Context, raw string, snapshot ledger.Snapshot, suggestions []string) (string, error)
}

// Reply is the envelope every message handling produces.
type Reply struct {
	Message    string `json:"message"`
	ActionType string `json:"action_type"`
	// Handled is true when a structured action ran to completion.
	Handled bool `json:"handled"`
}

// Service wires classification, dispatch and the conversational fallback.
type Service struct {
	classifier Classifier
	dispatcher Dispatcher
	snapshots  SnapshotBuilder
	fallback   Fallback
	logger     *slog.Logger
	tracer     trace.Tracer
}

// NewService creates the chat service.
func NewService(classifier Classifier, dispatcher Dispatcher, snapshots SnapshotBuilder, fallback Fallback, logger *slog.Logger) *Service {
	return &Service{
		classifier: classifier,
		dispatcher: dispatcher,
		snapshots:  snapshots,
		fallback:   fallback,
		logger:     logger,
		tracer:     otel.Tracer("github.com/FACorreiaa/contabot/internal/domain/chat"),
	}
}

// HandleMessage interprets one message and always returns a well-formed
// reply: handler and fallback failures are logged and converted into
// uniform user-facing messages rather than propagated.
func (s *Service) HandleMessage(ctx context.Context, userID, tenantID uuid.UUID, raw string) Reply {
	ctx, span := s.tracer.Start(ctx, "chat.HandleMessage")
	defer span.End()

	action := s.classifier.Classify(raw)
	span.SetAttributes(attribute.String("chat.action_type", string(action.Type)))
	logger := s.logger.With("tenant_id", tenantID, "action", action.Type)

	if action.IsNone() {
		return s.converse(ctx, logger, tenantID, raw)
	}

	message, err := s.dispatcher.Dispatch(ctx, action, userID, tenantID)
	if err != nil {
		logger.Error("action handler failed", "error", err)
		return Reply{Message: replyActionFailed, ActionType: string(action.Type)}
	}

	logger.Info("action handled")
	return Reply{Message: message, ActionType: string(action.Type), Handled: true}
}

// converse runs the no-action path: snapshot plus suggestions into the
// conversational collaborator. A failed snapshot degrades to an empty one
// rather than blocking the conversation.
func (s *Service) converse(ctx context.Context, logger *slog.Logger, tenantID uuid.UUID, raw string) Reply {
	snapshot, err := s.snapshots.Build(ctx, tenantID)
	if err != nil {
		logger.Warn("snapshot aggregation failed, continuing without it", "error", err)
		snapshot = ledger.Snapshot{}
	}

	message, err := s.fallback.Respond(ctx, raw, snapshot, interpret.SuggestCommands(raw, suggestionLimit))
	if err != nil {
		logger.Error("conversational fallback failed", "error", err)
		return Reply{Message: replyFallbackUnavailable, ActionType: string(interpret.ActionNone)}
	}
	return Reply{Message: message, ActionType: string(interpret.ActionNone)}
}
