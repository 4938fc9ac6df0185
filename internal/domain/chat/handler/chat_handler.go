// Package handler exposes the chat service over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/FACorreiaa/contabot/internal/domain/chat"
	"github.com/FACorreiaa/contabot/pkg/auth"
)

// maxMessageBytes bounds the request body; chat messages are short.
const maxMessageBytes = 16 << 10

// ChatService is the slice of the chat service the handler needs.
type ChatService interface {
	HandleMessage(ctx context.Context, userID, tenantID uuid.UUID, raw string) chat.Reply
}

// ChatHandler serves POST /v1/chat/messages.
type ChatHandler struct {
	service ChatService
	logger  *slog.Logger
}

// NewChatHandler constructs a new handler.
func NewChatHandler(service ChatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{service: service, logger: logger}
}

type messageRequest struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleMessage decodes one chat message, resolves the caller identity
// from the auth context and returns the reply envelope as JSON.
func (h *ChatHandler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}
	tenantID, ok := auth.TenantIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	var req messageRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMessageBytes))
	if err := decoder.Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "message too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "message is required"})
		return
	}

	reply := h.service.HandleMessage(r.Context(), userID, tenantID, req.Message)
	writeJSON(w, http.StatusOK, reply)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
