package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/contabot/internal/domain/chat"
	"github.com/FACorreiaa/contabot/pkg/auth"
)

type stubService struct {
	reply       chat.Reply
	gotUserID   uuid.UUID
	gotTenantID uuid.UUID
	gotRaw      string
}

func (s *stubService) HandleMessage(_ context.Context, userID, tenantID uuid.UUID, raw string) chat.Reply {
	s.gotUserID = userID
	s.gotTenantID = tenantID
	s.gotRaw = raw
	return s.reply
}

func authedRequest(t *testing.T, body string, userID, tenantID uuid.UUID) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/messages", strings.NewReader(body))
	return req.WithContext(auth.WithIdentity(req.Context(), userID, tenantID))
}

func TestChatHandler_HandleMessage(t *testing.T) {
	svc := &stubService{reply: chat.Reply{
		Message:    "Registré tu pago de $200.00.",
		ActionType: "record_payment",
		Handled:    true,
	}}
	h := NewChatHandler(svc, slog.New(slog.DiscardHandler))

	userID, tenantID := uuid.New(), uuid.New()
	rec := httptest.NewRecorder()
	h.HandleMessage(rec, authedRequest(t, `{"message":"Pagué $200 de seguro"}`, userID, tenantID))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var reply chat.Reply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.True(t, reply.Handled)
	assert.Equal(t, "record_payment", reply.ActionType)

	assert.Equal(t, userID, svc.gotUserID)
	assert.Equal(t, tenantID, svc.gotTenantID)
	assert.Equal(t, "Pagué $200 de seguro", svc.gotRaw)
}

func TestChatHandler_RejectsUnauthenticated(t *testing.T) {
	h := NewChatHandler(&stubService{}, slog.New(slog.DiscardHandler))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/messages", strings.NewReader(`{"message":"hola"}`))
	h.HandleMessage(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChatHandler_RejectsEmptyMessage(t *testing.T) {
	h := NewChatHandler(&stubService{}, slog.New(slog.DiscardHandler))

	for name, body := range map[string]string{
		"blank message": `{"message":"   "}`,
		"missing field": `{}`,
		"not json":      `hola`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleMessage(rec, authedRequest(t, body, uuid.New(), uuid.New()))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestChatHandler_RejectsOversizedBody(t *testing.T) {
	h := NewChatHandler(&stubService{}, slog.New(slog.DiscardHandler))

	big := `{"message":"` + strings.Repeat("a", maxMessageBytes+1) + `"}`
	rec := httptest.NewRecorder()
	h.HandleMessage(rec, authedRequest(t, big, uuid.New(), uuid.New()))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
