package whatsapp

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleVerify(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid subscription",
			query:      "hub.mode=subscribe&hub.verify_token=secreto&hub.challenge=12345",
			wantStatus: 200,
			wantBody:   "12345",
		},
		{
			name:       "wrong token",
			query:      "hub.mode=subscribe&hub.verify_token=nope&hub.challenge=12345",
			wantStatus: 403,
		},
		{
			name:       "wrong mode",
			query:      "hub.mode=unsubscribe&hub.verify_token=secreto&hub.challenge=12345",
			wantStatus: 403,
		},
		{
			name:       "missing params",
			query:      "",
			wantStatus: 403,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewWebhookHandler("secreto", func(InboundEvent) {})

			req := httptest.NewRequest("GET", "/webhook?"+tt.query, nil)
			rec := httptest.NewRecorder()
			h.HandleVerify(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				require.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func postWebhook(h *WebhookHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/webhook", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleIncoming(rec, req)
	return rec
}

func TestHandleIncomingMarker(t *testing.T) {
	h := NewWebhookHandler("secreto", func(InboundEvent) {
		t.Fatal("no event expected")
	})

	require.Equal(t, 404, postWebhook(h, `{}`).Code, "missing object marker")
	require.Equal(t, 404, postWebhook(h, `not json`).Code, "undecodable body")
	require.Equal(t, 200, postWebhook(h, `{"object":"whatsapp_business_account"}`).Code,
		"marker present, no messages")
	require.Equal(t, 200, postWebhook(h, `{"object":"whatsapp_business_account","entry":[{"changes":[{"value":{"statuses":[{"id":"x","status":"delivered"}]}}]}]}`).Code,
		"status-only delivery")
}

func TestHandleIncomingTextMessage(t *testing.T) {
	var events []InboundEvent
	h := NewWebhookHandler("secreto", func(ev InboundEvent) {
		events = append(events, ev)
	})

	body := `{"object":"whatsapp_business_account","entry":[{"changes":[{"value":{"messages":[
		{"from":"593998499963","id":"wamid.1","type":"text","text":{"body":"Hola"}}
	]}}]}]}`

	require.Equal(t, 200, postWebhook(h, body).Code)
	require.Len(t, events, 1)
	require.Equal(t, InboundEvent{From: "593998499963", MessageID: "wamid.1", Text: "Hola"}, events[0])
}

func TestHandleIncomingButtonReply(t *testing.T) {
	var events []InboundEvent
	h := NewWebhookHandler("secreto", func(ev InboundEvent) {
		events = append(events, ev)
	})

	body := `{"object":"whatsapp_business_account","entry":[{"changes":[{"value":{"messages":[
		{"from":"593998499963","id":"wamid.2","type":"interactive",
		 "interactive":{"type":"button_reply","button_reply":{"id":"oferta_arroz","title":"Arroz"}}}
	]}}]}]}`

	require.Equal(t, 200, postWebhook(h, body).Code)
	require.Len(t, events, 1)
	require.Equal(t, InboundEvent{From: "593998499963", MessageID: "wamid.2", ButtonID: "oferta_arroz"}, events[0])
}

func TestHandleIncomingIgnoresMessagesWithoutTextOrButton(t *testing.T) {
	h := NewWebhookHandler("secreto", func(InboundEvent) {
		t.Fatal("no event expected")
	})

	body := `{"object":"whatsapp_business_account","entry":[{"changes":[{"value":{"messages":[
		{"from":"593998499963","id":"wamid.3","type":"image"}
	]}}]}]}`

	require.Equal(t, 200, postWebhook(h, body).Code)
}
