package whatsapp

import (
	"encoding/json"
	"log"
	"net/http"
)

// InboundEvent is one user-originated message extracted from a webhook
// delivery. Exactly one of Text or ButtonID is set.
type InboundEvent struct {
	From      string
	MessageID string
	Text      string
	ButtonID  string
}

// EventHandler is called synchronously for each inbound event.
type EventHandler func(ev InboundEvent)

type WebhookHandler struct {
	verifyToken string
	onEvent     EventHandler
}

func NewWebhookHandler(verifyToken string, onEvent EventHandler) *WebhookHandler {
	return &WebhookHandler{
		verifyToken: verifyToken,
		onEvent:     onEvent,
	}
}

// HandleVerify handles the GET webhook verification from Meta.
// Reference: https://developers.facebook.com/docs/whatsapp/cloud-api/get-started#webhook-verification
func (h *WebhookHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("hub.mode")
	token := r.URL.Query().Get("hub.verify_token")
	challenge := r.URL.Query().Get("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(challenge))
		return
	}

	http.Error(w, "Forbidden", http.StatusForbidden)
}

// HandleIncoming processes incoming webhook POST notifications. Deliveries
// without the top-level object marker get 404; everything else is
// acknowledged 200 regardless of what the inner payload contains, so Meta
// never retries on our own processing failures.
func (h *WebhookHandler) HandleIncoming(w http.ResponseWriter, r *http.Request) {
	var payload WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Printf("webhook: failed to decode payload: %v", err)
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if payload.Object == "" {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	// Meta requires 200 OK quickly; processing happens here synchronously for simplicity.
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				ev := InboundEvent{From: msg.From, MessageID: msg.ID}
				switch {
				case msg.Interactive != nil &&
					msg.Interactive.ButtonReply != nil &&
					msg.Interactive.ButtonReply.ID != "":
					ev.ButtonID = msg.Interactive.ButtonReply.ID
				case msg.Text != nil && msg.Text.Body != "":
					ev.Text = msg.Text.Body
				default:
					// Status updates, reactions, media: nothing for us to route.
					continue
				}
				h.onEvent(ev)
			}
		}
	}

	w.WriteHeader(http.StatusOK)
}
