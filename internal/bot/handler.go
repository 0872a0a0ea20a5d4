package bot

import (
	"context"
	"log"

	"github.com/mercadoenlinea/simon/internal/ai"
	"github.com/mercadoenlinea/simon/internal/store"
	"github.com/mercadoenlinea/simon/internal/whatsapp"
)

// Prefixes keep the space-joined history role-legible inside the persona
// prompt.
const (
	userMessagePrefix = "mensaje del usuario:"
	botReplyPrefix    = "tu respuesta:"
)

// Sender is the outbound side of the WhatsApp client the router needs.
type Sender interface {
	SendText(to, body string) error
	SendInteractiveButtons(to, body string, buttons []whatsapp.ButtonReply) error
}

type Classifier interface {
	Classify(ctx context.Context, message string) (ai.Intent, error)
}

type Responder interface {
	Respond(ctx context.Context, message, history string) string
}

// Handler routes inbound events: button replies walk the fixed menu,
// free text is classified and either enters the menu or falls back to the
// AI responder.
type Handler struct {
	wa         Sender
	store      store.Store
	classifier Classifier
	responder  Responder
}

func NewHandler(wa Sender, s store.Store, c Classifier, r Responder) *Handler {
	return &Handler{wa: wa, store: s, classifier: c, responder: r}
}

func (h *Handler) HandleEvent(ev whatsapp.InboundEvent) {
	switch {
	case ev.ButtonID != "":
		h.handleButton(ev.From, ev.ButtonID)
	case ev.Text != "":
		h.handleText(ev.From, ev.Text)
	}
}

func (h *Handler) handleButton(from, buttonID string) {
	st, ok := transitions[buttonID]
	if !ok {
		log.Printf("bot: unknown button %q from %s, ignoring", buttonID, from)
		return
	}
	h.store.RecordChoice(from, st.choice)
	h.sendStep(from, st)
}

func (h *Handler) handleText(from, text string) {
	ctx := context.Background()

	// Snapshot before recording: the responder conditions on what came
	// before this message, so a first-contact "Hola" sees an empty history.
	history := h.store.History(from)
	h.store.RecordMessage(from, userMessagePrefix+text)

	intent, err := h.classifier.Classify(ctx, text)
	if err != nil {
		log.Printf("bot: classify failed for %s, falling back to %q: %v", from, ai.IntentOtro, err)
		intent = ai.IntentOtro
	}

	if st, ok := intentSteps[intent]; ok {
		h.store.RecordChoice(from, st.choice)
		h.sendStep(from, st)
		return
	}

	reply := h.responder.Respond(ctx, text, history)
	h.store.RecordMessage(from, botReplyPrefix+reply)
	if err := h.wa.SendText(from, reply); err != nil {
		log.Printf("bot: failed to send reply to %s: %v", from, err)
	}
}

func (h *Handler) sendStep(to string, st step) {
	var err error
	if st.interactive() {
		err = h.wa.SendInteractiveButtons(to, st.body, st.buttons)
	} else {
		err = h.wa.SendText(to, st.text)
	}
	if err != nil {
		log.Printf("bot: failed to send step to %s: %v", to, err)
	}
}
