package ai

import (
	"context"
	"log"
)

// FallbackReply is sent when the completion endpoint fails or returns
// nothing usable.
const FallbackReply = "Hubo un error al procesar tu solicitud."

// Responder produces free-form persona replies conditioned on the user's
// conversation history.
type Responder struct {
	gemini *GeminiClient
}

func NewResponder(g *GeminiClient) *Responder {
	return &Responder{gemini: g}
}

// Respond never fails: completion errors are absorbed here and replaced
// with the fixed apology, so the user always gets an answer.
func (r *Responder) Respond(ctx context.Context, message, history string) string {
	reply, err := r.gemini.Generate(ctx, BuildPersonaPrompt(history, message))
	if err != nil {
		log.Printf("responder: gemini error: %v", err)
		return FallbackReply
	}
	return reply
}
