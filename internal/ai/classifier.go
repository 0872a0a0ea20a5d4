package ai

import "context"

// Intent is the coarse category a free-text message is routed by.
type Intent string

const (
	IntentPedido  Intent = "pedido"
	IntentOfertas Intent = "ofertas"
	IntentOtro    Intent = "otro"
)

// Classifier labels free-text messages with one intent.
type Classifier struct {
	gemini *GeminiClient
}

func NewClassifier(g *GeminiClient) *Classifier {
	return &Classifier{gemini: g}
}

// Classify returns the model's trimmed answer verbatim as the label. The
// model is instructed to answer with one of the closed set; anything else
// falls through the router's intent table to the free-form branch.
func (c *Classifier) Classify(ctx context.Context, message string) (Intent, error) {
	label, err := c.gemini.Generate(ctx, BuildIntentPrompt(message))
	if err != nil {
		return "", err
	}
	return Intent(label), nil
}
