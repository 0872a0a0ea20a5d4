package whatsapp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	auth string
	body SendMessageRequest
}

func newTestClient(t *testing.T, status int) (*Client, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured.body))
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-token"), captured
}

func TestSendText(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK)

	require.NoError(t, c.SendText("593998499963", "Saludos de parte de Simón BOT"))

	require.Equal(t, "Bearer test-token", captured.auth)
	require.Equal(t, "whatsapp", captured.body.MessagingProduct)
	require.Equal(t, "individual", captured.body.RecipientType)
	require.Equal(t, "593998499963", captured.body.To)
	require.Equal(t, "text", captured.body.Type)
	require.NotNil(t, captured.body.Text)
	require.Equal(t, "Saludos de parte de Simón BOT", captured.body.Text.Body)
}

func TestSendInteractiveButtons(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK)

	buttons := []ButtonReply{
		{ID: "pedido_si", Title: "Si"},
		{ID: "pedido_no", Title: "No"},
	}
	require.NoError(t, c.SendInteractiveButtons("593998499963", "¿Continuamos?", buttons))

	require.Equal(t, "interactive", captured.body.Type)
	require.NotNil(t, captured.body.Interactive)
	require.Equal(t, "button", captured.body.Interactive.Type)
	require.Equal(t, "¿Continuamos?", captured.body.Interactive.Body.Text)

	got := captured.body.Interactive.Action.Buttons
	require.Len(t, got, 2)
	require.Equal(t, Button{Type: "reply", Reply: buttons[0]}, got[0])
	require.Equal(t, Button{Type: "reply", Reply: buttons[1]}, got[1])
}

func TestSendTemplate(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK)

	require.NoError(t, c.SendTemplate("593998499963", "hello_world", "en_US"))

	require.Equal(t, "template", captured.body.Type)
	require.NotNil(t, captured.body.Template)
	require.Equal(t, "hello_world", captured.body.Template.Name)
	require.Equal(t, "en_US", captured.body.Template.Language.Code)
}

func TestSendImage(t *testing.T) {
	c, captured := newTestClient(t, http.StatusOK)

	require.NoError(t, c.SendImage("593998499963", Image{ID: "1154315443031492", Caption: "logo"}))

	require.Equal(t, "image", captured.body.Type)
	require.NotNil(t, captured.body.Image)
	require.Equal(t, "1154315443031492", captured.body.Image.ID)
	require.Equal(t, "logo", captured.body.Image.Caption)
}

func TestSendReportsAPIErrors(t *testing.T) {
	c, _ := newTestClient(t, http.StatusUnauthorized)

	err := c.SendText("593998499963", "hola")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 401")
}
