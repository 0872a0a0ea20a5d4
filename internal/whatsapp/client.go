package whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client sends messages through the WhatsApp Cloud API messages endpoint.
type Client struct {
	apiURL      string
	accessToken string
	http        *http.Client
}

func NewClient(apiURL, accessToken string) *Client {
	return &Client{
		apiURL:      apiURL,
		accessToken: accessToken,
		http:        &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) SendText(to, body string) error {
	msg := SendMessageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             &SendText{Body: body},
	}
	return c.send(msg)
}

func (c *Client) SendInteractiveButtons(to, body string, buttons []ButtonReply) error {
	wired := make([]Button, len(buttons))
	for i, b := range buttons {
		wired[i] = Button{Type: "reply", Reply: b}
	}
	msg := SendMessageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "interactive",
		Interactive: &Interactive{
			Type:   "button",
			Body:   InteractiveBody{Text: body},
			Action: InteractiveAction{Buttons: wired},
		},
	}
	return c.send(msg)
}

func (c *Client) SendTemplate(to, name, langCode string) error {
	msg := SendMessageRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "template",
		Template: &Template{
			Name:     name,
			Language: TemplateLanguage{Code: langCode},
		},
	}
	return c.send(msg)
}

func (c *Client) SendImage(to string, image Image) error {
	msg := SendMessageRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "image",
		Image:            &image,
	}
	return c.send(msg)
}

func (c *Client) send(msg SendMessageRequest) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshaling message: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("whatsapp API status %d: %s", resp.StatusCode, respBody)
	}
	return nil
}
