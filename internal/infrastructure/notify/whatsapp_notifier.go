package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"pagfacil/internal/usecase/interfaces"
)

// PlaceholderPhone receives notifications when no payer phone is known.
// A missing contact never blocks a dispatch.
const PlaceholderPhone = "5511999999999"

const minPhoneDigits = 12

// WhatsAppNotifier sends payment notifications through a WhatsApp Cloud-style
// messages endpoint (bearer-token auth, phone-addressed text send).
//
// It is strictly best-effort: invalid numbers and transport failures are
// logged and swallowed, never surfaced to the orchestrator.

type WhatsAppNotifier struct {
	baseURL       string
	token         string
	phoneNumberID string
	client        *http.Client
}

var _ interfaces.INotifier = (*WhatsAppNotifier)(nil)

func NewWhatsAppNotifier(baseURL, token, phoneNumberID string, client *http.Client) *WhatsAppNotifier {
	if client == nil {
		client = &http.Client{}
	}
	return &WhatsAppNotifier{
		baseURL:       strings.TrimRight(baseURL, "/"),
		token:         token,
		phoneNumberID: phoneNumberID,
		client:        client,
	}
}

type textMessage struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

// Notify normalizes the destination and dispatches the message. It never
// reports an outcome; the dispatch id ties log lines together.
func (n *WhatsAppNotifier) Notify(ctx context.Context, phone, message string) {
	dispatchID := uuid.NewString()

	to := NormalizePhone(phone)
	if len(to) < minPhoneDigits {
		log.Printf("[notify][whatsapp] dispatch=%s skipped: number %q too short after normalization (%q)", dispatchID, phone, to)
		return
	}
	log.Printf("[notify][whatsapp] dispatch=%s sending to=%s", dispatchID, to)

	msg := textMessage{MessagingProduct: "whatsapp", To: to, Type: "text"}
	msg.Text.Body = message

	body, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[notify][whatsapp] dispatch=%s marshal failed err=%v", dispatchID, err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/"+n.phoneNumberID+"/messages", bytes.NewReader(body))
	if err != nil {
		log.Printf("[notify][whatsapp] dispatch=%s build request failed err=%v", dispatchID, err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+n.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("[notify][whatsapp] dispatch=%s transport failed err=%v", dispatchID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		log.Printf("[notify][whatsapp] dispatch=%s provider rejected status=%d body=%s", dispatchID, resp.StatusCode, raw)
		return
	}
	log.Printf("[notify][whatsapp] dispatch=%s delivered to=%s", dispatchID, to)
}

// NormalizePhone applies the destination rules: empty input falls back to the
// placeholder, non-digits are stripped and the 55 country code is prefixed
// when missing. Length is validated by the caller.
func NormalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = PlaceholderPhone
	}

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if !strings.HasPrefix(digits, "55") {
		digits = "55" + digits
	}
	return digits
}
