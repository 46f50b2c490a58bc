// Package sms implementa el envío de SMS contra un gateway HTTP
// (form-encoded, autenticación por apikey).
package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/salon-api/internal/application/auth"
	"github.com/jhoicas/salon-api/pkg/config"
)

var _ auth.SMSSender = (*HTTPSender)(nil)

// HTTPSender envía mensajes de texto a través del gateway configurado.
type HTTPSender struct {
	baseURL  string
	apiKey   string
	senderID string
	client   *http.Client
}

// NewHTTPSender construye el sender con la configuración del gateway.
func NewHTTPSender(cfg config.SMSConfig) *HTTPSender {
	return &HTTPSender{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		senderID: cfg.SenderID,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Send entrega un SMS. Cualquier respuesta distinta de 200 se reporta como
// error con el cuerpo devuelto por el gateway.
func (s *HTTPSender) Send(ctx context.Context, to, message string) error {
	form := url.Values{}
	form.Set("senderid", s.senderID)
	form.Set("sendMethod", "quick")
	form.Set("msgType", "text")
	form.Set("msg", message)
	form.Set("mobile", to)
	form.Set("duplicatecheck", "true")
	form.Set("output", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/send", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apikey", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sms gateway status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
