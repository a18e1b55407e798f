// Package mailer implementa o adaptador para o serviço de email
// transacional de checkout
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/auralabs/aura-checkout/backend/internal/config"
	"github.com/auralabs/aura-checkout/backend/internal/ports"
)

// Client implementa ports.Notifier enviando o payload do checkout para o
// endpoint de email. Quem chama decide o tratamento de falhas; aqui o
// envio é síncrono e o erro é sempre retornado.
type Client struct {
	endpointURL string
	httpClient  *http.Client
}

// NewClient cria um novo cliente do serviço de email
func NewClient(cfg *config.EmailConfig) *Client {
	return &Client{
		endpointURL: cfg.EndpointURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// NotifyCheckout envia a notificação de desfecho do checkout.
// Com endpoint não configurado, vira no-op silencioso.
func (c *Client) NotifyCheckout(ctx context.Context, n ports.CheckoutNotification) error {
	if c.endpointURL == "" {
		return nil
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("erro ao serializar notificação: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao enviar email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("serviço de email retornou status %d", resp.StatusCode)
	}
	return nil
}

// Garante que Client implementa Notifier
var _ ports.Notifier = (*Client)(nil)
