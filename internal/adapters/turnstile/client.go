// Package turnstile implementa o adaptador para o Cloudflare Turnstile,
// o serviço de verificação anti-bot usado no formulário de checkout
package turnstile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auralabs/aura-checkout/backend/internal/config"
	"github.com/auralabs/aura-checkout/backend/internal/ports"
)

// siteverifyResponse é a resposta do endpoint siteverify
type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Client implementa ports.AbuseVerifier para o Cloudflare Turnstile
type Client struct {
	secretKey  string
	verifyURL  string
	httpClient *http.Client
}

// NewClient cria um novo cliente Turnstile
func NewClient(cfg *config.TurnstileConfig) *Client {
	return &Client{
		secretKey: cfg.SecretKey,
		verifyURL: cfg.VerifyURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Verify valida um token de desafio junto com o IP do cliente.
// Token vazio é rejeitado localmente, sem chamada externa.
func (c *Client) Verify(ctx context.Context, token, clientIP string) (*ports.AbuseVerification, error) {
	if token == "" {
		return &ports.AbuseVerification{
			Success:    false,
			ErrorCodes: []string{"missing-input-response"},
		}, nil
	}

	form := url.Values{}
	form.Set("secret", c.secretKey)
	form.Set("response", token)
	form.Set("remoteip", clientIP)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro na verificação turnstile: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	var outcome siteverifyResponse
	if err := json.Unmarshal(respBody, &outcome); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	return &ports.AbuseVerification{
		Success:    outcome.Success,
		ErrorCodes: outcome.ErrorCodes,
	}, nil
}

// Garante que Client implementa AbuseVerifier
var _ ports.AbuseVerifier = (*Client)(nil)
