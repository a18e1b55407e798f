package asaas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/auralabs/aura-checkout/backend/internal/config"
	"github.com/auralabs/aura-checkout/backend/internal/ports"
)

// Client implementa ports.BillingProvider para a API Asaas
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient cria um novo cliente Asaas autenticado por access_token
func NewClient(cfg *config.AsaasConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// doRequest executa uma requisição HTTP autenticada contra a API Asaas
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	// Prepara o body se houver
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	url := fmt.Sprintf("%s%s", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}

	// Autenticação por token estático no header
	req.Header.Set("access_token", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeout e falha de conexão entram na mesma vala: erro do provedor
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	// Trata erros da API (devolvidos como array "errors")
	if resp.StatusCode >= 400 {
		var apiErr APIError
		if json.Unmarshal(respBody, &apiErr) == nil && len(apiErr.Errors) > 0 {
			apiErr.Status = resp.StatusCode
			return nil, &apiErr
		}
		// Sem payload estruturado, cai nos sentinelas por status
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, ErrUnauthorized
		case http.StatusNotFound:
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro da API: status %d - %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// Garante que Client implementa BillingProvider
var _ ports.BillingProvider = (*Client)(nil)
