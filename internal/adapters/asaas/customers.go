package asaas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/auralabs/aura-checkout/backend/internal/ports"
)

// FindCustomerByDocument busca clientes pelo CPF/CNPJ (apenas dígitos)
func (c *Client) FindCustomerByDocument(ctx context.Context, document string) ([]ports.Customer, error) {
	path := fmt.Sprintf("/customers?cpfCnpj=%s", url.QueryEscape(document))

	// Erros do doRequest sobem sem embrulho: a descrição da API é
	// repassada como veio ao cliente final
	respBody, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var list CustomerListResponse
	if err := json.Unmarshal(respBody, &list); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	customers := make([]ports.Customer, 0, len(list.Data))
	for _, item := range list.Data {
		customers = append(customers, ports.Customer{
			ID:       item.ID,
			Name:     item.Name,
			Email:    item.Email,
			Document: item.CpfCnpj,
		})
	}
	return customers, nil
}

// CreateCustomer cria um novo cliente na API Asaas
func (c *Client) CreateCustomer(ctx context.Context, req ports.CreateCustomerRequest) (*ports.Customer, error) {
	payload := CustomerRequest{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		CpfCnpj:           req.Document,
		PostalCode:        req.PostalCode,
		Address:           req.Address,
		AddressNumber:     req.AddressNumber,
		Province:          req.Province,
		ExternalReference: req.ExternalReference,
	}

	respBody, err := c.doRequest(ctx, http.MethodPost, "/customers", payload)
	if err != nil {
		return nil, err
	}

	var customer Customer
	if err := json.Unmarshal(respBody, &customer); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	return &ports.Customer{
		ID:       customer.ID,
		Name:     customer.Name,
		Email:    customer.Email,
		Document: customer.CpfCnpj,
	}, nil
}
