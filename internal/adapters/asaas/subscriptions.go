package asaas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/auralabs/aura-checkout/backend/internal/ports"
)

// CreateSubscription cria uma assinatura recorrente na API Asaas.
// Para cobrança em cartão, os dados do cartão e do titular vão embutidos
// na mesma requisição.
func (c *Client) CreateSubscription(ctx context.Context, req ports.CreateSubscriptionRequest) (*ports.Subscription, error) {
	if req.CustomerID == "" {
		return nil, fmt.Errorf("customer é obrigatório")
	}
	if req.NextDueDate == "" {
		return nil, fmt.Errorf("nextDueDate é obrigatório")
	}

	payload := SubscriptionRequest{
		Customer:          req.CustomerID,
		BillingType:       string(req.BillingType),
		Value:             req.Value.InexactFloat64(),
		NextDueDate:       req.NextDueDate,
		Cycle:             string(req.Cycle),
		Description:       req.Description,
		ExternalReference: req.ExternalReference,
	}

	if req.CreditCard != nil {
		payload.CreditCard = &CreditCard{
			HolderName:  req.CreditCard.HolderName,
			Number:      req.CreditCard.Number,
			ExpiryMonth: req.CreditCard.ExpiryMonth,
			ExpiryYear:  req.CreditCard.ExpiryYear,
			CCV:         req.CreditCard.CCV,
		}
	}
	if req.CardHolderInfo != nil {
		payload.CreditCardHolderInfo = &CreditCardHolderInfo{
			Name:          req.CardHolderInfo.Name,
			Email:         req.CardHolderInfo.Email,
			CpfCnpj:       req.CardHolderInfo.Document,
			PostalCode:    req.CardHolderInfo.PostalCode,
			AddressNumber: req.CardHolderInfo.AddressNumber,
			Phone:         req.CardHolderInfo.Phone,
		}
	}

	// A descrição de rejeição da API sobe sem embrulho; ela é a mensagem
	// mostrada ao cliente final
	respBody, err := c.doRequest(ctx, http.MethodPost, "/subscriptions", payload)
	if err != nil {
		return nil, err
	}

	var sub Subscription
	if err := json.Unmarshal(respBody, &sub); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	return &ports.Subscription{
		ID:          sub.ID,
		CustomerID:  sub.Customer,
		Status:      sub.Status,
		NextDueDate: sub.NextDueDate,
	}, nil
}

// ListSubscriptionPayments lista as cobranças geradas para uma assinatura
func (c *Client) ListSubscriptionPayments(ctx context.Context, subscriptionID string) ([]ports.Payment, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("subscriptionID é obrigatório")
	}

	path := fmt.Sprintf("/subscriptions/%s/payments", subscriptionID)

	respBody, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar cobranças: %w", err)
	}

	var list PaymentListResponse
	if err := json.Unmarshal(respBody, &list); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	payments := make([]ports.Payment, 0, len(list.Data))
	for _, item := range list.Data {
		payments = append(payments, ports.Payment{
			ID:          item.ID,
			Status:      item.Status,
			DueDate:     item.DueDate,
			BankSlipURL: item.BankSlipURL,
			NossoNumero: item.NossoNumero,
		})
	}
	return payments, nil
}

// GetPixQrCode obtém o QR Code PIX de uma cobrança
func (c *Client) GetPixQrCode(ctx context.Context, paymentID string) (*ports.PixQrCode, error) {
	if paymentID == "" {
		return nil, fmt.Errorf("paymentID é obrigatório")
	}

	path := fmt.Sprintf("/payments/%s/pixQrCode", paymentID)

	respBody, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter QR Code: %w", err)
	}

	var qr PixQrCodeResponse
	if err := json.Unmarshal(respBody, &qr); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	return &ports.PixQrCode{
		EncodedImage: qr.EncodedImage,
		Payload:      qr.Payload,
	}, nil
}
