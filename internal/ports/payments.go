// Package ports define as interfaces (portas) para adaptadores externos
// Seguindo o padrão Hexagonal Architecture / Ports & Adapters
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/auralabs/aura-checkout/backend/internal/domain"
)

// ──────────────────────────────────────────────
// Billing gateway types
// ──────────────────────────────────────────────

// Customer representa um cliente no gateway de cobrança
type Customer struct {
	ID       string
	Name     string
	Email    string
	Document string // CPF ou CNPJ, apenas dígitos
}

// CreateCustomerRequest representa a requisição de criação de cliente
type CreateCustomerRequest struct {
	Name              string
	Email             string
	Phone             string // Apenas dígitos
	Document          string // Apenas dígitos
	PostalCode        string // Apenas dígitos
	Address           string
	AddressNumber     string
	Province          string // Cidade
	ExternalReference string
}

// CreditCard representa os dados do cartão enviados ao gateway
type CreditCard struct {
	HolderName  string
	Number      string // Apenas dígitos
	ExpiryMonth string // MM
	ExpiryYear  string // AAAA
	CCV         string
}

// CreditCardHolderInfo representa os dados do titular do cartão
type CreditCardHolderInfo struct {
	Name          string
	Email         string
	Document      string
	PostalCode    string
	AddressNumber string
	Phone         string
}

// CreateSubscriptionRequest representa a requisição de criação de assinatura
type CreateSubscriptionRequest struct {
	CustomerID        string
	BillingType       domain.BillingType
	Value             decimal.Decimal
	NextDueDate       string // Formato AAAA-MM-DD
	Cycle             domain.BillingCycle
	Description       string
	ExternalReference string

	// Preenchidos apenas para cobrança em cartão
	CreditCard     *CreditCard
	CardHolderInfo *CreditCardHolderInfo
}

// Subscription representa uma assinatura criada no gateway
type Subscription struct {
	ID          string
	CustomerID  string
	Status      string
	NextDueDate string
}

// Payment representa uma cobrança (fatura) de uma assinatura no gateway
type Payment struct {
	ID          string
	Status      string
	DueDate     string
	BankSlipURL string // URL do boleto, quando boleto
	NossoNumero string // Código de referência do boleto
}

// PixQrCode representa o QR Code de pagamento de uma cobrança PIX
type PixQrCode struct {
	EncodedImage string // Imagem em base64
	Payload      string // Código copia e cola
}

// ──────────────────────────────────────────────
// Provider interfaces
// ──────────────────────────────────────────────

// BillingProvider define a interface para o gateway de cobrança (Asaas)
type BillingProvider interface {
	// FindCustomerByDocument busca clientes pelo CPF/CNPJ
	FindCustomerByDocument(ctx context.Context, document string) ([]Customer, error)

	// CreateCustomer cria um novo cliente
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error)

	// CreateSubscription cria uma assinatura recorrente
	CreateSubscription(ctx context.Context, req CreateSubscriptionRequest) (*Subscription, error)

	// ListSubscriptionPayments lista as cobranças de uma assinatura
	ListSubscriptionPayments(ctx context.Context, subscriptionID string) ([]Payment, error)

	// GetPixQrCode obtém o QR Code PIX de uma cobrança
	GetPixQrCode(ctx context.Context, paymentID string) (*PixQrCode, error)
}

// ──────────────────────────────────────────────
// Collaborator interfaces
// ──────────────────────────────────────────────

// AbuseVerification é o resultado da verificação anti-bot
type AbuseVerification struct {
	Success    bool
	ErrorCodes []string
}

// AbuseVerifier define a interface para o serviço de verificação anti-bot
type AbuseVerifier interface {
	// Verify valida um token de desafio junto com o IP do cliente
	Verify(ctx context.Context, token, clientIP string) (*AbuseVerification, error)
}

// NotificationType identifica o desfecho do checkout para fins de email
type NotificationType string

const (
	NotificationTrialStarted   NotificationType = "trial_started"
	NotificationPixCreated     NotificationType = "pix_created"
	NotificationPixAutoCreated NotificationType = "pix_auto_created"
	NotificationBoletoCreated  NotificationType = "boleto_created"
)

// CheckoutNotification representa o payload do email transacional de checkout
type CheckoutNotification struct {
	To           string           `json:"to"`
	Type         NotificationType `json:"type"`
	CustomerName string           `json:"customerName"`
	PlanName     string           `json:"planName"`
	PlanValue    decimal.Decimal  `json:"planValue"`
	Document     string           `json:"document"`
	IsTrial      bool             `json:"isTrial"`
	PixQrCode    string           `json:"pixQrCode,omitempty"`
	PixCopyPaste string           `json:"pixCopyPaste,omitempty"`
	BoletoURL    string           `json:"boletoUrl,omitempty"`
}

// Notifier define a interface para o serviço de email transacional.
// O envio é best-effort: falhas são logadas, nunca propagadas ao fluxo.
type Notifier interface {
	NotifyCheckout(ctx context.Context, n CheckoutNotification) error
}
