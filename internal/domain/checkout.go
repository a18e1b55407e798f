// Package domain contém as entidades de domínio da aplicação
package domain

import (
	"fmt"
	"strings"
)

// PersonType representa o tipo de pessoa do pagador
type PersonType string

const (
	PersonTypeIndividual PersonType = "individual" // Pessoa física (CPF)
	PersonTypeLegal      PersonType = "legal"      // Pessoa jurídica (CNPJ)
)

// BillingCycle representa a periodicidade de cobrança da assinatura
type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "MONTHLY"
	BillingCycleYearly  BillingCycle = "YEARLY"
)

// CheckoutSubmission representa uma submissão de checkout recebida do
// formulário. É imutável após a validação: todos os passos do fluxo leem
// os mesmos dados.
type CheckoutSubmission struct {
	FullName   string     `json:"fullName"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Document   string     `json:"document"` // CPF ou CNPJ, com ou sem máscara
	PersonType PersonType `json:"personType"`

	PostalCode string `json:"postalCode"`
	Address    string `json:"address"`
	Number     string `json:"number"`
	City       string `json:"city"`
	State      string `json:"state"`

	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PlanKey       PlanKey       `json:"planKey"`
	BillingCycle  BillingCycle  `json:"billingCycle"`

	// Campos de cartão, obrigatórios apenas para credit_card
	CardNumber string `json:"cardNumber,omitempty"`
	CardExpiry string `json:"cardExpiry,omitempty"` // Formato MM/YY
	CardCVC    string `json:"cardCVC,omitempty"`
	CardName   string `json:"cardName,omitempty"`

	CouponCode     string `json:"couponCode,omitempty"`
	TurnstileToken string `json:"turnstileToken,omitempty"`
}

// ValidationError representa um erro de validação com detalhes do campo
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("erro de validação no campo '%s': %s", e.Field, e.Message)
}

// NewValidationError cria um novo ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// isDigits verifica se a string é não-vazia e composta apenas por dígitos
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// OnlyDigits remove tudo que não for dígito de uma string
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CleanDocument retorna o CPF/CNPJ apenas com dígitos
func (c *CheckoutSubmission) CleanDocument() string {
	return OnlyDigits(c.Document)
}

// CleanPhone retorna o telefone apenas com dígitos
func (c *CheckoutSubmission) CleanPhone() string {
	return OnlyDigits(c.Phone)
}

// CleanPostalCode retorna o CEP apenas com dígitos
func (c *CheckoutSubmission) CleanPostalCode() string {
	return OnlyDigits(c.PostalCode)
}

// FormattedAddress monta o endereço completo em uma linha
func (c *CheckoutSubmission) FormattedAddress() string {
	return fmt.Sprintf("%s, %s - %s/%s - CEP: %s", c.Address, c.Number, c.City, c.State, c.PostalCode)
}

// Validate verifica os invariantes da submissão antes de qualquer chamada
// externa. Documento deve bater com o tipo de pessoa (11 dígitos para CPF,
// 14 para CNPJ); campos de cartão são obrigatórios sse o método for cartão.
func (c *CheckoutSubmission) Validate() error {
	if c.FullName == "" {
		return NewValidationError("fullName", "nome completo é obrigatório")
	}
	if c.Email == "" || !strings.Contains(c.Email, "@") {
		return NewValidationError("email", "email inválido")
	}
	if !c.PaymentMethod.IsValid() {
		return NewValidationError("paymentMethod", "método de pagamento não suportado")
	}
	if !c.PlanKey.IsValid() {
		return NewValidationError("planKey", "plano inexistente")
	}
	if c.BillingCycle != BillingCycleMonthly && c.BillingCycle != BillingCycleYearly {
		return NewValidationError("billingCycle", "ciclo de cobrança inválido")
	}

	doc := c.CleanDocument()
	switch c.PersonType {
	case PersonTypeIndividual:
		if len(doc) != 11 {
			return NewValidationError("document", "CPF deve ter 11 dígitos")
		}
	case PersonTypeLegal:
		if len(doc) != 14 {
			return NewValidationError("document", "CNPJ deve ter 14 dígitos")
		}
	default:
		return NewValidationError("personType", "tipo de pessoa inválido")
	}

	if c.PaymentMethod == PaymentMethodCreditCard {
		if c.CardNumber == "" || c.CardExpiry == "" || c.CardCVC == "" || c.CardName == "" {
			return NewValidationError("cardNumber", "dados do cartão são obrigatórios para pagamento com cartão")
		}
		parts := strings.SplitN(c.CardExpiry, "/", 2)
		if len(parts) != 2 || !isDigits(parts[0]) || !isDigits(parts[1]) {
			return NewValidationError("cardExpiry", "validade do cartão deve estar no formato MM/AA")
		}
	}

	return nil
}

// CardExpiryParts separa a validade do cartão em mês e ano com século
// (MM/AA vira "MM", "20AA")
func (c *CheckoutSubmission) CardExpiryParts() (month, year string) {
	parts := strings.SplitN(c.CardExpiry, "/", 2)
	month = parts[0]
	if len(parts) == 2 {
		year = "20" + parts[1]
	}
	return month, year
}
