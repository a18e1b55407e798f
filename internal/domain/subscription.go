package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionStatus representa o estado comercial de uma assinatura
type SubscriptionStatus string

const (
	SubscriptionStatusTrial          SubscriptionStatus = "trial"
	SubscriptionStatusPendingPayment SubscriptionStatus = "pending_payment"
)

// CompanyStatus representa o estado comercial de uma empresa
type CompanyStatus string

const (
	CompanyStatusPending         CompanyStatus = "Pending"
	CompanyStatusAwaitingPayment CompanyStatus = "AwaitingPayment"
)

// SubscriptionRecord é o retrato comercial de uma assinatura criada no
// checkout. É gravado após o sucesso no gateway e nunca atualizado por
// este fluxo.
type SubscriptionRecord struct {
	ID            string
	Company       string
	CNPJ          string // CPF ou CNPJ, apenas dígitos
	Plan          string // Nome de exibição do plano
	Value         decimal.Decimal
	Status        SubscriptionStatus
	NextBilling   time.Time
	PaymentMethod PaymentMethod
	Email         string
	BillingCycle  BillingCycle
	CreatedAt     time.Time
}

// CompanyRecord é o retrato comercial da empresa derivado da mesma
// submissão de checkout
type CompanyRecord struct {
	ID        string
	CNPJ      string
	Name      string
	Email     string
	Phone     string
	Address   string
	Status    CompanyStatus
	Plan      string
	PlanID    string
	CreatedAt time.Time
}

// NewSubscriptionRecord deriva o registro de assinatura de uma submissão.
// Métodos com trial entram como "trial"; os demais como "pending_payment".
func NewSubscriptionRecord(sub *CheckoutSubmission, plan Plan, chargeValue decimal.Decimal, submittedAt time.Time) *SubscriptionRecord {
	status := SubscriptionStatusPendingPayment
	if sub.PaymentMethod.HasTrial() {
		status = SubscriptionStatusTrial
	}
	return &SubscriptionRecord{
		Company:       sub.FullName,
		CNPJ:          sub.CleanDocument(),
		Plan:          plan.DisplayName(),
		Value:         chargeValue,
		Status:        status,
		NextBilling:   sub.PaymentMethod.NextDueDate(submittedAt),
		PaymentMethod: sub.PaymentMethod,
		Email:         sub.Email,
		BillingCycle:  sub.BillingCycle,
		CreatedAt:     submittedAt,
	}
}

// NewCompanyRecord deriva o registro da empresa de uma submissão
func NewCompanyRecord(sub *CheckoutSubmission, plan Plan, submittedAt time.Time) *CompanyRecord {
	status := CompanyStatusAwaitingPayment
	if sub.PaymentMethod.HasTrial() {
		status = CompanyStatusPending
	}
	return &CompanyRecord{
		CNPJ:      sub.CleanDocument(),
		Name:      sub.FullName,
		Email:     sub.Email,
		Phone:     sub.CleanPhone(),
		Address:   sub.FormattedAddress(),
		Status:    status,
		Plan:      plan.DisplayName(),
		PlanID:    plan.ProviderPlanID,
		CreatedAt: submittedAt,
	}
}
