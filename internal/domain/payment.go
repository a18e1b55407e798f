package domain

import "time"

// PaymentMethod representa o método de pagamento escolhido no checkout
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodPixAuto    PaymentMethod = "pix_auto"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

// BillingType representa o tipo de cobrança no gateway de pagamento
type BillingType string

const (
	BillingTypeCreditCard BillingType = "CREDIT_CARD"
	BillingTypePix        BillingType = "PIX"
	BillingTypeBoleto     BillingType = "BOLETO"
)

// paymentMethodRule define o comportamento de cada método de pagamento:
// tipo de cobrança no gateway, elegibilidade a trial e prazo do primeiro
// vencimento. A tabela única mantém o mapeamento auditável.
type paymentMethodRule struct {
	billingType BillingType
	trial       bool
	dueOffset   int // Dias até o primeiro vencimento
}

var paymentMethodRules = map[PaymentMethod]paymentMethodRule{
	PaymentMethodCreditCard: {billingType: BillingTypeCreditCard, trial: true, dueOffset: 7},
	PaymentMethodPixAuto:    {billingType: BillingTypePix, trial: true, dueOffset: 7},
	PaymentMethodPix:        {billingType: BillingTypePix, trial: false, dueOffset: 0},
	PaymentMethodBoleto:     {billingType: BillingTypeBoleto, trial: false, dueOffset: 3},
}

// IsValid verifica se o método de pagamento é um dos suportados
func (m PaymentMethod) IsValid() bool {
	_, ok := paymentMethodRules[m]
	return ok
}

// BillingType retorna o tipo de cobrança correspondente no gateway
func (m PaymentMethod) BillingType() BillingType {
	return paymentMethodRules[m].billingType
}

// HasTrial retorna true para métodos elegíveis a período de teste
func (m PaymentMethod) HasTrial() bool {
	return paymentMethodRules[m].trial
}

// NextDueDate calcula a data do primeiro vencimento a partir da submissão
func (m PaymentMethod) NextDueDate(submittedAt time.Time) time.Time {
	return submittedAt.AddDate(0, 0, paymentMethodRules[m].dueOffset)
}

// HasDeferredArtifact retorna true para métodos cuja primeira cobrança gera
// um artefato de pagamento (QR Code PIX ou boleto) a ser exibido ao cliente
func (m PaymentMethod) HasDeferredArtifact() bool {
	return m == PaymentMethodPix || m == PaymentMethodPixAuto || m == PaymentMethodBoleto
}
