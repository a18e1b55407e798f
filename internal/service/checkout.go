package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auralabs/aura-checkout/backend/internal/domain"
	"github.com/auralabs/aura-checkout/backend/internal/ports"
	"github.com/auralabs/aura-checkout/backend/internal/repository"
)

// Result é o desfecho de um checkout bem-sucedido, devolvido ao formulário
type Result struct {
	SubscriptionID      string // ID do registro comercial da assinatura
	CompanyID           string // ID do registro comercial da empresa
	AsaasSubscriptionID string
	AsaasCustomerID     string

	// Artefatos de pagamento, preenchidos conforme o método
	PixQrCode     string
	PixCopyPaste  string
	BoletoURL     string
	BoletoBarcode string
}

// CheckoutService orquestra o fluxo completo de checkout de assinatura:
// verificação anti-bot, cupom e preço, resolução do cliente no gateway,
// criação da assinatura, persistência dos registros comerciais, artefato
// de pagamento e notificação por email.
type CheckoutService struct {
	billing    ports.BillingProvider
	verifier   ports.AbuseVerifier
	notifier   ports.Notifier
	coupons    *CouponService
	commercial repository.CommercialRepository

	now func() time.Time

	// Agrupa os envios de notificação em andamento (fire-and-forget)
	notifyWG      sync.WaitGroup
	notifyTimeout time.Duration
}

// NewCheckoutService cria uma nova instância do CheckoutService
func NewCheckoutService(
	billing ports.BillingProvider,
	verifier ports.AbuseVerifier,
	notifier ports.Notifier,
	coupons *CouponService,
	commercial repository.CommercialRepository,
) *CheckoutService {
	return &CheckoutService{
		billing:       billing,
		verifier:      verifier,
		notifier:      notifier,
		coupons:       coupons,
		commercial:    commercial,
		now:           time.Now,
		notifyTimeout: 15 * time.Second,
	}
}

// Process executa o fluxo de checkout de ponta a ponta. Os passos são
// estritamente sequenciais: cada um depende da saída do anterior.
//
// Falhas de validação, verificação anti-bot e gateway abortam o fluxo;
// falhas de persistência e notificação são logadas e não alteram o
// sucesso reportado, pois o gateway é a fonte da verdade da cobrança.
//
// Reenvio do mesmo documento reaproveita o cliente existente no gateway,
// mas cria uma segunda assinatura (não idempotente por desenho).
func (s *CheckoutService) Process(ctx context.Context, sub *domain.CheckoutSubmission, clientIP string) (*Result, error) {
	// 1. Validação local, antes de qualquer chamada externa
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	// 2. Verificação anti-bot
	verification, err := s.verifier.Verify(ctx, sub.TurnstileToken, clientIP)
	if err != nil {
		return nil, fmt.Errorf("erro na verificação de segurança: %w", err)
	}
	if !verification.Success {
		slog.Warn("verificação turnstile reprovada", "email", sub.Email, "codes", verification.ErrorCodes)
		return nil, &SecurityError{ErrorCodes: verification.ErrorCodes}
	}

	// 3. Cupom + preço determinam o valor da cobrança
	plan, _ := domain.PlanByKey(sub.PlanKey)
	var coupon *domain.Coupon
	if sub.CouponCode != "" {
		coupon, err = s.coupons.Validate(ctx, strings.ToUpper(sub.CouponCode))
		if err != nil {
			return nil, err
		}
	}
	chargeValue := FinalPrice(plan.BasePrice(sub.BillingCycle), coupon)

	// 4. Resolve o cliente no gateway (dedup por documento)
	customer, err := s.resolveCustomer(ctx, sub)
	if err != nil {
		return nil, err
	}

	// 5. Cria a assinatura no gateway
	submittedAt := s.now()
	subscription, err := s.createSubscription(ctx, customer.ID, sub, plan, chargeValue, submittedAt)
	if err != nil {
		return nil, err
	}

	result := &Result{
		AsaasSubscriptionID: subscription.ID,
		AsaasCustomerID:     customer.ID,
	}

	// 6. Persiste os registros comerciais. Escritas independentes: falha
	// aqui não derruba um checkout que o gateway já aceitou.
	s.writeCommercialRecords(ctx, sub, plan, chargeValue, submittedAt, result)

	// 7. Artefato de pagamento para métodos com primeira cobrança visível
	notification := ports.CheckoutNotification{
		To:           sub.Email,
		CustomerName: sub.FullName,
		PlanName:     plan.DisplayName(),
		PlanValue:    chargeValue,
		Document:     sub.CleanDocument(),
		IsTrial:      sub.PaymentMethod.HasTrial(),
	}
	hasArtifact := s.attachPaymentArtifact(ctx, sub.PaymentMethod, subscription.ID, result, &notification)

	// 8. Notificação por email (best-effort, nunca bloqueia a resposta)
	switch {
	case sub.PaymentMethod == domain.PaymentMethodCreditCard:
		notification.Type = ports.NotificationTrialStarted
		s.dispatchNotification(notification)
	case hasArtifact && sub.PaymentMethod == domain.PaymentMethodPix:
		notification.Type = ports.NotificationPixCreated
		s.dispatchNotification(notification)
	case hasArtifact && sub.PaymentMethod == domain.PaymentMethodPixAuto:
		notification.Type = ports.NotificationPixAutoCreated
		s.dispatchNotification(notification)
	case hasArtifact && sub.PaymentMethod == domain.PaymentMethodBoleto:
		notification.Type = ports.NotificationBoletoCreated
		s.dispatchNotification(notification)
	}

	return result, nil
}

// resolveCustomer busca o cliente pelo documento e cria se não existir.
// O primeiro resultado da busca vence; a sequência busca-depois-cria não
// é atômica, então submissões concorrentes com o mesmo documento podem
// criar clientes duplicados (lacuna conhecida - a unicidade do lado do
// gateway não é garantida).
func (s *CheckoutService) resolveCustomer(ctx context.Context, sub *domain.CheckoutSubmission) (*ports.Customer, error) {
	document := sub.CleanDocument()

	existing, err := s.billing.FindCustomerByDocument(ctx, document)
	if err != nil {
		return nil, NewProviderError("customer", err)
	}
	if len(existing) > 0 {
		return &existing[0], nil
	}

	customer, err := s.billing.CreateCustomer(ctx, ports.CreateCustomerRequest{
		Name:              sub.FullName,
		Email:             sub.Email,
		Phone:             sub.CleanPhone(),
		Document:          document,
		PostalCode:        sub.CleanPostalCode(),
		Address:           sub.Address,
		AddressNumber:     sub.Number,
		Province:          sub.City,
		ExternalReference: document,
	})
	if err != nil {
		return nil, NewProviderError("customer", err)
	}
	return customer, nil
}

// createSubscription monta e envia a requisição de assinatura com os
// campos específicos do método de pagamento
func (s *CheckoutService) createSubscription(ctx context.Context, customerID string, sub *domain.CheckoutSubmission, plan domain.Plan, chargeValue decimal.Decimal, submittedAt time.Time) (*ports.Subscription, error) {
	req := ports.CreateSubscriptionRequest{
		CustomerID:        customerID,
		BillingType:       sub.PaymentMethod.BillingType(),
		Value:             chargeValue,
		NextDueDate:       sub.PaymentMethod.NextDueDate(submittedAt).Format("2006-01-02"),
		Cycle:             sub.BillingCycle,
		Description:       fmt.Sprintf("Aura Almoxarifado - %s", plan.DisplayName()),
		ExternalReference: sub.CleanDocument(),
	}

	if sub.PaymentMethod == domain.PaymentMethodCreditCard {
		month, year := sub.CardExpiryParts()
		req.CreditCard = &ports.CreditCard{
			HolderName:  sub.CardName,
			Number:      domain.OnlyDigits(sub.CardNumber),
			ExpiryMonth: month,
			ExpiryYear:  year,
			CCV:         sub.CardCVC,
		}
		req.CardHolderInfo = &ports.CreditCardHolderInfo{
			Name:          sub.CardName,
			Email:         sub.Email,
			Document:      sub.CleanDocument(),
			PostalCode:    sub.CleanPostalCode(),
			AddressNumber: sub.Number,
			Phone:         sub.CleanPhone(),
		}
	}

	subscription, err := s.billing.CreateSubscription(ctx, req)
	if err != nil {
		return nil, NewProviderError("subscription", err)
	}
	return subscription, nil
}

// writeCommercialRecords grava os retratos da assinatura e da empresa.
// Cada escrita é tentada mesmo se a outra falhar; falhas são logadas.
func (s *CheckoutService) writeCommercialRecords(ctx context.Context, sub *domain.CheckoutSubmission, plan domain.Plan, chargeValue decimal.Decimal, submittedAt time.Time, result *Result) {
	subRecord := domain.NewSubscriptionRecord(sub, plan, chargeValue, submittedAt)
	if id, err := s.commercial.InsertSubscription(ctx, subRecord); err != nil {
		slog.Error("erro ao gravar registro de assinatura", "cnpj", subRecord.CNPJ, "error", err)
	} else {
		result.SubscriptionID = id
	}

	compRecord := domain.NewCompanyRecord(sub, plan, submittedAt)
	if id, err := s.commercial.InsertCompany(ctx, compRecord); err != nil {
		slog.Error("erro ao gravar registro de empresa", "cnpj", compRecord.CNPJ, "error", err)
	} else {
		result.CompanyID = id
	}
}

// attachPaymentArtifact busca a primeira cobrança da assinatura e extrai
// o artefato do método (QR Code PIX ou boleto). Sem cobrança gerada ainda,
// a resposta simplesmente omite os campos - não é erro. Falhas de consulta
// também só são logadas: a assinatura já existe no gateway.
func (s *CheckoutService) attachPaymentArtifact(ctx context.Context, method domain.PaymentMethod, subscriptionID string, result *Result, notification *ports.CheckoutNotification) bool {
	if !method.HasDeferredArtifact() {
		return false
	}

	payments, err := s.billing.ListSubscriptionPayments(ctx, subscriptionID)
	if err != nil {
		slog.Error("erro ao listar cobranças da assinatura", "subscription", subscriptionID, "error", err)
		return false
	}
	if len(payments) == 0 {
		return false
	}
	first := payments[0]

	switch method {
	case domain.PaymentMethodPix, domain.PaymentMethodPixAuto:
		qr, err := s.billing.GetPixQrCode(ctx, first.ID)
		if err != nil {
			slog.Error("erro ao obter QR Code PIX", "payment", first.ID, "error", err)
			return false
		}
		result.PixQrCode = qr.EncodedImage
		result.PixCopyPaste = qr.Payload
		notification.PixQrCode = qr.EncodedImage
		notification.PixCopyPaste = qr.Payload
	case domain.PaymentMethodBoleto:
		result.BoletoURL = first.BankSlipURL
		result.BoletoBarcode = first.NossoNumero
		notification.BoletoURL = first.BankSlipURL
	}
	return true
}

// dispatchNotification envia o email de desfecho em uma goroutine própria,
// com contexto desacoplado da requisição. O erro é observado apenas para
// log, nunca se junta ao fluxo principal.
func (s *CheckoutService) dispatchNotification(n ports.CheckoutNotification) {
	s.notifyWG.Add(1)
	go func() {
		defer s.notifyWG.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()

		if err := s.notifier.NotifyCheckout(ctx, n); err != nil {
			slog.Error("erro ao enviar email de checkout", "to", n.To, "type", n.Type, "error", err)
		}
	}()
}
