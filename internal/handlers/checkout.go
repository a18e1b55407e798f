// Package handlers contém os handlers HTTP da aplicação
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/auralabs/aura-checkout/backend/internal/domain"
	"github.com/auralabs/aura-checkout/backend/internal/service"
)

// CheckoutProcessor define o que o handler precisa do serviço de checkout
type CheckoutProcessor interface {
	Process(ctx context.Context, sub *domain.CheckoutSubmission, clientIP string) (*service.Result, error)
}

// CouponValidator define o que o handler precisa da validação de cupons
type CouponValidator interface {
	Validate(ctx context.Context, code string) (*domain.Coupon, error)
}

// CheckoutHandler expõe o fluxo de checkout para o formulário
type CheckoutHandler struct {
	checkout CheckoutProcessor
	coupons  CouponValidator
}

// NewCheckoutHandler cria um novo handler de checkout
func NewCheckoutHandler(checkout CheckoutProcessor, coupons CouponValidator) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		coupons:  coupons,
	}
}

// Routes monta o subtree da API consumida pelo formulário
func (h *CheckoutHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(corsMiddleware)
	r.Options("/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/checkout", h.HandleCheckout)
	r.Post("/coupons/validate", h.HandleValidateCoupon)
	r.Get("/health", HealthCheck)
	return r
}

// checkoutResponse é o contrato de resposta com o formulário
type checkoutResponse struct {
	Success             bool   `json:"success"`
	SubscriptionID      string `json:"subscriptionId,omitempty"`
	CompanyID           string `json:"companyId,omitempty"`
	AsaasSubscriptionID string `json:"asaasSubscriptionId,omitempty"`
	AsaasCustomerID     string `json:"asaasCustomerId,omitempty"`
	PixQrCode           string `json:"pixQrCode,omitempty"`
	PixCopyPaste        string `json:"pixCopyPaste,omitempty"`
	BoletoURL           string `json:"boletoUrl,omitempty"`
	BoletoBarcode       string `json:"boletoBarcode,omitempty"`
	Error               string `json:"error,omitempty"`
}

// HandleCheckout processa uma submissão de checkout
// Endpoint: POST /api/checkout
func (h *CheckoutHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var sub domain.CheckoutSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, checkoutResponse{
			Success: false,
			Error:   "corpo da requisição inválido",
		})
		return
	}
	defer r.Body.Close()

	result, err := h.checkout.Process(r.Context(), &sub, clientIP(r))
	if err != nil {
		status, message := classifyCheckoutError(err)
		if status >= 500 {
			slog.Error("erro no checkout", "email", sub.Email, "error", err)
		}
		writeJSON(w, status, checkoutResponse{Success: false, Error: message})
		return
	}

	writeJSON(w, http.StatusOK, checkoutResponse{
		Success:             true,
		SubscriptionID:      result.SubscriptionID,
		CompanyID:           result.CompanyID,
		AsaasSubscriptionID: result.AsaasSubscriptionID,
		AsaasCustomerID:     result.AsaasCustomerID,
		PixQrCode:           result.PixQrCode,
		PixCopyPaste:        result.PixCopyPaste,
		BoletoURL:           result.BoletoURL,
		BoletoBarcode:       result.BoletoBarcode,
	})
}

// classifyCheckoutError mapeia o erro do fluxo para status e mensagem.
// Validação, segurança, cupom e rejeição estruturada do gateway são erros
// do cliente com mensagem legível; falha de transporte ou resposta
// malformada do gateway vira erro genérico de servidor, nunca o corpo cru.
func classifyCheckoutError(err error) (int, string) {
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		return http.StatusBadRequest, valErr.Error()
	}

	var secErr *service.SecurityError
	if errors.As(err, &secErr) {
		return http.StatusBadRequest, secErr.Error()
	}

	if service.IsCouponError(err) {
		return http.StatusBadRequest, err.Error()
	}

	var provErr *service.ProviderError
	if errors.As(err, &provErr) && provErr.Rejection {
		return http.StatusBadRequest, provErr.Message
	}

	return http.StatusInternalServerError, "erro ao processar pagamento, tente novamente"
}

// couponResponse é a resposta da validação de cupom
type couponResponse struct {
	Success bool        `json:"success"`
	Coupon  *couponJSON `json:"coupon,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// couponJSON espelha o formato consumido pelo formulário
type couponJSON struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Type        string          `json:"type"`
	Value       decimal.Decimal `json:"value"`
	IsActive    bool            `json:"is_active"`
	MaxUses     *int            `json:"max_uses,omitempty"`
	CurrentUses int             `json:"current_uses"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
}

// HandleValidateCoupon valida um cupom isoladamente (usado pelo formulário
// antes da submissão final)
// Endpoint: POST /api/coupons/validate
func (h *CheckoutHandler) HandleValidateCoupon(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		writeJSON(w, http.StatusBadRequest, couponResponse{
			Success: false,
			Error:   "código do cupom é obrigatório",
		})
		return
	}
	defer r.Body.Close()

	coupon, err := h.coupons.Validate(r.Context(), strings.ToUpper(req.Code))
	if err != nil {
		if service.IsCouponError(err) {
			writeJSON(w, http.StatusOK, couponResponse{Success: false, Error: err.Error()})
			return
		}
		slog.Error("erro ao validar cupom", "code", req.Code, "error", err)
		writeJSON(w, http.StatusInternalServerError, couponResponse{
			Success: false,
			Error:   "erro ao validar cupom, tente novamente",
		})
		return
	}

	writeJSON(w, http.StatusOK, couponResponse{
		Success: true,
		Coupon: &couponJSON{
			ID:          coupon.ID,
			Code:        coupon.Code,
			Type:        string(coupon.Type),
			Value:       coupon.Value,
			IsActive:    coupon.IsActive,
			MaxUses:     coupon.MaxUses,
			CurrentUses: coupon.CurrentUses,
			StartDate:   coupon.StartDate.Format("2006-01-02"),
			EndDate:     coupon.EndDate.Format("2006-01-02"),
		},
	})
}

// corsMiddleware libera o acesso do formulário hospedado em outra origem
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		next.ServeHTTP(w, r)
	})
}

// clientIP extrai o IP do cliente, preferindo o X-Forwarded-For do proxy
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	return r.RemoteAddr
}

// writeJSON serializa a resposta; o cliente sempre recebe um corpo JSON
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("erro ao serializar resposta", "error", err)
	}
}

// HealthCheck endpoint para verificar se o servidor está funcionando
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "aura-checkout-api",
	})
}
