package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralabs/aura-checkout/backend/internal/domain"
	"github.com/auralabs/aura-checkout/backend/internal/service"
)

type mockProcessor struct {
	processFunc func(ctx context.Context, sub *domain.CheckoutSubmission, clientIP string) (*service.Result, error)
	gotIP       string
}

func (m *mockProcessor) Process(ctx context.Context, sub *domain.CheckoutSubmission, clientIP string) (*service.Result, error) {
	m.gotIP = clientIP
	return m.processFunc(ctx, sub, clientIP)
}

type mockValidator struct {
	validateFunc func(ctx context.Context, code string) (*domain.Coupon, error)
	gotCode      string
}

func (m *mockValidator) Validate(ctx context.Context, code string) (*domain.Coupon, error) {
	m.gotCode = code
	return m.validateFunc(ctx, code)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleCheckoutSuccess(t *testing.T) {
	proc := &mockProcessor{
		processFunc: func(ctx context.Context, sub *domain.CheckoutSubmission, clientIP string) (*service.Result, error) {
			return &service.Result{
				SubscriptionID:      "sub-local-1",
				CompanyID:           "comp-local-1",
				AsaasSubscriptionID: "sub_abc123",
				AsaasCustomerID:     "cus_abc123",
				PixQrCode:           "base64img",
				PixCopyPaste:        "00020126...",
			}, nil
		},
	}
	h := NewCheckoutHandler(proc, nil)

	rec := postJSON(t, h.HandleCheckout, map[string]string{
		"email":         "cliente@example.com",
		"paymentMethod": "pix",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp checkoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "sub-local-1", resp.SubscriptionID)
	assert.Equal(t, "comp-local-1", resp.CompanyID)
	assert.Equal(t, "sub_abc123", resp.AsaasSubscriptionID)
	assert.Equal(t, "cus_abc123", resp.AsaasCustomerID)
	assert.Equal(t, "base64img", resp.PixQrCode)
	assert.Equal(t, "00020126...", resp.PixCopyPaste)
	assert.Empty(t, resp.Error)
}

func TestHandleCheckoutErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "erro de validação vira 400 com mensagem do campo",
			err:        domain.NewValidationError("email", "email inválido"),
			wantStatus: http.StatusBadRequest,
			wantError:  "erro de validação no campo 'email': email inválido",
		},
		{
			name:       "falha de segurança vira 400",
			err:        &service.SecurityError{ErrorCodes: []string{"invalid-input-response"}},
			wantStatus: http.StatusBadRequest,
			wantError:  "Verificação de segurança falhou: invalid-input-response. Por favor, recarregue a página.",
		},
		{
			name:       "cupom inválido vira 400",
			err:        service.ErrCouponExpired,
			wantStatus: http.StatusBadRequest,
			wantError:  "cupom expirado",
		},
		{
			name: "rejeição estruturada do gateway vira 400 com a mensagem do gateway",
			err: &service.ProviderError{
				Operation: "subscription",
				Message:   "O CPF informado é inválido",
				Rejection: true,
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "O CPF informado é inválido",
		},
		{
			name: "falha de transporte com o gateway vira 500 genérico sem vazar detalhes",
			err: &service.ProviderError{
				Operation: "customer",
				Message:   "asaas: serviço indisponível: dial tcp: connection refused",
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "erro ao processar pagamento, tente novamente",
		},
		{
			name: "resposta malformada do gateway vira 500 genérico sem o corpo cru",
			err: &service.ProviderError{
				Operation: "subscription",
				Message:   "erro da API: status 502 - <html>502 Bad Gateway</html>",
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "erro ao processar pagamento, tente novamente",
		},
		{
			name:       "erro inesperado vira 500 genérico",
			err:        errors.New("connection reset by peer"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "erro ao processar pagamento, tente novamente",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc := &mockProcessor{
				processFunc: func(ctx context.Context, sub *domain.CheckoutSubmission, clientIP string) (*service.Result, error) {
					return nil, tt.err
				},
			}
			h := NewCheckoutHandler(proc, nil)

			rec := postJSON(t, h.HandleCheckout, map[string]string{"email": "x@example.com"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp checkoutResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}

func TestHandleCheckoutInvalidBody(t *testing.T) {
	h := NewCheckoutHandler(&mockProcessor{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader([]byte("{corrompido")))
	rec := httptest.NewRecorder()
	h.HandleCheckout(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp checkoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestHandleCheckoutClientIP(t *testing.T) {
	proc := &mockProcessor{
		processFunc: func(ctx context.Context, sub *domain.CheckoutSubmission, clientIP string) (*service.Result, error) {
			return &service.Result{}, nil
		},
	}
	h := NewCheckoutHandler(proc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader([]byte("{}")))
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	h.HandleCheckout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "203.0.113.7", proc.gotIP)
}

func TestRoutesPreflightCORS(t *testing.T) {
	h := NewCheckoutHandler(&mockProcessor{}, &mockValidator{})
	router := h.Routes()

	req := httptest.NewRequest(http.MethodOptions, "/checkout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Empty(t, rec.Body.String())
}

func TestHandleValidateCouponSuccess(t *testing.T) {
	maxUses := 100
	val := &mockValidator{
		validateFunc: func(ctx context.Context, code string) (*domain.Coupon, error) {
			return &domain.Coupon{
				ID:          "cpn-1",
				Code:        "BEMVINDO10",
				Type:        domain.DiscountTypePercentage,
				Value:       decimal.NewFromInt(10),
				IsActive:    true,
				MaxUses:     &maxUses,
				CurrentUses: 3,
				StartDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				EndDate:     time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	h := NewCheckoutHandler(nil, val)

	rec := postJSON(t, h.HandleValidateCoupon, map[string]string{"code": "bemvindo10"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "BEMVINDO10", val.gotCode, "código deve ser normalizado para maiúsculas")

	var resp couponResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Coupon)
	assert.Equal(t, "BEMVINDO10", resp.Coupon.Code)
	assert.Equal(t, "percentage", resp.Coupon.Type)
	assert.True(t, resp.Coupon.Value.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "2026-12-31", resp.Coupon.EndDate)
}

func TestHandleValidateCouponRejected(t *testing.T) {
	val := &mockValidator{
		validateFunc: func(ctx context.Context, code string) (*domain.Coupon, error) {
			return nil, service.ErrCouponNotFound
		},
	}
	h := NewCheckoutHandler(nil, val)

	rec := postJSON(t, h.HandleValidateCoupon, map[string]string{"code": "NADA"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp couponResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Coupon)
	assert.Equal(t, "cupom não encontrado ou inativo", resp.Error)
}

func TestHandleValidateCouponMissingCode(t *testing.T) {
	h := NewCheckoutHandler(nil, &mockValidator{})

	rec := postJSON(t, h.HandleValidateCoupon, map[string]string{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	HealthCheck(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}
