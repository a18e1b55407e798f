// Package service contém a lógica de negócio do checkout de assinaturas
package service

import (
	"errors"
	"fmt"
	"strings"
)

// Erros de negócio da validação de cupons
var (
	// ErrCouponNotFound indica que nenhum cupom ativo corresponde ao código
	ErrCouponNotFound = errors.New("cupom não encontrado ou inativo")

	// ErrCouponExpired indica que o cupom está fora da janela de ativação
	ErrCouponExpired = errors.New("cupom expirado")

	// ErrCouponUsageExceeded indica que o cupom atingiu o limite de usos
	ErrCouponUsageExceeded = errors.New("cupom atingiu o limite de usos")
)

// SecurityError indica reprovação na verificação anti-bot. O fluxo é
// abortado antes de qualquer chamada ao gateway.
type SecurityError struct {
	ErrorCodes []string
}

func (e *SecurityError) Error() string {
	return fmt.Sprintf("Verificação de segurança falhou: %s. Por favor, recarregue a página.",
		strings.Join(e.ErrorCodes, ", "))
}

// ProviderError indica falha na criação do cliente ou da assinatura no
// gateway de cobrança. Quando Rejection é true, a API rejeitou os dados
// com uma descrição própria, repassada verbatim ao cliente; caso contrário
// (timeout, falha de rede, resposta malformada) a mensagem é interna e o
// cliente recebe um erro genérico de servidor. Não há retentativa.
type ProviderError struct {
	Operation string // "customer" ou "subscription"
	Message   string
	Rejection bool
	Err       error
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError cria um ProviderError preservando o erro original
func NewProviderError(operation string, err error) *ProviderError {
	return &ProviderError{
		Operation: operation,
		Message:   err.Error(),
		Rejection: isDataRejection(err),
		Err:       err,
	}
}

// isDataRejection verifica se o erro do adaptador é uma rejeição
// estruturada de dados pela API, única condição em que a mensagem pode
// ser exibida ao cliente final
func isDataRejection(err error) bool {
	var rej interface{ DataRejection() bool }
	if errors.As(err, &rej) {
		return rej.DataRejection()
	}
	return false
}

// IsCouponError retorna true para qualquer erro de validação de cupom
func IsCouponError(err error) bool {
	return errors.Is(err, ErrCouponNotFound) ||
		errors.Is(err, ErrCouponExpired) ||
		errors.Is(err, ErrCouponUsageExceeded)
}
