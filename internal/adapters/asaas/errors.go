package asaas

import (
	"errors"
	"net/http"
)

// Códigos de erro comuns da API Asaas
const (
	ErrCodeInvalidCpfCnpj = "invalid_cpfCnpj"
	ErrCodeInvalidValue   = "invalid_value"
	ErrCodeInvalidAction  = "invalid_action"
	ErrCodeInvalidCard    = "invalid_creditCard"
)

// Erros sentinela para condições comuns
var (
	// ErrNotFound indica que o recurso não foi encontrado
	ErrNotFound = errors.New("asaas: recurso não encontrado")

	// ErrUnauthorized indica falha de autenticação (access_token inválido)
	ErrUnauthorized = errors.New("asaas: não autorizado")

	// ErrUnavailable indica falha de rede ou timeout na comunicação
	ErrUnavailable = errors.New("asaas: serviço indisponível")
)

// IsNotFound retorna true se o erro indica que o recurso não foi encontrado
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound
	}
	return false
}

// IsUnauthorized retorna true se o erro indica falha de autenticação
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrUnauthorized) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized
	}
	return false
}

// IsValidationRejection retorna true se a API rejeitou a requisição por
// dados inválidos (4xx com payload de erros). A mensagem deve ser
// repassada ao cliente sem nova tentativa.
func IsValidationRejection(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= 400 && apiErr.Status < 500
	}
	return false
}
