// Package asaas implementa o adaptador para a API de cobranças Asaas (v3).
//
// Este pacote implementa:
//   - Clientes (busca por CPF/CNPJ e criação)
//   - Assinaturas recorrentes (cartão, PIX e boleto)
//   - Listagem de cobranças de uma assinatura
//   - QR Code PIX de uma cobrança
//
// # Autenticação
//
// A API Asaas usa um token estático enviado no header access_token,
// gerado no painel Asaas. Não há OAuth nem certificado de cliente.
//
// # Início Rápido
//
// Criar o cliente:
//
//	client := asaas.NewClient(&cfg.Asaas)
//
// Buscar ou criar um cliente de cobrança:
//
//	found, err := client.FindCustomerByDocument(ctx, "12345678901")
//	if len(found) == 0 {
//	    customer, err := client.CreateCustomer(ctx, ports.CreateCustomerRequest{
//	        Name:     "João Silva",
//	        Email:    "joao@example.com",
//	        Document: "12345678901",
//	    })
//	}
//
// Criar uma assinatura PIX:
//
//	sub, err := client.CreateSubscription(ctx, ports.CreateSubscriptionRequest{
//	    CustomerID:  customer.ID,
//	    BillingType: domain.BillingTypePix,
//	    Value:       decimal.RequireFromString("99.90"),
//	    NextDueDate: "2026-09-01",
//	    Cycle:       domain.BillingCycleMonthly,
//	})
//
// # Tratamento de Erros
//
// Rejeições da API chegam como *APIError com o array "errors" original;
// a primeira descrição é a mensagem exibida ao cliente. Helpers:
//
//	if asaas.IsValidationRejection(err) {
//	    // Dados rejeitados pela API - repassar mensagem, não retentar
//	}
//
// # Documentação da API
//
// Para mais detalhes, consulte a documentação oficial:
// https://docs.asaas.com
package asaas
