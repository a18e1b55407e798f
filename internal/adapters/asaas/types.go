package asaas

// CustomerRequest representa a requisição de criação de cliente
type CustomerRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	CpfCnpj           string `json:"cpfCnpj"`
	PostalCode        string `json:"postalCode,omitempty"`
	Address           string `json:"address,omitempty"`
	AddressNumber     string `json:"addressNumber,omitempty"`
	Province          string `json:"province,omitempty"`
	ExternalReference string `json:"externalReference,omitempty"`
}

// Customer representa um cliente na API Asaas
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	CpfCnpj string `json:"cpfCnpj"`
}

// CustomerListResponse é a resposta paginada da listagem de clientes
type CustomerListResponse struct {
	Data       []Customer `json:"data"`
	TotalCount int        `json:"totalCount"`
}

// CreditCard representa os dados do cartão embutidos na assinatura
type CreditCard struct {
	HolderName  string `json:"holderName"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CCV         string `json:"ccv"`
}

// CreditCardHolderInfo representa os dados do titular do cartão
type CreditCardHolderInfo struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	CpfCnpj       string `json:"cpfCnpj"`
	PostalCode    string `json:"postalCode"`
	AddressNumber string `json:"addressNumber"`
	Phone         string `json:"phone"`
}

// SubscriptionRequest representa a requisição de criação de assinatura
type SubscriptionRequest struct {
	Customer          string  `json:"customer"`
	BillingType       string  `json:"billingType"` // CREDIT_CARD, PIX, BOLETO
	Value             float64 `json:"value"`
	NextDueDate       string  `json:"nextDueDate"` // AAAA-MM-DD
	Cycle             string  `json:"cycle"`       // MONTHLY, YEARLY
	Description       string  `json:"description,omitempty"`
	ExternalReference string  `json:"externalReference,omitempty"`

	CreditCard           *CreditCard           `json:"creditCard,omitempty"`
	CreditCardHolderInfo *CreditCardHolderInfo `json:"creditCardHolderInfo,omitempty"`
}

// Subscription representa uma assinatura criada na API Asaas
type Subscription struct {
	ID          string  `json:"id"`
	Customer    string  `json:"customer"`
	Status      string  `json:"status"` // ACTIVE, EXPIRED, INACTIVE
	Value       float64 `json:"value"`
	NextDueDate string  `json:"nextDueDate"`
	Cycle       string  `json:"cycle"`
}

// Payment representa uma cobrança (fatura) na API Asaas
type Payment struct {
	ID          string  `json:"id"`
	Status      string  `json:"status"` // PENDING, RECEIVED, CONFIRMED, OVERDUE
	Value       float64 `json:"value"`
	DueDate     string  `json:"dueDate"`
	BillingType string  `json:"billingType"`
	BankSlipURL string  `json:"bankSlipUrl,omitempty"`
	NossoNumero string  `json:"nossoNumero,omitempty"`
	InvoiceURL  string  `json:"invoiceUrl,omitempty"`
}

// PaymentListResponse é a resposta paginada da listagem de cobranças
type PaymentListResponse struct {
	Data       []Payment `json:"data"`
	TotalCount int       `json:"totalCount"`
}

// PixQrCodeResponse é a resposta do endpoint de QR Code PIX
type PixQrCodeResponse struct {
	Success        bool   `json:"success"`
	EncodedImage   string `json:"encodedImage"` // Imagem em base64
	Payload        string `json:"payload"`      // Código copia e cola
	ExpirationDate string `json:"expirationDate,omitempty"`
}

// ErrorDetail é um item do array de erros retornado pela API
type ErrorDetail struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// APIError representa um erro retornado pela API Asaas.
// A API devolve um array "errors" mesmo para um único problema.
type APIError struct {
	Errors []ErrorDetail `json:"errors"`
	Status int           `json:"-"` // Status HTTP da resposta
}

// Error implementa a interface error devolvendo a primeira descrição,
// que é a mensagem exibida ao cliente
func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return e.Errors[0].Description
	}
	return "erro desconhecido da API Asaas"
}

// Code retorna o código do primeiro erro, se houver
func (e *APIError) Code() string {
	if len(e.Errors) > 0 {
		return e.Errors[0].Code
	}
	return ""
}

// DataRejection informa se o erro é uma rejeição estruturada de dados
// (4xx com payload de erros), cuja descrição pode ser exibida ao cliente.
// Falhas de transporte e respostas malformadas nunca passam por aqui.
func (e *APIError) DataRejection() bool {
	return e.Status >= 400 && e.Status < 500
}
