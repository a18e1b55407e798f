package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PlanKey identifica um plano no catálogo
type PlanKey string

const (
	PlanStarter      PlanKey = "starter"
	PlanPro          PlanKey = "pro"
	PlanBusiness     PlanKey = "business"
	PlanIntelligence PlanKey = "intelligence"
)

// Plan representa um plano de assinatura do catálogo. O catálogo é
// configuração de processo, somente leitura: nada no fluxo de checkout o
// altera.
type Plan struct {
	Key    PlanKey
	Prices map[BillingCycle]decimal.Decimal

	// ID do plano no painel administrativo (gravado no registro da empresa)
	ProviderPlanID string
}

// planCatalog indexa os planos disponíveis por chave
var planCatalog = map[PlanKey]Plan{
	PlanStarter: {
		Key: PlanStarter,
		Prices: map[BillingCycle]decimal.Decimal{
			BillingCycleMonthly: decimal.RequireFromString("99.90"),
			BillingCycleYearly:  decimal.RequireFromString("890.00"),
		},
		ProviderPlanID: "4f65fc87-2c9c-46cd-9ea3-6fa1d7d12889",
	},
	PlanPro: {
		Key: PlanPro,
		Prices: map[BillingCycle]decimal.Decimal{
			BillingCycleMonthly: decimal.RequireFromString("297.00"),
			BillingCycleYearly:  decimal.RequireFromString("2600.00"),
		},
		ProviderPlanID: "3c6ad4b5-6e31-48b8-ad92-715cec145eae",
	},
	PlanBusiness: {
		Key: PlanBusiness,
		Prices: map[BillingCycle]decimal.Decimal{
			BillingCycleMonthly: decimal.RequireFromString("497.00"),
			BillingCycleYearly:  decimal.RequireFromString("4400.00"),
		},
		ProviderPlanID: "d9552f1d-122e-4e68-bd60-c16592167c80",
	},
	PlanIntelligence: {
		Key: PlanIntelligence,
		Prices: map[BillingCycle]decimal.Decimal{
			BillingCycleMonthly: decimal.RequireFromString("997.00"),
			BillingCycleYearly:  decimal.RequireFromString("8900.00"),
		},
		ProviderPlanID: "a1d17fda-74e3-4e96-a5ff-de8843f37546",
	},
}

// IsValid verifica se a chave corresponde a um plano do catálogo
func (k PlanKey) IsValid() bool {
	_, ok := planCatalog[k]
	return ok
}

// PlanByKey busca um plano no catálogo
func PlanByKey(key PlanKey) (Plan, bool) {
	p, ok := planCatalog[key]
	return p, ok
}

// DisplayName retorna o nome de exibição do plano (ex: "Plano Business")
func (p Plan) DisplayName() string {
	k := string(p.Key)
	return "Plano " + strings.ToUpper(k[:1]) + k[1:]
}

// BasePrice retorna o preço base do plano para um ciclo de cobrança
func (p Plan) BasePrice(cycle BillingCycle) decimal.Decimal {
	return p.Prices[cycle]
}
