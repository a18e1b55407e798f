package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType representa o tipo de desconto de um cupom
type DiscountType string

const (
	DiscountTypeFixed      DiscountType = "fixed"      // Valor fixo em reais
	DiscountTypePercentage DiscountType = "percentage" // Percentual sobre o preço base
)

// Coupon representa um cupom de desconto
type Coupon struct {
	ID       string
	Code     string // Único, normalizado em maiúsculas
	Type     DiscountType
	Value    decimal.Decimal
	IsActive bool

	// Limite de usos; nil = sem limite
	MaxUses     *int
	CurrentUses int

	// Janela de ativação
	StartDate time.Time
	EndDate   time.Time
}

// IsWithinWindow verifica se o instante está dentro da janela de ativação
func (c *Coupon) IsWithinWindow(at time.Time) bool {
	return !at.Before(c.StartDate) && !at.After(c.EndDate)
}

// IsUsageExceeded verifica se o cupom atingiu o limite de usos
func (c *Coupon) IsUsageExceeded() bool {
	if c.MaxUses == nil {
		return false
	}
	return c.CurrentUses >= *c.MaxUses
}

// DiscountFor calcula o desconto sobre um preço base.
// Percentual: base * valor / 100. Fixo: o próprio valor.
func (c *Coupon) DiscountFor(basePrice decimal.Decimal) decimal.Decimal {
	if c.Type == DiscountTypePercentage {
		return basePrice.Mul(c.Value).Div(decimal.NewFromInt(100))
	}
	return c.Value
}
