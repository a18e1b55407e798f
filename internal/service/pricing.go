package service

import (
	"github.com/shopspring/decimal"

	"github.com/auralabs/aura-checkout/backend/internal/domain"
)

// FinalPrice aplica o desconto de um cupom (opcional) sobre o preço base.
// Função pura, sem I/O. O resultado nunca é negativo.
func FinalPrice(basePrice decimal.Decimal, coupon *domain.Coupon) decimal.Decimal {
	if coupon == nil {
		return basePrice
	}

	final := basePrice.Sub(coupon.DiscountFor(basePrice))
	if final.IsNegative() {
		return decimal.Zero
	}
	return final
}
