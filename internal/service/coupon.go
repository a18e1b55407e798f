package service

import (
	"context"
	"fmt"
	"time"

	"github.com/auralabs/aura-checkout/backend/internal/domain"
	"github.com/auralabs/aura-checkout/backend/internal/repository"
)

// CouponService valida cupons de desconto contra o banco
type CouponService struct {
	repo repository.CouponRepository
	now  func() time.Time
}

// NewCouponService cria uma nova instância do CouponService
func NewCouponService(repo repository.CouponRepository) *CouponService {
	return &CouponService{
		repo: repo,
		now:  time.Now,
	}
}

// Validate busca um cupom ativo pelo código e avalia janela de ativação e
// limite de usos. O código é comparado como gravado (maiúsculas); quem
// chama normaliza. O cupom é retornado sem alteração.
//
// TODO: incrementar current_uses quando o checkout conclui; hoje o
// contador só é lido, nunca gravado.
func (s *CouponService) Validate(ctx context.Context, code string) (*domain.Coupon, error) {
	coupon, err := s.repo.FindActiveByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar cupom: %w", err)
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	if !coupon.IsWithinWindow(s.now()) {
		return nil, ErrCouponExpired
	}
	if coupon.IsUsageExceeded() {
		return nil, ErrCouponUsageExceeded
	}

	return coupon, nil
}
