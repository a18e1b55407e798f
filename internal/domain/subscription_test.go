package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewCommercialRecords(t *testing.T) {
	submittedAt := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	plan, _ := PlanByKey(PlanBusiness)
	chargeValue := decimal.RequireFromString("497.00")

	t.Run("método com trial", func(t *testing.T) {
		sub := validSubmission()
		sub.PaymentMethod = PaymentMethodCreditCard

		rec := NewSubscriptionRecord(&sub, plan, chargeValue, submittedAt)
		if rec.Status != SubscriptionStatusTrial {
			t.Errorf("Status = %v, want trial", rec.Status)
		}
		if got := rec.NextBilling.Format("2006-01-02"); got != "2026-09-07" {
			t.Errorf("NextBilling = %v, want 2026-09-07", got)
		}
		if rec.Plan != "Plano Business" {
			t.Errorf("Plan = %v, want Plano Business", rec.Plan)
		}
		if rec.CNPJ != "12345678000190" {
			t.Errorf("CNPJ = %v, want apenas dígitos", rec.CNPJ)
		}

		comp := NewCompanyRecord(&sub, plan, submittedAt)
		if comp.Status != CompanyStatusPending {
			t.Errorf("Status = %v, want Pending", comp.Status)
		}
		if comp.PlanID != "d9552f1d-122e-4e68-bd60-c16592167c80" {
			t.Errorf("PlanID = %v", comp.PlanID)
		}
	})

	t.Run("método sem trial", func(t *testing.T) {
		sub := validSubmission()
		sub.PaymentMethod = PaymentMethodBoleto

		rec := NewSubscriptionRecord(&sub, plan, chargeValue, submittedAt)
		if rec.Status != SubscriptionStatusPendingPayment {
			t.Errorf("Status = %v, want pending_payment", rec.Status)
		}
		if got := rec.NextBilling.Format("2006-01-02"); got != "2026-09-03" {
			t.Errorf("NextBilling = %v, want 2026-09-03", got)
		}

		comp := NewCompanyRecord(&sub, plan, submittedAt)
		if comp.Status != CompanyStatusAwaitingPayment {
			t.Errorf("Status = %v, want AwaitingPayment", comp.Status)
		}
		if comp.Phone != "11999990000" {
			t.Errorf("Phone = %v, want apenas dígitos", comp.Phone)
		}
	})
}

func TestPlanCatalog(t *testing.T) {
	tests := []struct {
		key         PlanKey
		cycle       BillingCycle
		wantPrice   string
		displayName string
	}{
		{PlanStarter, BillingCycleMonthly, "99.90", "Plano Starter"},
		{PlanStarter, BillingCycleYearly, "890.00", "Plano Starter"},
		{PlanPro, BillingCycleMonthly, "297.00", "Plano Pro"},
		{PlanBusiness, BillingCycleMonthly, "497.00", "Plano Business"},
		{PlanBusiness, BillingCycleYearly, "4400.00", "Plano Business"},
		{PlanIntelligence, BillingCycleYearly, "8900.00", "Plano Intelligence"},
	}

	for _, tt := range tests {
		t.Run(string(tt.key)+"/"+string(tt.cycle), func(t *testing.T) {
			plan, ok := PlanByKey(tt.key)
			if !ok {
				t.Fatalf("PlanByKey(%v) não encontrou o plano", tt.key)
			}
			if got := plan.BasePrice(tt.cycle); !got.Equal(decimal.RequireFromString(tt.wantPrice)) {
				t.Errorf("BasePrice() = %v, want %v", got, tt.wantPrice)
			}
			if got := plan.DisplayName(); got != tt.displayName {
				t.Errorf("DisplayName() = %v, want %v", got, tt.displayName)
			}
		})
	}

	if PlanKey("enterprise").IsValid() {
		t.Error("IsValid() = true para plano inexistente")
	}
}

func TestCouponDiscountFor(t *testing.T) {
	base := decimal.RequireFromString("497.00")

	percentage := &Coupon{Type: DiscountTypePercentage, Value: decimal.NewFromInt(10)}
	if got := percentage.DiscountFor(base); !got.Equal(decimal.RequireFromString("49.70")) {
		t.Errorf("DiscountFor() = %v, want 49.70", got)
	}

	fixed := &Coupon{Type: DiscountTypeFixed, Value: decimal.NewFromInt(50)}
	if got := fixed.DiscountFor(base); !got.Equal(decimal.NewFromInt(50)) {
		t.Errorf("DiscountFor() = %v, want 50", got)
	}
}

func TestCouponWindowAndUsage(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	coupon := &Coupon{
		StartDate: now.AddDate(0, -1, 0),
		EndDate:   now.AddDate(0, 1, 0),
	}

	if !coupon.IsWithinWindow(now) {
		t.Error("IsWithinWindow() = false dentro da janela")
	}
	if coupon.IsWithinWindow(now.AddDate(0, 2, 0)) {
		t.Error("IsWithinWindow() = true após a janela")
	}
	if coupon.IsWithinWindow(now.AddDate(0, -2, 0)) {
		t.Error("IsWithinWindow() = true antes da janela")
	}

	if coupon.IsUsageExceeded() {
		t.Error("IsUsageExceeded() = true sem limite definido")
	}
	max := 10
	coupon.MaxUses = &max
	coupon.CurrentUses = 10
	if !coupon.IsUsageExceeded() {
		t.Error("IsUsageExceeded() = false com usos iguais ao limite")
	}
}
