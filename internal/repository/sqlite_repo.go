// Package repository implementa a persistência de cupons e registros
// comerciais em SQLite
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/auralabs/aura-checkout/backend/internal/domain"
)

// CouponRepository define a leitura de cupons
type CouponRepository interface {
	// FindActiveByCode busca um cupom ativo pelo código (case-sensitive;
	// os códigos são gravados em maiúsculas)
	FindActiveByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

// CommercialRepository define a escrita dos registros comerciais
type CommercialRepository interface {
	// InsertSubscription grava o retrato da assinatura e retorna o ID gerado
	InsertSubscription(ctx context.Context, rec *domain.SubscriptionRecord) (string, error)

	// InsertCompany grava o retrato da empresa e retorna o ID gerado
	InsertCompany(ctx context.Context, rec *domain.CompanyRecord) (string, error)
}

// sqliteRepository é a implementação SQLite dos dois repositórios
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository cria uma nova instância do repositório
func NewSQLiteRepository(db *sql.DB) *sqliteRepository {
	return &sqliteRepository{db: db}
}

// InitSchema cria as tabelas se ainda não existirem
func InitSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS coupons (
		id TEXT NOT NULL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		type TEXT NOT NULL,
		value TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1,
		max_uses INTEGER,
		current_uses INTEGER NOT NULL DEFAULT 0,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS subscriptions (
		id TEXT NOT NULL PRIMARY KEY,
		company TEXT NOT NULL,
		cnpj TEXT NOT NULL,
		plan TEXT NOT NULL,
		value TEXT NOT NULL,
		status TEXT NOT NULL,
		next_billing TEXT NOT NULL,
		payment_method TEXT NOT NULL,
		email TEXT NOT NULL,
		billing_cycle TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS companies (
		id TEXT NOT NULL PRIMARY KEY,
		cnpj TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		address TEXT NOT NULL,
		status TEXT NOT NULL,
		plan TEXT NOT NULL,
		plan_id TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`
	_, err := db.Exec(schema)
	return err
}

// FindActiveByCode busca um cupom ativo pelo código
func (r *sqliteRepository) FindActiveByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, code, type, value, is_active, max_uses, current_uses, start_date, end_date
		 FROM coupons WHERE code = ? AND is_active = 1`, code)

	var (
		c          domain.Coupon
		rawValue   string
		active     int
		maxUses    sql.NullInt64
		start, end string
	)
	if err := row.Scan(&c.ID, &c.Code, &c.Type, &rawValue, &active, &maxUses, &c.CurrentUses, &start, &end); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Cupom inexistente não é erro de infraestrutura
		}
		return nil, err
	}

	value, err := decimal.NewFromString(rawValue)
	if err != nil {
		return nil, fmt.Errorf("valor de cupom inválido no banco: %w", err)
	}
	c.Value = value
	c.IsActive = active == 1
	if maxUses.Valid {
		n := int(maxUses.Int64)
		c.MaxUses = &n
	}
	if c.StartDate, err = parseStoredTime(start); err != nil {
		return nil, fmt.Errorf("start_date inválida no banco: %w", err)
	}
	if c.EndDate, err = parseStoredTime(end); err != nil {
		return nil, fmt.Errorf("end_date inválida no banco: %w", err)
	}

	return &c, nil
}

// InsertSubscription grava o retrato da assinatura
func (r *sqliteRepository) InsertSubscription(ctx context.Context, rec *domain.SubscriptionRecord) (string, error) {
	id := rec.ID
	if id == "" {
		id = uuid.New().String()
	}

	stmt, err := r.db.PrepareContext(ctx,
		`INSERT INTO subscriptions(id, company, cnpj, plan, value, status, next_billing, payment_method, email, billing_cycle, created_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, id, rec.Company, rec.CNPJ, rec.Plan, rec.Value.String(),
		string(rec.Status), rec.NextBilling.Format("2006-01-02"), string(rec.PaymentMethod),
		rec.Email, string(rec.BillingCycle), rec.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return id, nil
}

// InsertCompany grava o retrato da empresa
func (r *sqliteRepository) InsertCompany(ctx context.Context, rec *domain.CompanyRecord) (string, error) {
	id := rec.ID
	if id == "" {
		id = uuid.New().String()
	}

	stmt, err := r.db.PrepareContext(ctx,
		`INSERT INTO companies(id, cnpj, name, email, phone, address, status, plan, plan_id, created_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, id, rec.CNPJ, rec.Name, rec.Email, rec.Phone, rec.Address,
		string(rec.Status), rec.Plan, rec.PlanID, rec.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return id, nil
}

// parseStoredTime aceita RFC3339 ou data simples (AAAA-MM-DD)
func parseStoredTime(s string) (time.Time, error) {
	if strings.Contains(s, "T") {
		return time.Parse(time.RFC3339, s)
	}
	return time.Parse("2006-01-02", s)
}
