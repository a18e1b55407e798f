// Package main é o ponto de entrada da API de checkout do Aura Almoxarifado
package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/auralabs/aura-checkout/backend/internal/adapters/asaas"
	"github.com/auralabs/aura-checkout/backend/internal/adapters/mailer"
	"github.com/auralabs/aura-checkout/backend/internal/adapters/turnstile"
	"github.com/auralabs/aura-checkout/backend/internal/config"
	"github.com/auralabs/aura-checkout/backend/internal/handlers"
	"github.com/auralabs/aura-checkout/backend/internal/repository"
	"github.com/auralabs/aura-checkout/backend/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	slog.Info("🚀 Iniciando Aura Checkout API...")

	// Carrega configurações
	cfg, err := config.Load()
	if err != nil {
		slog.Error("❌ Erro ao carregar configurações", "error", err)
		os.Exit(1)
	}
	slog.Info("📦 Configuração carregada", "env", cfg.Env, "asaas_url", cfg.Asaas.BaseURL)

	// Banco local: cupons e registros comerciais
	db, err := sql.Open("sqlite3", cfg.DatabasePath)
	if err != nil {
		slog.Error("❌ Erro ao abrir banco de dados", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.InitSchema(db); err != nil {
		slog.Error("❌ Erro ao inicializar schema", "error", err)
		os.Exit(1)
	}

	// Adapters externos
	asaasClient := asaas.NewClient(&cfg.Asaas)
	turnstileClient := turnstile.NewClient(&cfg.Turnstile)
	emailClient := mailer.NewClient(&cfg.Email)
	if cfg.Email.EndpointURL == "" {
		slog.Warn("⚠️  CHECKOUT_EMAIL_URL não configurado, notificações desativadas")
	}

	// Serviços
	repo := repository.NewSQLiteRepository(db)
	couponService := service.NewCouponService(repo)
	checkoutService := service.NewCheckoutService(asaasClient, turnstileClient, emailClient, couponService, repo)

	// Router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(metricsMiddleware)

	r.Get("/health", handlers.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, couponService)
	r.Mount("/api", checkoutHandler.Routes())

	addr := ":" + cfg.Port
	slog.Info("🏥 Servidor pronto", "addr", addr)

	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("❌ Erro ao iniciar servidor", "error", err)
		os.Exit(1)
	}
}
