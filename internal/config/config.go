// Package config gerencia as configurações do aplicativo
// carregando variáveis de ambiente do arquivo .env
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config armazena todas as configurações da aplicação
type Config struct {
	// Servidor
	Port string
	Env  string

	// Asaas
	Asaas AsaasConfig

	// Turnstile (verificação anti-bot)
	Turnstile TurnstileConfig

	// Banco de dados (cupons e registros comerciais)
	DatabasePath string

	// Notificações por email
	Email EmailConfig
}

// AsaasConfig armazena configurações específicas da API Asaas
type AsaasConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// TurnstileConfig armazena configurações do Cloudflare Turnstile
type TurnstileConfig struct {
	SecretKey string
	VerifyURL string
}

// EmailConfig armazena configurações do serviço de email transacional
type EmailConfig struct {
	EndpointURL string
}

// Load carrega as configurações do arquivo .env e variáveis de ambiente
// O arquivo .env é opcional - variáveis de ambiente têm prioridade
func Load() (*Config, error) {
	// Tenta carregar .env (ignora erro se não existir)
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),
		Asaas: AsaasConfig{
			APIKey:  getEnv("ASAAS_API_KEY", ""),
			BaseURL: getEnv("ASAAS_API_URL", "https://api.asaas.com/v3"),
			Timeout: getEnvDuration("ASAAS_TIMEOUT", 30*time.Second),
		},
		Turnstile: TurnstileConfig{
			SecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
			VerifyURL: getEnv("TURNSTILE_VERIFY_URL", "https://challenges.cloudflare.com/turnstile/v0/siteverify"),
		},
		DatabasePath: getEnv("DATABASE_PATH", "./aura-checkout.db"),
		Email: EmailConfig{
			EndpointURL: getEnv("CHECKOUT_EMAIL_URL", ""),
		},
	}

	// Validação básica: falha cedo, antes de qualquer trabalho
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate verifica se as configurações obrigatórias estão presentes
func (c *Config) validate() error {
	if c.Asaas.APIKey == "" {
		return fmt.Errorf("ASAAS_API_KEY é obrigatório")
	}
	if c.Turnstile.SecretKey == "" {
		return fmt.Errorf("TURNSTILE_SECRET_KEY é obrigatório")
	}
	return nil
}

// IsDevelopment retorna true se estiver em ambiente de desenvolvimento
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction retorna true se estiver em ambiente de produção
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv obtém uma variável de ambiente ou retorna o valor padrão
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration obtém uma variável de ambiente como time.Duration
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
