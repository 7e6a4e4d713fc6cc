package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %s, esperado 8080", cfg.Port)
	}
	if cfg.DBPort != 5432 {
		t.Errorf("DBPort = %d, esperado 5432", cfg.DBPort)
	}
	if cfg.PremiosPct != 50 || cfg.ComissaoPct != 20 || cfg.LiquidoPct != 20 {
		t.Errorf("percentuais padrão = %.0f/%.0f/%.0f, esperado 50/20/20",
			cfg.PremiosPct, cfg.ComissaoPct, cfg.LiquidoPct)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("configuração padrão deveria ser válida: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.interno")
	t.Setenv("IDEAL_PREMIOS_PCT", "45.5")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %s, esperado 9090", cfg.Port)
	}
	if cfg.DBHost != "db.interno" {
		t.Errorf("DBHost = %s, esperado db.interno", cfg.DBHost)
	}
	if cfg.PremiosPct != 45.5 {
		t.Errorf("PremiosPct = %.2f, esperado 45.5", cfg.PremiosPct)
	}
}

func TestValidateAcumulaErros(t *testing.T) {
	cfg := Load()
	cfg.Port = "abc"
	cfg.DBHost = ""
	cfg.PremiosPct = 150

	err := cfg.Validate()
	if err == nil {
		t.Fatal("esperado erro de validação")
	}
	msg := err.Error()
	for _, trecho := range []string{"porta inválida", "DB_HOST", "IDEAL_PREMIOS_PCT"} {
		if !strings.Contains(msg, trecho) {
			t.Errorf("erro deveria mencionar %q, obtido: %s", trecho, msg)
		}
	}
}

func TestValidatePercentualLimite(t *testing.T) {
	cfg := Load()
	cfg.ComissaoPct = 100

	if err := cfg.Validate(); err != nil {
		t.Errorf("percentual 100 é válido: %v", err)
	}

	cfg.ComissaoPct = -0.1
	if err := cfg.Validate(); err == nil {
		t.Error("percentual negativo deveria falhar")
	}
}
