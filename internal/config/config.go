package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config reúne toda a configuração do serviço lida do ambiente.
type Config struct {
	// HTTP
	Port           string
	AllowedOrigins []string

	// Banco de dados
	DBHost       string
	DBPort       uint
	DBName       string
	DBUsername   string
	DBPassword   string
	DBSSLDisable bool

	// Percentuais padrão da projeção ideal (sobrescrevíveis por query param)
	PremiosPct  float64
	ComissaoPct float64
	LiquidoPct  float64
}

// Load monta a configuração a partir das variáveis de ambiente,
// aplicando os valores padrão do painel.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ","),

		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnvUint("DB_PORT", 5432),
		DBName:       getEnv("DB_NAME", "painel"),
		DBUsername:   getEnv("DB_USERNAME", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBSSLDisable: getEnv("DB_SSL_MODE_DISABLE", "true") == "true",

		PremiosPct:  getEnvFloat("IDEAL_PREMIOS_PCT", 50),
		ComissaoPct: getEnvFloat("IDEAL_COMISSAO_PCT", 20),
		LiquidoPct:  getEnvFloat("IDEAL_LIQUIDO_PCT", 20),
	}
}

// Validate acumula todos os problemas encontrados e devolve um único erro.
func (c *Config) Validate() error {
	var problemas []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problemas = append(problemas, fmt.Sprintf("porta inválida '%s': deve ser numérica", c.Port))
	} else if port < 1 || port > 65535 {
		problemas = append(problemas, fmt.Sprintf("porta inválida %d: deve estar entre 1 e 65535", port))
	}

	if c.DBHost == "" {
		problemas = append(problemas, "DB_HOST não pode ser vazio")
	}
	if c.DBName == "" {
		problemas = append(problemas, "DB_NAME não pode ser vazio")
	}
	if c.DBPort < 1 {
		problemas = append(problemas, "DB_PORT deve ser maior que zero")
	}

	for _, pct := range []struct {
		nome  string
		valor float64
	}{
		{"IDEAL_PREMIOS_PCT", c.PremiosPct},
		{"IDEAL_COMISSAO_PCT", c.ComissaoPct},
		{"IDEAL_LIQUIDO_PCT", c.LiquidoPct},
	} {
		if pct.valor < 0 || pct.valor > 100 {
			problemas = append(problemas, fmt.Sprintf("%s inválido %.2f: deve estar entre 0 e 100", pct.nome, pct.valor))
		}
	}

	if len(problemas) > 0 {
		return fmt.Errorf("configuração inválida:\n- %s", strings.Join(problemas, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint) uint {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseUint(value, 10, 32); err == nil {
			return uint(v)
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
