package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Modash        Modash        `mapstructure:",squash"`
	AnalyticsSync AnalyticsSync `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
	CronSecret    string        `mapstructure:"cron_secret"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Modash é a configuração do provedor externo de analytics de perfis
type Modash struct {
	BaseURL               string `mapstructure:"modash_base_url"`
	Version               string `mapstructure:"modash_version"`
	AccessToken           string `mapstructure:"modash_access_token"`
	RequestTimeoutSeconds int    `mapstructure:"modash_request_timeout_seconds"`
	URL                   string `mapstructure:"-"`
}

// RequestTimeout é o tempo máximo de espera por alvo na chamada ao provedor
func (m Modash) RequestTimeout() time.Duration {
	return time.Duration(m.RequestTimeoutSeconds) * time.Second
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// AnalyticsSync configura o orquestrador de refresh e a varredura em massa
type AnalyticsSync struct {
	CronSchedule        string `mapstructure:"analytics_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"analytics_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"analytics_sync_enabled"`
	SnapshotTTLDays     int    `mapstructure:"analytics_sync_snapshot_ttl_days"`
	RateLimitTokens     int    `mapstructure:"analytics_sync_rate_limit_tokens"`
	RateLimitIntervalMs int    `mapstructure:"analytics_sync_rate_limit_interval_ms"`
	ErrorSampleSize     int    `mapstructure:"analytics_sync_error_sample_size"`
}

// SnapshotTTL converte o TTL configurado em duração
func (s AnalyticsSync) SnapshotTTL() time.Duration {
	return time.Duration(s.SnapshotTTLDays) * 24 * time.Hour
}

// RequestDelay é a pausa de cortesia entre itens da varredura em massa
func (s AnalyticsSync) RequestDelay() time.Duration {
	return time.Duration(s.RequestDelaySeconds) * time.Second
}

// RateLimitInterval é o intervalo de recarga do token bucket
func (s AnalyticsSync) RateLimitInterval() time.Duration {
	return time.Duration(s.RateLimitIntervalMs) * time.Millisecond
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/influencer_hub")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("MODASH_BASE_URL", "https://api.modash.io")
	viper.SetDefault("MODASH_VERSION", "v1")
	viper.SetDefault("MODASH_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("MODASH_REQUEST_TIMEOUT_SECONDS", 30)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("CRON_SECRET", "your_cron_secret")

	// Defaults para sincronização de analytics
	viper.SetDefault("ANALYTICS_SYNC_CRON", "0 2 * * *")            // Todos os dias às 2h da manhã
	viper.SetDefault("ANALYTICS_SYNC_REQUEST_DELAY_SECONDS", 2)     // 2 segundos entre perfis
	viper.SetDefault("ANALYTICS_SYNC_ENABLED", false)               // Habilitar varredura agendada
	viper.SetDefault("ANALYTICS_SYNC_SNAPSHOT_TTL_DAYS", 28)        // ~4 semanas de validade do snapshot
	viper.SetDefault("ANALYTICS_SYNC_RATE_LIMIT_TOKENS", 10)        // 10 chamadas por intervalo
	viper.SetDefault("ANALYTICS_SYNC_RATE_LIMIT_INTERVAL_MS", 1000) // intervalo de 1 segundo
	viper.SetDefault("ANALYTICS_SYNC_ERROR_SAMPLE_SIZE", 10)        // amostra de erros no resumo da varredura

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Modash.URL = fmt.Sprintf("%s/%s", config.Modash.BaseURL, config.Modash.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
