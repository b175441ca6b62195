package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App      AppConfig
	JWT      JWTConfig
	Password PasswordConfig
	Admin    AdminConfig
	Shop     ShopConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KHRISMIR_APP_ENV" default:"development"`
	Port         string `envconfig:"KHRISMIR_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"KHRISMIR_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"KHRISMIR_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type JWTConfig struct {
	Secret            string `envconfig:"KHRISMIR_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"KHRISMIR_JWT_ISSUER" default:"peixaria-khrismir"`
	ExpirationMinutes int    `envconfig:"KHRISMIR_JWT_EXPIRATION_MINUTES" default:"720"`
}

// TokenTTL returns the access token lifetime.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"KHRISMIR_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"KHRISMIR_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"KHRISMIR_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"KHRISMIR_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"KHRISMIR_ARGON_KEY_LEN" default:"32"`
}

// AdminConfig holds the bootstrap manager credentials. The account is seeded
// into the employee roster at startup with the password hashed, never stored.
type AdminConfig struct {
	BootstrapName     string `envconfig:"KHRISMIR_ADMIN_NAME" default:"Administrador Principal"`
	BootstrapEmail    string `envconfig:"KHRISMIR_ADMIN_EMAIL" required:"true"`
	BootstrapPassword string `envconfig:"KHRISMIR_ADMIN_PASSWORD" required:"true"`
	BootstrapPhone    string `envconfig:"KHRISMIR_ADMIN_PHONE" default:"900000000"`
}

type ShopConfig struct {
	Name            string `envconfig:"KHRISMIR_SHOP_NAME" default:"Khrismir"`
	Address         string `envconfig:"KHRISMIR_SHOP_ADDRESS" default:"Lubango, Huíla - Angola"`
	BaseDeliveryFee string `envconfig:"KHRISMIR_SHOP_BASE_DELIVERY_FEE" default:"1000"`
	IVARate         string `envconfig:"KHRISMIR_SHOP_IVA_RATE" default:"14"`
	AccentColor     string `envconfig:"KHRISMIR_SHOP_ACCENT_COLOR" default:"#3b82f6"`
	OpeningTime     string `envconfig:"KHRISMIR_SHOP_OPENING_TIME" default:"08:00"`
	ClosingTime     string `envconfig:"KHRISMIR_SHOP_CLOSING_TIME" default:"18:00"`
}
