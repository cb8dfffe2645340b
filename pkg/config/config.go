package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Wallet backends
const (
	WalletMemory   = "memory"
	WalletFile     = "file"
	WalletPostgres = "postgres"
	WalletVault    = "vault"
)

// Config represents the gateway configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Fabric     FabricConfig     `mapstructure:"fabric"`
	Wallet     WalletConfig     `mapstructure:"wallet"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
}

// FabricConfig contains Fabric network and CA settings
type FabricConfig struct {
	ConnectionProfile string `mapstructure:"connection_profile" validate:"required"`
	Channel           string `mapstructure:"channel" validate:"required"`
	Chaincode         string `mapstructure:"chaincode" validate:"required"`
	CAName            string `mapstructure:"ca_name" validate:"required"`
	Org               string `mapstructure:"org" validate:"required"`
	Affiliation       string `mapstructure:"affiliation"`
	MSPID             string `mapstructure:"msp_id" validate:"required"`
	AdminID           string `mapstructure:"admin_id" validate:"required"`
	Discovery         bool   `mapstructure:"discovery"`
	KeystorePath      string `mapstructure:"keystore_path"`
}

// WalletConfig selects and configures the credential store
type WalletConfig struct {
	Backend      string      `mapstructure:"backend" validate:"oneof=memory file postgres vault"`
	Path         string      `mapstructure:"path" validate:"required_if=Backend file"`
	MasterKeyEnv string      `mapstructure:"master_key_env"`
	Vault        VaultConfig `mapstructure:"vault"`
}

// VaultConfig contains HashiCorp Vault settings for the vault wallet backend
type VaultConfig struct {
	Address  string `mapstructure:"address"`
	TokenEnv string `mapstructure:"token_env"`
	Mount    string `mapstructure:"mount"`
	Path     string `mapstructure:"path"`
}

// AuthConfig selects how HTTP callers name their wallet identity. Without a JWKS URL the
// X-User-ID header is trusted.
type AuthConfig struct {
	JWKSURL       string `mapstructure:"jwks_url" validate:"omitempty,url"`
	Issuer        string `mapstructure:"issuer"`
	IdentityClaim string `mapstructure:"identity_claim"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"oneof=json console"`
	OutputPath string `mapstructure:"output_path"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.request_timeout", "60s")

	// Fabric defaults
	v.SetDefault("fabric.channel", "mychannel")
	v.SetDefault("fabric.chaincode", "notary-chaincode")
	v.SetDefault("fabric.discovery", true)
	v.SetDefault("fabric.admin_id", "admin")

	// Wallet defaults
	v.SetDefault("wallet.backend", WalletFile)
	v.SetDefault("wallet.path", "wallet")
	v.SetDefault("wallet.master_key_env", "WALLET_MASTER_KEY")
	v.SetDefault("wallet.vault.address", "http://localhost:8200")
	v.SetDefault("wallet.vault.token_env", "VAULT_TOKEN")
	v.SetDefault("wallet.vault.mount", "secret")
	v.SetDefault("wallet.vault.path", "notary-wallet")

	// Auth defaults
	v.SetDefault("auth.identity_claim", "sub")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.database", "notary_gateway")

	// Monitoring defaults
	v.SetDefault("monitoring.enabled", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_path", "stdout")
}

func validate(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return err
	}
	if config.Wallet.Backend == WalletPostgres && config.Database.Host == "" {
		return fmt.Errorf("database.host is required for the postgres wallet")
	}
	return nil
}
