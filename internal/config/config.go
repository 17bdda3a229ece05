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

const (
	RowErrorPolicyAbort = "abort"
	RowErrorPolicySkip  = "skip"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

// Dataset define de onde e como o dataset de vendas é carregado
type Dataset struct {
	Source            string   `mapstructure:"sales_source"`
	SalesFile         string   `mapstructure:"sales_file"`
	SalesDelimiter    string   `mapstructure:"sales_delimiter"`
	PostalFile        string   `mapstructure:"postal_file"`
	PostalDelimiter   string   `mapstructure:"postal_delimiter"`
	DateLayouts       []string `mapstructure:"date_layouts"`
	CategorySeparator string   `mapstructure:"category_separator"`
	RowErrorPolicy    string   `mapstructure:"row_error_policy"`
	LoadOnStartup     bool     `mapstructure:"dataset_load_on_startup"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

type Auth struct {
	Enabled      bool          `mapstructure:"auth_enabled"`
	Username     string        `mapstructure:"auth_username"`
	PasswordHash string        `mapstructure:"auth_password_hash"`
	Secret       string        `mapstructure:"auth_secret"`
	TokenTTL     time.Duration `mapstructure:"auth_token_ttl"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8050")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Defaults do dataset
	viper.SetDefault("SALES_SOURCE", "file")
	viper.SetDefault("SALES_FILE", "eladasok.txt")
	viper.SetDefault("SALES_DELIMITER", "\t")
	viper.SetDefault("POSTAL_FILE", "")
	viper.SetDefault("POSTAL_DELIMITER", ",")
	viper.SetDefault("DATE_LAYOUTS", "2006-01-02 15:04:05,2006-01-02T15:04:05Z07:00,2006-01-02T15:04:05,2006-01-02 15:04,2006-01-02")
	viper.SetDefault("CATEGORY_SEPARATOR", ">")
	viper.SetDefault("ROW_ERROR_POLICY", RowErrorPolicySkip)
	viper.SetDefault("DATASET_LOAD_ON_STARTUP", true)

	viper.SetDefault("DATASET_REFRESH_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_USERNAME", "admin")
	viper.SetDefault("AUTH_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FILE", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case "file":
		if c.Dataset.SalesFile == "" {
			return fmt.Errorf("SALES_FILE é obrigatório quando SALES_SOURCE=file")
		}
	case "postgres":
	default:
		return fmt.Errorf("SALES_SOURCE inválido: %q (use file ou postgres)", c.Dataset.Source)
	}

	switch c.Dataset.RowErrorPolicy {
	case RowErrorPolicyAbort, RowErrorPolicySkip:
	default:
		return fmt.Errorf("ROW_ERROR_POLICY inválido: %q (use abort ou skip)", c.Dataset.RowErrorPolicy)
	}

	if len([]rune(c.Dataset.SalesDelimiter)) != 1 {
		return fmt.Errorf("SALES_DELIMITER deve ter exatamente um caractere")
	}

	if c.Dataset.PostalFile != "" && len([]rune(c.Dataset.PostalDelimiter)) != 1 {
		return fmt.Errorf("POSTAL_DELIMITER deve ter exatamente um caractere")
	}

	if c.Dataset.CategorySeparator == "" {
		return fmt.Errorf("CATEGORY_SEPARATOR não pode ser vazio")
	}

	if len(c.Dataset.DateLayouts) == 0 {
		return fmt.Errorf("DATE_LAYOUTS deve conter ao menos um formato")
	}

	if c.Auth.Enabled && c.Auth.PasswordHash == "" {
		return fmt.Errorf("AUTH_PASSWORD_HASH é obrigatório quando AUTH_ENABLED=true")
	}

	return nil
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
