package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	SourceKindCSV      = "csv"
	SourceKindDatabase = "database"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	DateSystemEpoch1900 = "epoch1900"
	DateSystemExcel1900 = "excel1900"
)

type Config struct {
	Server   ServerConfig
	Source   SourceConfig
	Database DatabaseConfig
	Report   ReportConfig
}

type ServerConfig struct {
	Port               string
	Host               string
	Environment        string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
	CORSAllowOrigins   []string
	RateLimitPerSecond int
}

// SourceConfig locates the three input tables. Paths may be local files or
// gs://bucket/object URLs.
type SourceConfig struct {
	Kind            string
	ClientsPath     string
	ProductsPath    string
	InvestmentsPath string
	Delimiter       rune
	LoadTimeout     time.Duration
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type ReportConfig struct {
	DateSystem string
	BronzeMax  decimal.Decimal
	PrataMax   decimal.Decimal
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			Host:               getEnv("SERVER_HOST", "localhost"),
			Environment:        getEnv("APP_ENV", "development"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout:    getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
		},
		Source: SourceConfig{
			Kind:            strings.ToLower(getEnv("SOURCE_KIND", SourceKindCSV)),
			ClientsPath:     getEnv("SOURCE_CLIENTS_PATH", "data/dim_cliente.csv"),
			ProductsPath:    getEnv("SOURCE_PRODUCTS_PATH", "data/dim_produto.csv"),
			InvestmentsPath: getEnv("SOURCE_INVESTMENTS_PATH", "data/fato_investimento.csv"),
			Delimiter:       getRuneEnv("SOURCE_DELIMITER", ';'),
			LoadTimeout:     getDurationEnv("SOURCE_LOAD_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "investments_user"),
			Password:        getEnv("DB_PASSWORD", "investments_password"),
			Name:            getEnv("DB_NAME", "investments_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "investments.db"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Report: ReportConfig{
			DateSystem: strings.ToLower(getEnv("REPORT_DATE_SYSTEM", DateSystemEpoch1900)),
			BronzeMax:  getDecimalEnv("TIER_BRONZE_MAX", decimal.NewFromInt(10000)),
			PrataMax:   getDecimalEnv("TIER_PRATA_MAX", decimal.NewFromInt(50000)),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port == "" {
		errs = append(errs, "SERVER_PORT is required")
	} else if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT must be between 1 and 65535, got %q", c.Server.Port))
	}
	if c.Server.RateLimitPerSecond <= 0 {
		errs = append(errs, "RATE_LIMIT_PER_SECOND must be positive")
	}

	switch c.Source.Kind {
	case SourceKindCSV:
		if c.Source.ClientsPath == "" || c.Source.ProductsPath == "" || c.Source.InvestmentsPath == "" {
			errs = append(errs, "SOURCE_CLIENTS_PATH, SOURCE_PRODUCTS_PATH and SOURCE_INVESTMENTS_PATH are required for csv sources")
		}
	case SourceKindDatabase:
		switch c.Database.Driver {
		case DriverPostgres:
			if c.Database.Host == "" || c.Database.Name == "" {
				errs = append(errs, "DB_HOST and DB_NAME are required for the postgres driver")
			}
		case DriverSQLite:
			if c.Database.SQLitePath == "" {
				errs = append(errs, "DB_SQLITE_PATH is required for the sqlite driver")
			}
		default:
			errs = append(errs, fmt.Sprintf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.Database.Driver))
		}
	default:
		errs = append(errs, fmt.Sprintf("SOURCE_KIND must be %q or %q, got %q", SourceKindCSV, SourceKindDatabase, c.Source.Kind))
	}

	if c.Report.DateSystem != DateSystemEpoch1900 && c.Report.DateSystem != DateSystemExcel1900 {
		errs = append(errs, fmt.Sprintf("REPORT_DATE_SYSTEM must be %q or %q, got %q", DateSystemEpoch1900, DateSystemExcel1900, c.Report.DateSystem))
	}
	if c.Report.BronzeMax.IsNegative() {
		errs = append(errs, "TIER_BRONZE_MAX must not be negative")
	}
	if c.Report.PrataMax.LessThanOrEqual(c.Report.BronzeMax) {
		errs = append(errs, "TIER_PRATA_MAX must be greater than TIER_BRONZE_MAX")
	}

	if len(errs) > 0 {
		return errors.New("configuration validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getRuneEnv reads a single-character value. "tab" and "\t" select a tab.
func getRuneEnv(key string, defaultValue rune) rune {
	value := os.Getenv(key)
	switch {
	case value == "":
		return defaultValue
	case value == "tab" || value == `\t`:
		return '\t'
	}
	runes := []rune(value)
	if len(runes) != 1 {
		log.Printf("WARNING: %s must be a single character, using %q", key, defaultValue)
		return defaultValue
	}
	return runes[0]
}

// AutoMigrateEnabled reports whether SQL migrations run at database startup
func AutoMigrateEnabled() bool {
	return getBoolEnv("AUTO_MIGRATE", false)
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
