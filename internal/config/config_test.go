package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, SourceKindCSV, cfg.Source.Kind)
	assert.Equal(t, ';', cfg.Source.Delimiter)
	assert.Equal(t, "data/dim_cliente.csv", cfg.Source.ClientsPath)
	assert.Equal(t, DateSystemEpoch1900, cfg.Report.DateSystem)
	assert.True(t, cfg.Report.BronzeMax.Equal(decimal.NewFromInt(10000)))
	assert.True(t, cfg.Report.PrataMax.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SOURCE_KIND", "DATABASE")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/investments.db")
	t.Setenv("SOURCE_DELIMITER", "tab")
	t.Setenv("REPORT_DATE_SYSTEM", "excel1900")
	t.Setenv("TIER_BRONZE_MAX", "5000.50")
	t.Setenv("SOURCE_LOAD_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, http://b.example")

	cfg := Load()

	assert.Equal(t, SourceKindDatabase, cfg.Source.Kind)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/investments.db", cfg.Database.DSN())
	assert.Equal(t, '\t', cfg.Source.Delimiter)
	assert.Equal(t, DateSystemExcel1900, cfg.Report.DateSystem)
	assert.Equal(t, "5000.5", cfg.Report.BronzeMax.String())
	assert.Equal(t, 5*time.Second, cfg.Source.LoadTimeout)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.CORSAllowOrigins)
	require.NoError(t, cfg.Validate())
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_SECOND", "many")
	t.Setenv("SOURCE_DELIMITER", ";;")
	t.Setenv("TIER_PRATA_MAX", "lots")

	cfg := Load()

	assert.Equal(t, 20, cfg.Server.RateLimitPerSecond)
	assert.Equal(t, ';', cfg.Source.Delimiter)
	assert.True(t, cfg.Report.PrataMax.Equal(decimal.NewFromInt(50000)))
}

func TestDatabaseConfig_PostgresDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Driver:   DriverPostgres,
		Host:     "db",
		Port:     "5432",
		User:     "u",
		Password: "p",
		Name:     "investments",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=investments sslmode=disable", cfg.DSN())
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Load()
	cfg.Server.Port = "99999"
	cfg.Source.Kind = "ftp"
	cfg.Report.DateSystem = "julian"
	cfg.Report.PrataMax = decimal.NewFromInt(100)

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "SERVER_PORT")
	assert.Contains(t, err.Error(), "SOURCE_KIND")
	assert.Contains(t, err.Error(), "REPORT_DATE_SYSTEM")
	assert.Contains(t, err.Error(), "TIER_PRATA_MAX")
}

func TestValidate_DatabaseDriver(t *testing.T) {
	cfg := Load()
	cfg.Source.Kind = SourceKindDatabase
	cfg.Database.Driver = "mysql"

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestEnvironmentHelpers(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	assert.True(t, Load().IsProduction())

	t.Setenv("APP_ENV", "testing")
	assert.True(t, Load().IsTesting())

	t.Setenv("AUTO_MIGRATE", "true")
	assert.True(t, AutoMigrateEnabled())
}
