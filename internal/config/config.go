package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env              string
	DatabasePath     string // local SQLite file holding the whole portfolio
	LogLevel         string
	BackupDir        string // where WriteBackup places export files
	TopHoldingsLimit int    // default N for the top-holdings chart
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	dbPath := viper.GetString("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "portfolio.db"
	}

	logLevel := viper.GetString("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	backupDir := viper.GetString("BACKUP_DIR")
	if backupDir == "" {
		backupDir = "."
	}

	topN := viper.GetInt("TOP_HOLDINGS_LIMIT")
	if topN <= 0 {
		topN = 10
	}

	return &Config{
		Env:              env,
		DatabasePath:     dbPath,
		LogLevel:         logLevel,
		BackupDir:        backupDir,
		TopHoldingsLimit: topN,
	}, nil
}
