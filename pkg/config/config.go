package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// PasswordResetWindow is how long an issued reset token stays redeemable.
	PasswordResetWindow time.Duration
	MinPasswordLength   int

	// SessionTimeout is how long a CLI session may sit idle before the user
	// has to log in again.
	SessionTimeout time.Duration

	// DefaultCategories are seeded on first run, comma separated.
	DefaultCategories []string

	BackupDir string

	// Bootstrap admin credentials, used only when the user table is empty.
	BootstrapAdminUsername string
	BootstrapAdminEmail    string
	BootstrapAdminPassword string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "30m")
	viper.SetDefault("JWT_ISSUER", "cafe-ledger-app")
	viper.SetDefault("PASSWORD_RESET_WINDOW", "24h")
	viper.SetDefault("MIN_PASSWORD_LENGTH", 8)
	viper.SetDefault("SESSION_TIMEOUT", "30m")
	viper.SetDefault("DEFAULT_CATEGORIES", "Ingredients,Utilities,Rent,Salaries,Equipment,Marketing,Miscellaneous")
	viper.SetDefault("BACKUP_DIR", "backups")
	viper.SetDefault("BOOTSTRAP_ADMIN_USERNAME", "")
	viper.SetDefault("BOOTSTRAP_ADMIN_EMAIL", "")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 30 * time.Minute
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}

	jwtIssuer := viper.GetString("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "cafe-ledger-app"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", jwtIssuer)
	}

	resetWindowStr := viper.GetString("PASSWORD_RESET_WINDOW")
	resetWindow, err := time.ParseDuration(resetWindowStr)
	if err != nil {
		resetWindow = 24 * time.Hour
		if resetWindowStr != "" {
			log.Printf("Warning: Invalid value for PASSWORD_RESET_WINDOW ('%s'). Defaulting to %s.\n", resetWindowStr, resetWindow.String())
		}
	}

	minPasswordLength := viper.GetInt("MIN_PASSWORD_LENGTH")
	if minPasswordLength <= 0 {
		minPasswordLength = 8
	}

	sessionTimeoutStr := viper.GetString("SESSION_TIMEOUT")
	sessionTimeout, err := time.ParseDuration(sessionTimeoutStr)
	if err != nil {
		sessionTimeout = 30 * time.Minute
		if sessionTimeoutStr != "" {
			log.Printf("Warning: Invalid value for SESSION_TIMEOUT ('%s'). Defaulting to %s.\n", sessionTimeoutStr, sessionTimeout.String())
		}
	}

	defaultCategories := []string{}
	for _, name := range strings.Split(viper.GetString("DEFAULT_CATEGORIES"), ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			defaultCategories = append(defaultCategories, trimmed)
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.JWTSecret = jwtSecret
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = jwtIssuer
	cfg.PasswordResetWindow = resetWindow
	cfg.MinPasswordLength = minPasswordLength
	cfg.SessionTimeout = sessionTimeout
	cfg.DefaultCategories = defaultCategories
	cfg.BackupDir = viper.GetString("BACKUP_DIR")
	cfg.BootstrapAdminUsername = viper.GetString("BOOTSTRAP_ADMIN_USERNAME")
	cfg.BootstrapAdminEmail = viper.GetString("BOOTSTRAP_ADMIN_EMAIL")
	cfg.BootstrapAdminPassword = viper.GetString("BOOTSTRAP_ADMIN_PASSWORD")

	return cfg, nil
}
