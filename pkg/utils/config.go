package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Mail     MailConfig
	Auth     AuthConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	Issuer      string
	ExpiryHours int
}

type MailConfig struct {
	SendGridKey string
	FromEmail   string
	FromName    string
}

type AuthConfig struct {
	MaxFailedLogins  int
	OTPExpiryMinutes int
	OTPLength        int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_ISSUER", "trip-booking")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("MAX_FAILED_LOGINS", 5)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			Issuer:      viper.GetString("JWT_ISSUER"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Mail: MailConfig{
			SendGridKey: viper.GetString("SENDGRID_API_KEY"),
			FromEmail:   viper.GetString("EMAIL_FROM"),
			FromName:    viper.GetString("EMAIL_FROM_NAME"),
		},
		Auth: AuthConfig{
			MaxFailedLogins:  viper.GetInt("MAX_FAILED_LOGINS"),
			OTPExpiryMinutes: viper.GetInt("OTP_EXPIRY_MINUTES"),
			OTPLength:        viper.GetInt("OTP_LENGTH"),
		},
	}

	return config, nil
}
