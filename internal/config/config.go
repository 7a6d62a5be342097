package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig
	Restaurant RestaurantConfig
	Printer    PrinterConfig
	UPI        UPIConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	LoginPerMinute int
	Burst          int
}

// RestaurantConfig is the branding printed on receipt headers.
type RestaurantConfig struct {
	Name    string
	Address string
	Phone   string
}

// PrinterConfig holds the two thermal printer endpoints. An empty address
// disables that copy (a null printer is substituted).
type PrinterConfig struct {
	KitchenAddr string
	CounterAddr string
	DialTimeout time.Duration
	Width       int
}

// UPIConfig parameterizes the static pay-to-merchant deep link rendered as
// a QR code on the counter copy. An empty VPA disables the QR block.
type UPIConfig struct {
	VPA   string
	Payee string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "pos-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "princepos")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_LOGIN_PER_MINUTE", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 5)
	viper.SetDefault("RESTAURANT_NAME", "PRINCE BAKERY")
	viper.SetDefault("RESTAURANT_ADDRESS", "")
	viper.SetDefault("RESTAURANT_PHONE", "")
	viper.SetDefault("PRINTER_KITCHEN_ADDR", "192.168.0.106:9100")
	viper.SetDefault("PRINTER_COUNTER_ADDR", "192.168.0.103:9100")
	viper.SetDefault("PRINTER_DIAL_TIMEOUT_MS", 3000)
	viper.SetDefault("PRINTER_WIDTH", 32)
	viper.SetDefault("UPI_VPA", "")
	viper.SetDefault("UPI_PAYEE", "")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			LoginPerMinute: viper.GetInt("RATE_LIMIT_LOGIN_PER_MINUTE"),
			Burst:          viper.GetInt("RATE_LIMIT_BURST"),
		},
		Restaurant: RestaurantConfig{
			Name:    viper.GetString("RESTAURANT_NAME"),
			Address: viper.GetString("RESTAURANT_ADDRESS"),
			Phone:   viper.GetString("RESTAURANT_PHONE"),
		},
		Printer: PrinterConfig{
			KitchenAddr: viper.GetString("PRINTER_KITCHEN_ADDR"),
			CounterAddr: viper.GetString("PRINTER_COUNTER_ADDR"),
			DialTimeout: time.Duration(viper.GetInt("PRINTER_DIAL_TIMEOUT_MS")) * time.Millisecond,
			Width:       viper.GetInt("PRINTER_WIDTH"),
		},
		UPI: UPIConfig{
			VPA:   viper.GetString("UPI_VPA"),
			Payee: viper.GetString("UPI_PAYEE"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
