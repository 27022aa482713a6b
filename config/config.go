package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	Port   string `env:"PORT" envDefault:"8080"`

	// Panjang rota dalam hari (satu bulan), minimal 1.
	RotaDays           int  `env:"ROTA_DAYS" envDefault:"31"`
	AllowDoubleBooking bool `env:"ROTA_ALLOW_DOUBLE_BOOKING" envDefault:"false"`
	SeedDemo           bool `env:"ROTA_SEED_DEMO" envDefault:"true"`

	JWTSecret           string        `env:"JWT_SECRET"`
	JWTTTL              time.Duration `env:"JWT_TTL" envDefault:"12h"`
	ManagerUsername     string        `env:"MANAGER_USERNAME" envDefault:"manager"`
	ManagerPasswordHash string        `env:"MANAGER_PASSWORD_HASH"` // bcrypt hash
}

var (
	cfg  *Config
	once sync.Once
)

// LoadConfig membaca .env (jika ada) lalu environment variables.
// Hasilnya di-cache untuk seluruh proses.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found. Relying on environment variables.")
		}
		c, err := Parse()
		if err != nil {
			log.Fatalf("Gagal membaca konfigurasi: %v", err)
		}
		cfg = c
	})
	return cfg
}

// Parse reads the configuration from the current environment only.
func Parse() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if c.RotaDays < 1 {
		return nil, fmt.Errorf("ROTA_DAYS must be at least 1, got %d", c.RotaDays)
	}
	return c, nil
}
