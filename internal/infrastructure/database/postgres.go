package database

import (
	"fmt"
	"log"

	"github.com/princebakery/pos-api/internal/config"
	"github.com/princebakery/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},

		// Catalog entities
		&entity.Category{},
		&entity.Product{},
		&entity.Extra{},

		// Cart entities
		&entity.Cart{},
		&entity.CartItem{},
		&entity.CartItemExtra{},

		// Order snapshot entities
		&entity.Order{},
		&entity.OrderItem{},
		&entity.OrderItemExtra{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the staff admin account and a starter menu when
// the relevant env vars are set and the tables are empty.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	adminMobile := viper.GetString("ADMIN_MOBILE")
	adminPIN := viper.GetString("ADMIN_PIN")
	adminName := viper.GetString("ADMIN_NAME")

	if adminMobile != "" && adminPIN != "" {
		var existing entity.User
		if err := db.Where("mobile = ?", adminMobile).First(&existing).Error; err != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(adminPIN), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin PIN: %v", err)
			} else {
				if adminName == "" {
					adminName = "Admin"
				}
				admin := entity.User{
					Mobile:   adminMobile,
					Name:     adminName,
					PIN:      string(hash),
					IsStaff:  true,
					IsActive: true,
				}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminMobile)
				}
			}
		}
	}

	// Seed a starter menu only on an empty catalog
	var count int64
	if err := db.Model(&entity.Category{}).Count(&count).Error; err != nil || count > 0 {
		return nil
	}

	bakery := entity.Category{Name: "Bakery", Icon: "🍞"}
	drinks := entity.Category{Name: "Drinks", Icon: "☕"}
	if err := db.Create(&bakery).Error; err != nil {
		log.Printf("Warning: failed to seed categories: %v", err)
		return nil
	}
	if err := db.Create(&drinks).Error; err != nil {
		log.Printf("Warning: failed to seed categories: %v", err)
		return nil
	}

	products := []entity.Product{
		{Name: "Bun", Price: decimal.NewFromFloat(10.00), CategoryID: &bakery.ID},
		{Name: "Veg Puff", Price: decimal.NewFromFloat(20.00), CategoryID: &bakery.ID},
		{Name: "Tea", Price: decimal.NewFromFloat(10.00), CategoryID: &drinks.ID},
		{Name: "Coffee", Price: decimal.NewFromFloat(20.00), CategoryID: &drinks.ID},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Printf("Warning: failed to seed product %s: %v", products[i].Name, err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
