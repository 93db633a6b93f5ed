package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"backoffice-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "backoffice_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

// SeedDatabase inserts the default taxonomy rows once. Safe to run on every
// start.
func SeedDatabase() {
	var ctCount int64
	DB.Model(&models.CategoryType{}).Count(&ctCount)
	if ctCount == 0 {
		categoryTypes := []models.CategoryType{
			{Name: "Vegetables"},
			{Name: "Dairy"},
			{Name: "Grains"},
			{Name: "Beverages"},
		}
		if err := DB.Create(&categoryTypes).Error; err != nil {
			log.Printf("warning: failed to seed category types: %v", err)
		} else {
			log.Println("Category types seeded")
		}
	}

	var qtCount int64
	DB.Model(&models.FoodQuantityType{}).Count(&qtCount)
	if qtCount == 0 {
		quantityTypes := []models.FoodQuantityType{
			{Name: "Kg"},
			{Name: "Litre"},
			{Name: "Pieces"},
			{Name: "Packets"},
		}
		if err := DB.Create(&quantityTypes).Error; err != nil {
			log.Printf("warning: failed to seed quantity types: %v", err)
		} else {
			log.Println("Quantity types seeded")
		}
	}
}

// ConnectDatabase establishes the process-wide connection once and runs
// migrations. Subsequent calls reuse the existing handle.
func ConnectDatabase() error {
	if DB != nil {
		return nil
	}

	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Info,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// Migrate keeps the schema current. Shared with tests, which run it against
// their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.RoomInfo{},
		&models.RoomAccount{},
		&models.CategoryType{},
		&models.FoodQuantityType{},
		&models.FoodInventory{},
		&models.FoodCategory{},
		&models.StockProduct{},
		&models.TableNo{},
		&models.VendorGroup{},
	)
}
