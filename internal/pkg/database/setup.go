package database

import (
	"fmt"
	"log"
	"time"

	"github.com/planfox/planfox/app/models"
	"github.com/planfox/planfox/internal/pkg/env"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

func SetupDatabase() {
	var err error

	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(openDialector(), &gorm.Config{})
		if err == nil {
			Migrate(DB)
			return
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Printf("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}

// Migrate creates the schema if it is absent.
func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&models.Customer{},
		&models.Plan{},
		&models.CustomerPlan{},
		&models.Transaction{},
	)
}

func openDialector() gorm.Dialector {
	if env.GetEnv("DB_DRIVER", "sqlite") == "mysql" {
		// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			env.GetEnv("DB_USER", ""),
			env.GetEnv("DB_PASSWORD", ""),
			env.GetEnv("DB_HOST", "127.0.0.1"),
			env.GetEnv("DB_PORT", "3306"),
			env.GetEnv("DB_NAME", ""),
		)
		return mysql.New(mysql.Config{
			DSN:                       dsn,
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		})
	}

	return sqlite.Open(env.GetEnv("DB_NAME", "planfox.sqlite3"))
}
