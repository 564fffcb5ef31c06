package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todo-api/internal/infra/database"
)

// Open connects to postgres through gorm and applies the pool settings of config
func Open(config database.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.PostgresDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("fail to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	database.ApplyPool(sqlDB, config)

	return db, nil
}
