package db

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"programador/internal/config"
	"programador/internal/model"
)

// Open connects to the database selected by cfg.DBDriver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		return NewSQLite(cfg.DatabaseFile)
	case config.DriverMySQL:
		return NewMySQL(cfg.MySQLDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// Models lists every persisted model in dependency order.
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Course{},
		&model.Enrollment{},
	}
}

// Migrate creates or updates the schema.
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	for _, stmt := range dialectFixups(gormDB.Dialector.Name()) {
		if err := gormDB.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate %s: %w", gormDB.Dialector.Name(), err)
		}
	}
	return nil
}

// dialectFixups returns DDL applied after AutoMigrate for a dialect.
// MySQL's default utf8mb4 collation compares case-insensitively, so the
// email column is switched to a binary collation to keep addresses unique
// exactly as stored.
func dialectFixups(dialect string) []string {
	switch dialect {
	case "mysql":
		return []string{
			"ALTER TABLE users MODIFY email VARCHAR(200) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL",
		}
	default:
		return nil
	}
}

// Reset drops every table, dependents first.
func Reset(gormDB *gorm.DB) error {
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		if err := gormDB.Migrator().DropTable(models[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}

// gormConfig turns on error translation so unique violations surface as
// gorm.ErrDuplicatedKey on every driver.
func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}
