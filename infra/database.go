// Package infra provides the storage context: database connection,
// migrations and the gorm-backed repository implementations under
// infra/repository.
package infra

import (
	"errors"
	"time"

	"github.com/dfcarvalho/grana/pkg/config"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the configured database. Postgres is the production
// driver; sqlite (pure Go) backs local development and tests.
func NewDBConnection(cnf *config.DB, appEnv string) (*gorm.DB, error) {
	if cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	var dialector gorm.Dialector
	switch cnf.Driver {
	case "sqlite":
		dialector = sqlite.Open(cnf.Url)
	default:
		dialector = postgres.Open(cnf.Url)
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}
