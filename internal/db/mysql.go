package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewMySQL opens the weathertrack database. Snapshot writes rely on MySQL's
// ON DUPLICATE KEY handling for the (location_id, timestamp) upserts, so the
// mysql driver is the only supported backend. Query logging is limited to
// warnings; the client's fetch-and-store loop makes repeated identical
// snapshot writes routine and they should not flood the log.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}
