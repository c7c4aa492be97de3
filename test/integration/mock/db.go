// Package mock provides in-process test doubles for the integration suite.
package mock

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDb opens a fresh in-memory sqlite database and migrates the given
// models. Every call returns an isolated database, so scenarios never share
// state.
func NewDb(models ...any) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	if err := db.AutoMigrate(models...); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return db
}
