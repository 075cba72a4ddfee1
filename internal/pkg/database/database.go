package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/pathiram/backend/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"k8s.io/klog/v2"
)

// Dialector picks the gorm driver for a configured database type. sqlite is
// the default.
func Dialector(dbType, dsn string) gorm.Dialector {
	switch dbType {
	case "mysql":
		return mysql.Open(dsn)
	case "postgres", "postgresql":
		// pgx underneath
		return postgres.Open(dsn)
	default:
		return sqlite.Open(dsn)
	}
}

// InitDB opens the database and migrates every table the service owns.
func InitDB(dbType, dsn string) (*gorm.DB, error) {
	if dbType != "mysql" && dbType != "postgres" && dbType != "postgresql" && dsn != ":memory:" {
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create database dir: %w", err)
			}
		}
	}

	db, err := gorm.Open(Dialector(dbType, dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	klog.V(6).Infof("database ready: type=%s", dbType)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.DocumentRecord{}); err != nil {
		return err
	}
	return db.AutoMigrate(&model.State{}, &model.District{}, &model.Taluk{}, &model.Village{})
}
