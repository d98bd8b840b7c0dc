package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/killallgit/annotator-api/internal/models"
	"github.com/killallgit/annotator-api/pkg/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
}

// Open creates a new database connection for the configured driver
func Open(cfg config.DatabaseConfig) (*DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Error
	if cfg.LogQueries {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		// Driver errors become gorm.ErrForeignKeyViolated and friends
		TranslateError: true,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	if isMemory(cfg) {
		// Every connection to :memory: is a separate database
		sqlDB.SetMaxOpenConns(1)
	} else {
		if cfg.MaxConnections > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxConnections)
		}
		if cfg.MaxIdleConnections > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConnections)
		}
	}
	if cfg.ConnectionMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnectionMaxLifetime)
	}

	return &DB{DB: db}, nil
}

// Initialize opens a SQLite database at dbPath, creating its directory if needed
func Initialize(dbPath string, verbose bool) (*DB, error) {
	return Open(config.DatabaseConfig{Driver: "sqlite", Path: dbPath, LogQueries: verbose})
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "sqlite":
		path := cfg.Path
		if path == "" {
			path = ":memory:"
		}
		if !isMemory(cfg) {
			if dir := filepath.Dir(path); dir != "" && dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return nil, fmt.Errorf("failed to create database directory: %w", err)
				}
			}
		}
		return sqlite.Open(withForeignKeys(path)), nil
	case "mysql":
		return mysql.Open(cfg.DSN), nil
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

func isMemory(cfg config.DatabaseConfig) bool {
	return (cfg.Driver == "" || cfg.Driver == "sqlite") &&
		(cfg.Path == "" || strings.HasPrefix(cfg.Path, ":memory:"))
}

// withForeignKeys turns on SQLite foreign key enforcement so annotation
// inserts cannot reference a missing video
func withForeignKeys(path string) string {
	if strings.Contains(path, "_foreign_keys") || strings.Contains(path, "_fk=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// AutoMigrate creates or updates the video and annotation tables
func (db *DB) AutoMigrate() error {
	if err := db.DB.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}

// DropAll drops every managed table, children first
func (db *DB) DropAll() error {
	all := models.All()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.DB.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("dropping table: %w", err)
		}
	}
	return nil
}

// TableStatus reports which managed tables exist
func (db *DB) TableStatus() map[string]bool {
	status := make(map[string]bool)
	for _, model := range models.All() {
		stmt := &gorm.Statement{DB: db.DB}
		if err := stmt.Parse(model); err != nil {
			continue
		}
		status[stmt.Schema.Table] = db.DB.Migrator().HasTable(model)
	}
	return status
}
