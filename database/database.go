package database

import (
	"fmt"
	"time"

	"pharmacy-pos-backend/config"
	"pharmacy-pos-backend/models"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// Pure Go SQLite driver registered as "sqlite".
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

// Dialector builds the GORM dialector for the configured driver
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DbDriver {
	case DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
			cfg.DbHost,
			cfg.DbPort,
			cfg.DbUser,
			cfg.DbPass,
			cfg.DbName,
			cfg.DbSslMode,
			cfg.DbTz,
		)
		return postgres.Open(dsn), nil
	case DriverSqlite:
		return SqliteDialector(cfg.SqlitePath), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DbDriver)
	}
}

// SqliteDialector opens path through the modernc driver with foreign keys enforced
func SqliteDialector(path string) gorm.Dialector {
	return sqlite.New(sqlite.Config{
		DriverName: "sqlite",
		DSN:        path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
	})
}

// Open connects once with the shared GORM configuration; ConnectDatabase adds retries
func Open(dialector gorm.Dialector, cfg *config.Config) (*gorm.DB, error) {
	// Configure GORM logger based on environment
	gormLogger := logger.Default.LogMode(logger.Warn)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else if cfg.LogLevel == "debug" {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	location, err := time.LoadLocation(cfg.DbTz)
	if err != nil || cfg.DbDriver == DriverSqlite {
		// SQLite keeps times as text and only reads back UTC values reliably.
		location = time.UTC
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().In(location)
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not open database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "could not get database instance")
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, errors.Wrap(err, "database ping failed")
	}

	if cfg.DbDriver == DriverSqlite {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return db, nil
}

// ConnectDatabase retries Open until the database accepts connections
func ConnectDatabase(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	maxRetries := 5
	retryInterval := time.Second * 10

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Infof("Attempting to connect to %s database (attempt %d/%d)...", cfg.DbDriver, attempt, maxRetries)

		db, err := Open(dialector, cfg)
		if err == nil {
			log.Info("Database connection established.")
			return db, nil
		}
		log.WithError(err).Warn("database connection failed")

		if attempt < maxRetries {
			log.Infof("Retrying in %s...", retryInterval)
			time.Sleep(retryInterval)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts", maxRetries)
}

// MigrateDatabase performs automatic migration of database schemas.
// Columns added later, such as approved, are nullable-safe because they carry defaults.
func MigrateDatabase(db *gorm.DB) error {
	log.Info("Starting database migration...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Store{},
		&models.Sales{},
		&models.Payment{},
		&models.LoginActivity{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	log.Info("Database migrations completed successfully")
	return nil
}
