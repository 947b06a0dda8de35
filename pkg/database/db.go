package database

import (
	"fmt"
	"strings"

	"Scribe/config"
	"Scribe/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) (*gorm.DB, func(), error) {
	var dialector gorm.Dialector
	switch conf.Database.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(conf.Database.DSN()))
	case config.DriverMySQL:
		dialector = mysql.Open(conf.Database.DSN())
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", conf.Database.Driver)
	}

	level := logger.Warn
	if conf.Debug() {
		level = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	sqlDB.SetMaxOpenConns(conf.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(conf.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(conf.Database.ConnMaxLifetime)

	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			log.L.Warn("close database", zap.Error(err))
		}
	}
	return db, cleanup, nil
}

// sqliteDSN turns on foreign key enforcement, which sqlite leaves off per
// connection, so ON DELETE CASCADE applies.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}
