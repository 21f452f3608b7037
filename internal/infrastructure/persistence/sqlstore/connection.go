package sqlstore

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // registra o driver "sqlite" (sem cgo)

	"github.com/cofflyze/cofflyze-api/internal/domain/ports"
	"github.com/cofflyze/cofflyze-api/internal/infrastructure/config"
)

// sqliteDriverName é o nome registrado pelo modernc.org/sqlite
const sqliteDriverName = "sqlite"

// NewDatabaseConnection cria o pool de conexões do driver configurado
func NewDatabaseConnection(cfg *config.DatabaseConfig, logLevel string, log ports.Logger) (*gorm.DB, error) {
	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(logLevel)),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: false,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configurar connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		// sqlite não suporta escritas concorrentes
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxConns)
		sqlDB.SetMaxIdleConns(cfg.MinConns)
	}
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxIdleTime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connected successfully",
		"driver", cfg.Driver,
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.DBName,
	)

	return db, nil
}

// Close fecha o pool subjacente
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// OpenSQLite abre um banco sqlite via modernc.org/sqlite
func OpenSQLite(dsn string, gormConfig *gorm.Config) (*gorm.DB, error) {
	return gorm.Open(sqliteDialector(dsn), gormConfig)
}

// Migrate cria as tabelas; usado apenas por testes e ambientes locais
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserModel{}, &HistoryModel{}, &ArticleModel{})
}

func newDialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		return mysql.Open(cfg.DSN()), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqliteDialector(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

func sqliteDialector(dsn string) gorm.Dialector {
	return sqlite.New(sqlite.Config{
		DriverName: sqliteDriverName,
		DSN:        dsn,
	})
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	default:
		return logger.Warn
	}
}
