package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cofflyze/cofflyze-api/internal/infrastructure/config"
	"github.com/cofflyze/cofflyze-api/internal/infrastructure/logging"
	"github.com/cofflyze/cofflyze-api/internal/infrastructure/persistence/sqlstore"
)

func TestRun(t *testing.T) {
	t.Run("configuração inválida retorna erro", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "oracle")

		err := run()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})

	t.Run("falha no storage retorna erro depois de abrir o banco", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "cofflyze.db")
		t.Setenv("DB_DRIVER", config.DriverSQLite)
		t.Setenv("DB_PATH", dbPath)
		t.Setenv("STORAGE_DRIVER", config.StorageDriverMinIO)
		t.Setenv("STORAGE_ENDPOINT", "http://%zz")
		t.Setenv("LOG_LEVEL", "error")

		err := run()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to initialize object storage")

		// O schema foi criado antes da falha e o arquivo continua utilizável
		db, err := sqlstore.OpenSQLite(dbPath, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		require.NoError(t, err)
		t.Cleanup(func() { _ = sqlstore.Close(db) })
		assert.True(t, db.Migrator().HasTable(&sqlstore.UserModel{}))
	})
}

func TestLoadI18n(t *testing.T) {
	t.Run("diretório inexistente usa traduções embutidas", func(t *testing.T) {
		svc, err := loadI18n(config.I18nConfig{
			LocalesDir:      filepath.Join(t.TempDir(), "missing"),
			DefaultLanguage: "id",
		}, logging.NopLogger{})

		require.NoError(t, err)
		assert.Equal(t, "id", svc.GetDefaultLanguage())
		assert.True(t, svc.IsLanguageSupported("en"))
	})

	t.Run("sem diretório configurado", func(t *testing.T) {
		svc, err := loadI18n(config.I18nConfig{DefaultLanguage: "en"}, logging.NopLogger{})

		require.NoError(t, err)
		assert.Equal(t, "Welcome to the User Service API!", svc.T("en", "message.welcome"))
	})
}
