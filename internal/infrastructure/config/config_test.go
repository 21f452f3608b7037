package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("usa valores padrão", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8000", cfg.Server.Port)
		assert.Equal(t, DriverMySQL, cfg.Database.Driver)
		assert.Equal(t, StorageDriverS3, cfg.Storage.Driver)
		assert.Equal(t, "cofflyze-images", cfg.Storage.Bucket)
		assert.Equal(t, "https://storage.googleapis.com", cfg.Storage.PublicBaseURL)
		assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxBytes)
		assert.Equal(t, "Asia/Jakarta", cfg.History.TimeZone)
	})

	t.Run("lê variáveis de ambiente", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("DB_DRIVER", "Postgres")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("BUCKET_NAME", "fotos")
		t.Setenv("STORAGE_DRIVER", "minio")
		t.Setenv("UPLOAD_MAX_BYTES", "1024")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "fotos", cfg.Storage.Bucket)
		assert.Equal(t, StorageDriverMinIO, cfg.Storage.Driver)
		assert.Equal(t, int64(1024), cfg.Upload.MaxBytes)
	})

	t.Run("rejeita driver desconhecido", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "oracle")

		_, err := Load()
		assert.ErrorContains(t, err, "unsupported DB_DRIVER")
	})

	t.Run("rejeita fuso inválido", func(t *testing.T) {
		t.Setenv("HISTORY_TIMEZONE", "Mars/Olympus")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	base := DatabaseConfig{Host: "db", Port: 3306, User: "u", Password: "p", DBName: "cofflyze", SSLMode: "disable", Path: "x.db"}

	tests := []struct {
		driver string
		want   string
	}{
		{DriverMySQL, "u:p@tcp(db:3306)/cofflyze?charset=utf8mb4&clientFoundRows=true"},
		{DriverPostgres, "host=db port=3306 user=u password=p dbname=cofflyze sslmode=disable"},
		{DriverSQLite, "x.db"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d := base
			d.Driver = tt.driver
			assert.Equal(t, tt.want, d.DSN())
		})
	}
}
