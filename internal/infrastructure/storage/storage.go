package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cofflyze/cofflyze-api/internal/domain/ports"
	"github.com/cofflyze/cofflyze-api/internal/infrastructure/config"
	"github.com/cofflyze/cofflyze-api/internal/infrastructure/metrics"
)

// New cria o cliente de armazenamento do driver configurado, já instrumentado
func New(ctx context.Context, cfg *config.StorageConfig, log ports.Logger) (ports.ObjectStorage, error) {
	var (
		store ports.ObjectStorage
		err   error
	)

	switch cfg.Driver {
	case config.StorageDriverS3:
		store, err = NewS3Storage(ctx, cfg)
	case config.StorageDriverMinIO:
		store, err = NewMinIOStorage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	log.Info("object storage initialized",
		"driver", cfg.Driver,
		"bucket", cfg.Bucket,
		"endpoint", cfg.Endpoint,
	)

	return NewInstrumented(store), nil
}

// PublicURL monta <base>/<bucket>/<key>
func PublicURL(baseURL, bucket, key string) string {
	return strings.TrimRight(baseURL, "/") + "/" + bucket + "/" + strings.TrimLeft(key, "/")
}

// Instrumented conta chamadas ao armazenamento em metrics.ObjectStorageOps
type Instrumented struct {
	next ports.ObjectStorage
}

// NewInstrumented decora um ObjectStorage com métricas
func NewInstrumented(next ports.ObjectStorage) *Instrumented {
	return &Instrumented{next: next}
}

func (s *Instrumented) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	url, err := s.next.Upload(ctx, key, body, size, contentType)
	observe("upload", err)
	return url, err
}

func (s *Instrumented) Delete(ctx context.Context, key string) error {
	err := s.next.Delete(ctx, key)
	observe("delete", err)
	return err
}

func observe(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.ObjectStorageOps.WithLabelValues(operation, result).Inc()
}
