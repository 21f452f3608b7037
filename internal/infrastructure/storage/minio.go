package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/cofflyze/cofflyze-api/internal/infrastructure/config"
)

// MinIOStorage implementa ports.ObjectStorage sobre o cliente do MinIO
type MinIOStorage struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinIOStorage cria o cliente e confirma que o bucket existe
func NewMinIOStorage(ctx context.Context, cfg *config.StorageConfig) (*MinIOStorage, error) {
	endpoint, secure, err := minioEndpoint(cfg.Endpoint, cfg.UseSSL)
	if err != nil {
		return nil, err
	}

	mc, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	exists, err := mc.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("minio bucket %s does not exist", cfg.Bucket)
	}

	return &MinIOStorage{client: mc, bucket: cfg.Bucket, publicBaseURL: cfg.PublicBaseURL}, nil
}

// Upload grava o conteúdo na chave e retorna a URL pública
func (s *MinIOStorage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("minio put %s: %w", key, err)
	}
	return PublicURL(s.publicBaseURL, s.bucket, key), nil
}

// Delete remove o objeto da chave
func (s *MinIOStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio remove %s: %w", key, err)
	}
	return nil
}

// minioEndpoint aceita "host:port" ou uma URL completa
func minioEndpoint(raw string, useSSL bool) (string, bool, error) {
	if raw == "" {
		return "", false, fmt.Errorf("minio config missing")
	}
	if !strings.Contains(raw, "://") {
		return raw, useSSL, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false, fmt.Errorf("invalid minio endpoint %q: %w", raw, err)
	}
	return u.Host, u.Scheme == "https", nil
}
