package ports

import (
	"context"
	"io"
)

// ObjectStorage define as operações usadas no bucket de fotos
type ObjectStorage interface {
	// Upload grava o conteúdo na chave e retorna a URL pública do objeto
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
