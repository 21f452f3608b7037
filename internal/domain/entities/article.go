package entities

import (
	"errors"
	"strings"

	domainerrors "github.com/cofflyze/cofflyze-api/internal/domain/errors"
)

var (
	ErrInvalidArticleData = errors.New("invalid article data")
)

// Article representa um artigo informativo
type Article struct {
	ID    int64
	Title string
	Body  string
	Photo *string
}

// Validate valida regras de negócio da entidade Article
func (a *Article) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return domainerrors.NewValidationError("judul", "required", ErrInvalidArticleData)
	}

	if strings.TrimSpace(a.Body) == "" {
		return domainerrors.NewValidationError("article", "required", ErrInvalidArticleData)
	}

	return nil
}
