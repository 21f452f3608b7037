package repositories

import (
	"context"

	"github.com/cofflyze/cofflyze-api/internal/domain/entities"
)

// ArticleRepository define a interface para persistência de artigos
type ArticleRepository interface {
	Create(ctx context.Context, article *entities.Article) error
	FindByID(ctx context.Context, id int64) (*entities.Article, error)
	List(ctx context.Context) ([]*entities.Article, error)
	Update(ctx context.Context, article *entities.Article) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
