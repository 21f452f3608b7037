package repositories

import (
	"context"

	"github.com/cofflyze/cofflyze-api/internal/domain/entities"
)

// HistoryRepository define a interface para persistência de históricos
type HistoryRepository interface {
	Create(ctx context.Context, entry *entities.HistoryEntry) error
	List(ctx context.Context) ([]*entities.HistoryEntry, error)
	ListByToken(ctx context.Context, token string) ([]*entities.HistoryEntry, error)
	FindByTokenAndID(ctx context.Context, token string, id int64) (*entities.HistoryEntry, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
