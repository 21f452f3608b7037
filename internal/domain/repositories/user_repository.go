package repositories

import (
	"context"

	"github.com/cofflyze/cofflyze-api/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Buscas retornam (nil, nil) quando não há registro.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id int64) (*entities.User, error)
	FindByToken(ctx context.Context, token string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
	// UpdateByToken retorna false quando nenhuma linha corresponde ao token
	UpdateByToken(ctx context.Context, token string, update entities.ProfileUpdate) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
