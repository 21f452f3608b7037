package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cofflyze/cofflyze-api/internal/domain/entities"
	"github.com/cofflyze/cofflyze-api/internal/domain/repositories"
	"github.com/cofflyze/cofflyze-api/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	user.ID = model.ID
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	var model UserModel

	db := getDB(ctx, r.db)
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByToken(ctx context.Context, token string) (*entities.User, error) {
	var model UserModel

	db := getDB(ctx, r.db)
	if err := db.Where(&UserModel{Token: &token}).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var models []*UserModel

	db := getDB(ctx, r.db)
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// UpdateByToken sobrescreve o perfil; fotoProfile só muda quando update.PhotoURL != nil
func (r *UserRepository) UpdateByToken(ctx context.Context, token string, update entities.ProfileUpdate) (bool, error) {
	values := map[string]interface{}{
		"namaLengkap":  update.FullName,
		"jenisKelamin": update.Gender.String(),
		"nomorHp":      update.PhoneNumber,
		"alamat":       update.Address,
	}
	if update.PhotoURL != nil {
		values["fotoProfile"] = *update.PhotoURL
	}

	db := getDB(ctx, r.db)
	result := db.Model(&UserModel{}).Where(&UserModel{Token: &token}).Updates(values)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	db := getDB(ctx, r.db)
	result := db.Delete(&UserModel{}, id)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:          user.ID,
		FullName:    user.FullName,
		Gender:      user.Gender.String(),
		PhotoURL:    user.PhotoURL,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		Token:       user.Token,
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	gender, err := valueobjects.NewGender(model.Gender)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", model.ID, err)
	}

	return &entities.User{
		ID:          model.ID,
		FullName:    model.FullName,
		Gender:      gender,
		PhotoURL:    model.PhotoURL,
		PhoneNumber: model.PhoneNumber,
		Address:     model.Address,
		Token:       model.Token,
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	entities := make([]*entities.User, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}
