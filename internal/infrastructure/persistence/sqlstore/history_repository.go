package sqlstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cofflyze/cofflyze-api/internal/domain/entities"
	"github.com/cofflyze/cofflyze-api/internal/domain/repositories"
)

// HistoryRepository implementa repositories.HistoryRepository
type HistoryRepository struct {
	db *gorm.DB
}

// NewHistoryRepository cria um novo HistoryRepository
func NewHistoryRepository(db *gorm.DB) repositories.HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Create(ctx context.Context, entry *entities.HistoryEntry) error {
	model := toHistoryModel(entry)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	entry.ID = model.ID
	return nil
}

func (r *HistoryRepository) List(ctx context.Context) ([]*entities.HistoryEntry, error) {
	var models []*HistoryModel
	if err := getDB(ctx, r.db).Find(&models).Error; err != nil {
		return nil, err
	}
	return toHistoryEntities(models), nil
}

func (r *HistoryRepository) ListByToken(ctx context.Context, token string) ([]*entities.HistoryEntry, error) {
	var models []*HistoryModel
	if err := getDB(ctx, r.db).Where(&HistoryModel{Token: token}).Find(&models).Error; err != nil {
		return nil, err
	}
	return toHistoryEntities(models), nil
}

func (r *HistoryRepository) FindByTokenAndID(ctx context.Context, token string, id int64) (*entities.HistoryEntry, error) {
	var model HistoryModel

	err := getDB(ctx, r.db).Where(&HistoryModel{Token: token}).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toHistoryEntity(&model), nil
}

func (r *HistoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := getDB(ctx, r.db).Delete(&HistoryModel{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func toHistoryModel(entry *entities.HistoryEntry) *HistoryModel {
	return &HistoryModel{
		ID:          entry.ID,
		Image:       entry.Image,
		Accuracy:    entry.Accuracy,
		RecordedAt:  entry.CreatedAt,
		DiseaseName: entry.DiseaseName,
		Description: entry.Description,
		Cause:       entry.Cause,
		Symptoms:    entry.Symptoms,
		RiskFactors: entry.RiskFactors,
		Treatment:   entry.Treatment,
		Prevention:  entry.Prevention,
		Token:       entry.Token,
	}
}

func toHistoryEntity(model *HistoryModel) *entities.HistoryEntry {
	return &entities.HistoryEntry{
		ID:          model.ID,
		Image:       model.Image,
		Accuracy:    model.Accuracy,
		CreatedAt:   model.RecordedAt,
		DiseaseName: model.DiseaseName,
		Description: model.Description,
		Cause:       model.Cause,
		Symptoms:    model.Symptoms,
		RiskFactors: model.RiskFactors,
		Treatment:   model.Treatment,
		Prevention:  model.Prevention,
		Token:       model.Token,
	}
}

func toHistoryEntities(models []*HistoryModel) []*entities.HistoryEntry {
	result := make([]*entities.HistoryEntry, 0, len(models))
	for _, model := range models {
		result = append(result, toHistoryEntity(model))
	}
	return result
}
