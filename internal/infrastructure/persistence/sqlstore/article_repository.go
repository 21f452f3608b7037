package sqlstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/cofflyze/cofflyze-api/internal/domain/entities"
	"github.com/cofflyze/cofflyze-api/internal/domain/repositories"
)

// ArticleRepository implementa repositories.ArticleRepository
type ArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository cria um novo ArticleRepository
func NewArticleRepository(db *gorm.DB) repositories.ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Create(ctx context.Context, article *entities.Article) error {
	model := toArticleModel(article)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	article.ID = model.ID
	return nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id int64) (*entities.Article, error) {
	var model ArticleModel

	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toArticleEntity(&model), nil
}

func (r *ArticleRepository) List(ctx context.Context) ([]*entities.Article, error) {
	var models []*ArticleModel
	if err := getDB(ctx, r.db).Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Article, 0, len(models))
	for _, model := range models {
		result = append(result, toArticleEntity(model))
	}
	return result, nil
}

// Update substitui judul, article e foto (foto nil grava NULL)
func (r *ArticleRepository) Update(ctx context.Context, article *entities.Article) (bool, error) {
	values := map[string]interface{}{
		"judul":   article.Title,
		"article": article.Body,
		"foto":    article.Photo,
	}

	result := getDB(ctx, r.db).Model(&ArticleModel{}).Where("id = ?", article.ID).Updates(values)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := getDB(ctx, r.db).Delete(&ArticleModel{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func toArticleModel(article *entities.Article) *ArticleModel {
	return &ArticleModel{
		ID:    article.ID,
		Title: article.Title,
		Body:  article.Body,
		Photo: article.Photo,
	}
}

func toArticleEntity(model *ArticleModel) *entities.Article {
	return &entities.Article{
		ID:    model.ID,
		Title: model.Title,
		Body:  model.Body,
		Photo: model.Photo,
	}
}
