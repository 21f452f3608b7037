package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cofflyze/cofflyze-api/internal/domain/entities"
	"github.com/cofflyze/cofflyze-api/internal/domain/errors"
	"github.com/cofflyze/cofflyze-api/internal/domain/ports"
	"github.com/cofflyze/cofflyze-api/internal/domain/repositories"
)

// ArticleService contém a lógica de negócio para artigos
type ArticleService struct {
	articleRepo repositories.ArticleRepository
	logger      ports.Logger
}

// NewArticleService cria um novo ArticleService
func NewArticleService(articleRepo repositories.ArticleRepository, logger ports.Logger) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

// ArticleInput representa os campos de criação e substituição
type ArticleInput struct {
	Title string
	Body  string
	Photo *string
}

func (in ArticleInput) toEntity(id int64) *entities.Article {
	return &entities.Article{
		ID:    id,
		Title: strings.TrimSpace(in.Title),
		Body:  in.Body,
		Photo: in.Photo,
	}
}

// CreateArticle valida e insere um artigo
func (s *ArticleService) CreateArticle(ctx context.Context, input ArticleInput) (*entities.Article, error) {
	article := input.toEntity(0)
	if err := article.Validate(); err != nil {
		return nil, err
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to insert article: %w", err)
	}

	s.logger.Info("article created", "article_id", article.ID)
	return article, nil
}

// ListArticles lista todos os artigos
func (s *ArticleService) ListArticles(ctx context.Context) ([]*entities.Article, error) {
	return s.articleRepo.List(ctx)
}

// GetArticle busca um artigo por id
func (s *ArticleService) GetArticle(ctx context.Context, id int64) (*entities.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, errors.ErrArticleNotFound
	}
	return article, nil
}

// UpdateArticle substitui todos os campos do artigo; foto ausente vira NULL
func (s *ArticleService) UpdateArticle(ctx context.Context, id int64, input ArticleInput) (*entities.Article, error) {
	article := input.toEntity(id)
	if err := article.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.articleRepo.Update(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}
	if !updated {
		return nil, errors.ErrArticleNotFound
	}

	s.logger.Info("article updated", "article_id", id)
	return article, nil
}

// DeleteArticle remove um artigo por id
func (s *ArticleService) DeleteArticle(ctx context.Context, id int64) error {
	deleted, err := s.articleRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if !deleted {
		return errors.ErrArticleNotFound
	}

	s.logger.Info("article deleted", "article_id", id)
	return nil
}
