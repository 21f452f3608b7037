package dto

import (
	"github.com/cofflyze/cofflyze-api/internal/domain/entities"
	"github.com/cofflyze/cofflyze-api/internal/services"
)

// ArticleRequest é usado tanto no POST quanto no PUT (substituição completa)
type ArticleRequest struct {
	Title string  `json:"judul" form:"judul" binding:"required"`
	Body  string  `json:"article" form:"article" binding:"required"`
	Photo *string `json:"foto" form:"foto"`
}

// ToInput converte a requisição para o input do serviço
func (r ArticleRequest) ToInput() services.ArticleInput {
	return services.ArticleInput{
		Title: r.Title,
		Body:  r.Body,
		Photo: optionalPtr(r.Photo),
	}
}

// ArticleResponse representa um artigo
type ArticleResponse struct {
	ID    int64   `json:"id"`
	Title string  `json:"judul"`
	Body  string  `json:"article"`
	Photo *string `json:"foto"`
}

// ArticleUpdatedResponse é a resposta do PUT /articles/:id
type ArticleUpdatedResponse struct {
	Message string          `json:"message"`
	Article ArticleResponse `json:"article"`
}

func ToArticleResponse(article *entities.Article) ArticleResponse {
	return ArticleResponse{
		ID:    article.ID,
		Title: article.Title,
		Body:  article.Body,
		Photo: article.Photo,
	}
}

func ToArticleResponses(articles []*entities.Article) []ArticleResponse {
	responses := make([]ArticleResponse, len(articles))
	for i, article := range articles {
		responses[i] = ToArticleResponse(article)
	}
	return responses
}
