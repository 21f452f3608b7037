package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cofflyze/cofflyze-api/internal/domain/ports"
	"github.com/cofflyze/cofflyze-api/internal/handlers/dto"
	"github.com/cofflyze/cofflyze-api/internal/services"
)

// ArticleHandler expõe o CRUD de artigos
type ArticleHandler struct {
	articleService *services.ArticleService
	logger         ports.Logger
}

func NewArticleHandler(articleService *services.ArticleService, logger ports.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		logger:         logger,
	}
}

// CreateArticle
//
//	@Summary	Cria artigo
//	@Tags		articles
//	@Accept		json,x-www-form-urlencoded
//	@Produce	json
//	@Param		body	body		dto.ArticleRequest	true	"Artigo"
//	@Success	201		{object}	dto.ArticleResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req dto.ArticleRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.WriteProblem(c, dto.BindingErrorResponse(c, err))
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), req.ToInput())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToArticleResponse(article))
}

// ListArticles
//
//	@Summary	Lista artigos
//	@Tags		articles
//	@Produce	json
//	@Success	200	{array}	dto.ArticleResponse
//	@Router		/articles [get]
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles, err := h.articleService.ListArticles(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponses(articles))
}

// GetArticle
//
//	@Summary	Busca artigo
//	@Tags		articles
//	@Produce	json
//	@Param		id	path		int	true	"ID do artigo"
//	@Success	200	{object}	dto.ArticleResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/articles/{id} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// UpdateArticle substitui o artigo inteiro
//
//	@Summary	Atualiza artigo
//	@Tags		articles
//	@Accept		json,x-www-form-urlencoded
//	@Produce	json
//	@Param		id		path		int					true	"ID do artigo"
//	@Param		body	body		dto.ArticleRequest	true	"Artigo"
//	@Success	200		{object}	dto.ArticleUpdatedResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/articles/{id} [put]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.ArticleRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.WriteProblem(c, dto.BindingErrorResponse(c, err))
		return
	}

	article, err := h.articleService.UpdateArticle(c.Request.Context(), id, req.ToInput())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ArticleUpdatedResponse{
		Message: dto.T(c, "message.article_updated"),
		Article: dto.ToArticleResponse(article),
	})
}

// DeleteArticle
//
//	@Summary	Remove artigo
//	@Tags		articles
//	@Produce	json
//	@Param		id	path		int	true	"ID do artigo"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "message.article_deleted")})
}
