package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	domainerrors "github.com/cofflyze/cofflyze-api/internal/domain/errors"
)

// BaseURLContextKey guarda a URL base usada nos "type" dos problemas
const BaseURLContextKey = "base_url"

const defaultBaseURL = "http://localhost:8000"

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	*problems.Problem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// MessageResponse é a resposta simples {"message": "..."}
type MessageResponse struct {
	Message string `json:"message"`
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detail string, status int) ErrorResponse {
	baseURL := c.GetString(BaseURLContextKey)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	problem := problems.NewDetailedProblem(status, detail)
	problem.Type = baseURL + problemType
	problem.Title = T(c, titleKey)
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{Problem: problem}
}

// WriteProblem serializa o problema com o media type application/problem+json
func WriteProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		T(c, "error.validation.detail"),
		http.StatusBadRequest,
	)
	response.Errors = validationErrors
	return response
}

// BadRequestErrorResponseI18n cria uma resposta 400 cujo detalhe vem de detailKey
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeBadRequest,
		"error.bad_request.title",
		T(c, detailKey, params...),
		http.StatusBadRequest,
	)
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		T(c, detailKey),
		http.StatusNotFound,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	if detailKey == "" {
		detailKey = "error.internal.detail"
	}
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		T(c, detailKey),
		http.StatusInternalServerError,
	)
}
