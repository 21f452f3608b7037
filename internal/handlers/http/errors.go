package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/cofflyze/cofflyze-api/internal/domain/errors"
	"github.com/cofflyze/cofflyze-api/internal/domain/ports"
	"github.com/cofflyze/cofflyze-api/internal/handlers/dto"
	"github.com/cofflyze/cofflyze-api/internal/handlers/middleware"
)

var notFoundErrors = []error{
	domainerrors.ErrUserNotFound,
	domainerrors.ErrHistoryNotFound,
	domainerrors.ErrArticleNotFound,
}

var badRequestErrors = []error{
	domainerrors.ErrTokenRequired,
	domainerrors.ErrPhotoRequired,
	domainerrors.ErrInvalidID,
}

// writeError converte erros do serviço em respostas RFC 7807.
// Causas internas só vão para o log.
func writeError(c *gin.Context, logger ports.Logger, err error) {
	var ve *domainerrors.ValidationError
	if errors.As(err, &ve) {
		dto.WriteProblem(c, dto.DomainValidationResponse(c, ve))
		return
	}

	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, target.Error()))
			return
		}
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, target.Error()))
			return
		}
	}

	_ = c.Error(err)
	logger.Error("request failed",
		"request_id", c.GetString(middleware.RequestIDContextKey),
		"route", c.FullPath(),
		"error", err,
	)

	if errors.Is(err, domainerrors.ErrUploadFailed) {
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c, domainerrors.ErrUploadFailed.Error()))
		return
	}
	dto.WriteProblem(c, dto.InternalErrorResponseI18n(c, ""))
}

// parseID lê um parâmetro de rota numérico; inválido responde 400 e retorna false
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, domainerrors.ErrInvalidID.Error()))
		return 0, false
	}
	return id, true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
