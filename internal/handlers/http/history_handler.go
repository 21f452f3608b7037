package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cofflyze/cofflyze-api/internal/domain/ports"
	"github.com/cofflyze/cofflyze-api/internal/handlers/dto"
	"github.com/cofflyze/cofflyze-api/internal/services"
)

// HistoryHandler lida com os registros de diagnóstico
type HistoryHandler struct {
	historyService *services.HistoryService
	logger         ports.Logger
}

// NewHistoryHandler cria um novo HistoryHandler
func NewHistoryHandler(historyService *services.HistoryService, logger ports.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		logger:         logger,
	}
}

// CreateHistory grava um diagnóstico com o horário do servidor
//
//	@Summary	Cria registro de histórico
//	@Tags		history
//	@Accept		json,x-www-form-urlencoded
//	@Produce	json
//	@Param		body	body		dto.CreateHistoryRequest	true	"Registro"
//	@Success	201		{object}	dto.MessageResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	500		{object}	dto.ErrorResponse
//	@Router		/history [post]
func (h *HistoryHandler) CreateHistory(c *gin.Context) {
	var req dto.CreateHistoryRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.WriteProblem(c, dto.BindingErrorResponse(c, err))
		return
	}

	if _, err := h.historyService.CreateHistory(c.Request.Context(), req.ToInput()); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: dto.T(c, "message.history_created")})
}

// ListHistory lista todos os registros
//
//	@Summary	Lista históricos
//	@Tags		history
//	@Produce	json
//	@Success	200	{array}	dto.HistoryResponse
//	@Router		/history [get]
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	entries, err := h.historyService.ListHistory(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryResponses(entries))
}

// ListHistoryByToken lista os registros de um token
//
//	@Summary	Lista históricos por token
//	@Tags		history
//	@Produce	json
//	@Param		token	path	string	true	"Token do Firebase"
//	@Success	200		{array}	dto.HistoryResponse
//	@Router		/history/{token} [get]
func (h *HistoryHandler) ListHistoryByToken(c *gin.Context) {
	entries, err := h.historyService.ListHistoryByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryResponses(entries))
}

// GetHistory busca um registro por token e id
//
//	@Summary	Busca histórico por token e id
//	@Tags		history
//	@Produce	json
//	@Param		token	path		string	true	"Token do Firebase"
//	@Param		id		path		int		true	"ID do histórico"
//	@Success	200		{object}	dto.HistoryResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/history/{token}/{id} [get]
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	entry, err := h.historyService.GetHistory(c.Request.Context(), c.Param("token"), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryResponse(entry))
}

// DeleteHistory remove um registro pelo id
//
//	@Summary	Remove histórico
//	@Tags		history
//	@Produce	json
//	@Param		id	path		int	true	"ID do histórico"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/history/{id} [delete]
func (h *HistoryHandler) DeleteHistory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.historyService.DeleteHistory(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "message.history_deleted")})
}
