package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/cofflyze/cofflyze-api/internal/handlers/middleware"
	"github.com/cofflyze/cofflyze-api/internal/infrastructure/i18n"
)

const fallbackLanguage = "en"

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "error.photo_too_large", map[string]interface{}{"Limit": 5242880})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	i18nService, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		// Fallback: retornar a chave se serviço não estiver disponível
		return key
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	lang, ok := c.Get(middleware.LanguageContextKey)
	if !ok {
		return fallbackLanguage
	}

	langStr, ok := lang.(string)
	if !ok || langStr == "" {
		return fallbackLanguage
	}

	return langStr
}
