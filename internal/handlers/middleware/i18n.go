package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cofflyze/cofflyze-api/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=id (override explícito)
// 2. Accept-Language header, respeitando os pesos q
// 3. Idioma padrão (fallback)
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := m.supported(c.Query("lang"))

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

type weightedLanguage struct {
	tag    string
	weight float64
}

// parseAcceptLanguage analisa o header Accept-Language e retorna o melhor idioma suportado
// Exemplo: "en;q=0.5, id-ID;q=0.9" -> "id"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	var candidates []weightedLanguage
	for _, part := range strings.Split(acceptLang, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if tag == "" || tag == "*" {
			continue
		}

		weight := 1.0
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(q, 64)
			if err != nil {
				continue
			}
			weight = parsed
		}
		if weight <= 0 {
			continue
		}

		candidates = append(candidates, weightedLanguage{tag: tag, weight: weight})
	}

	// Estável para manter a ordem do header entre pesos iguais
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})

	for _, candidate := range candidates {
		if lang := m.supported(candidate.tag); lang != "" {
			return lang
		}

		// Verificar variação sem região (id-ID -> id)
		if base, _, found := strings.Cut(candidate.tag, "-"); found {
			if lang := m.supported(base); lang != "" {
				return lang
			}
		}
	}

	return ""
}

// supported retorna o idioma se houver tradução para ele, comparando sem diferenciar maiúsculas
func (m *I18nMiddleware) supported(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return ""
	}
	if m.i18nService.IsLanguageSupported(lang) {
		return lang
	}
	if lower := strings.ToLower(lang); m.i18nService.IsLanguageSupported(lower) {
		return lower
	}
	return ""
}
