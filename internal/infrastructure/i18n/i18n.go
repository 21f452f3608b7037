package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
	"text/template"
)

// Locales contém as traduções distribuídas com o binário
//
//go:embed locales/*.json
var Locales embed.FS

// Service gerencia traduções e internacionalização
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]string // [language][key]message
	defaultLanguage string
}

// NewService cria um novo serviço de i18n
// localesDir: diretório contendo os arquivos JSON de tradução
// defaultLang: idioma padrão (fallback)
func NewService(localesDir, defaultLang string) (*Service, error) {
	return NewServiceFS(os.DirFS(localesDir), ".", defaultLang)
}

// NewEmbeddedService usa as traduções embutidas no binário
func NewEmbeddedService(defaultLang string) (*Service, error) {
	return NewServiceFS(Locales, "locales", defaultLang)
}

// NewServiceFS carrega todos os arquivos .json de dir dentro de fsys
func NewServiceFS(fsys fs.FS, dir, defaultLang string) (*Service, error) {
	s := &Service{
		translations:    make(map[string]map[string]string),
		defaultLanguage: defaultLang,
	}

	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", dir)
	}

	// Carregar cada arquivo de tradução
	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		s.translations[lang] = translations
	}

	// Verificar se o idioma padrão existe
	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

// T traduz uma chave para o idioma especificado
// Suporta interpolação de parâmetros usando templates Go ({{.Field}}, {{.Limit}}, etc.)
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	message := s.getTranslation(lang, key)

	if message == "" {
		message = s.getTranslation(s.defaultLanguage, key)
	}

	if message == "" {
		return key
	}

	if len(params) == 0 || !strings.Contains(message, "{{") {
		return message
	}

	tmpl, err := template.New("msg").Option("missingkey=zero").Parse(message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}

	return buf.String()
}

// getTranslation busca uma tradução sem lock (uso interno)
func (s *Service) getTranslation(lang, key string) string {
	if langMap, ok := s.translations[lang]; ok {
		if msg, ok := langMap[key]; ok {
			return msg
		}
	}
	return ""
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna lista de idiomas suportados
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.translations))
	for lang := range s.translations {
		langs = append(langs, lang)
	}
	return langs
}

// IsLanguageSupported verifica se um idioma é suportado
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[lang]
	return ok
}
