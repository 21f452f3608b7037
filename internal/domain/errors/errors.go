package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound    = errors.New("error.user_not_found")
	ErrHistoryNotFound = errors.New("error.history_not_found")
	ErrArticleNotFound = errors.New("error.article_not_found")
	ErrTokenRequired   = errors.New("error.token_required")
	ErrPhotoRequired   = errors.New("error.photo_required")
	ErrPhotoTooLarge   = errors.New("error.photo_too_large")
	ErrInvalidID       = errors.New("error.invalid_id")
)

// Infrastructure errors
var (
	ErrUploadFailed = errors.New("error.upload_failed")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation = "/problems/validation-error"
	ProblemTypeNotFound   = "/problems/not-found"
	ProblemTypeInternal   = "/problems/internal-error"
	ProblemTypeBadRequest = "/problems/bad-request"
)

// ValidationError representa uma violação de regra em um campo específico
type ValidationError struct {
	Field string
	Tag   string
	Param string // limite da regra, ex.: "100" para max
	Err   error
}

// NewValidationError cria um ValidationError
func NewValidationError(field, tag string, err error) *ValidationError {
	return &ValidationError{Field: field, Tag: tag, Err: err}
}

// WithParam define o parâmetro da regra violada
func (e *ValidationError) WithParam(param string) *ValidationError {
	e.Param = param
	return e
}

func (e *ValidationError) Error() string {
	msg := e.Field + " failed on " + e.Tag
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation verifica se err (ou algum erro encadeado) é um ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
