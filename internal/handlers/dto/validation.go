package dto

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domainerrors "github.com/cofflyze/cofflyze-api/internal/domain/errors"
	"github.com/cofflyze/cofflyze-api/internal/domain/valueobjects"
)

var registerOnce sync.Once

// RegisterValidators registra a tag "gender" e faz o validator reportar
// os nomes dos campos como aparecem no JSON ou no formulário
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(wireFieldName)
		_ = v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
			_, err := valueobjects.NewGender(fl.Field().String())
			return err == nil
		})
	})
}

func wireFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}

// BindingErrorResponse converte o erro de ShouldBind* em problema 400
func BindingErrorResponse(c *gin.Context, err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return BadRequestErrorResponseI18n(c, "error.malformed_body")
	}

	fields := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, ValidationError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: validationMessage(c, fe.Field(), fe.Tag(), fe.Param()),
		})
	}
	return ValidationErrorResponseI18n(c, fields)
}

// DomainValidationResponse converte um ValidationError do domínio em problema 400
func DomainValidationResponse(c *gin.Context, ve *domainerrors.ValidationError) ErrorResponse {
	return ValidationErrorResponseI18n(c, []ValidationError{{
		Field:   ve.Field,
		Tag:     ve.Tag,
		Message: validationMessage(c, ve.Field, ve.Tag, ve.Param),
	}})
}

func validationMessage(c *gin.Context, field, tag, param string) string {
	key := "validation." + tag
	params := map[string]interface{}{"Field": field, "Param": param}

	if msg := T(c, key, params); msg != key {
		return msg
	}
	return T(c, "validation.invalid", params)
}
