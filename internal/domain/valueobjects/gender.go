package valueobjects

import (
	"errors"
	"strings"
)

var (
	ErrInvalidGender = errors.New("invalid gender")
)

// Gender é um value object que aceita apenas os valores gravados em tbl_user
type Gender struct {
	value string
}

const (
	genderMale   = "Laki-laki"
	genderFemale = "Perempuan"
)

var (
	GenderMale   = Gender{value: genderMale}
	GenderFemale = Gender{value: genderFemale}
)

// NewGender cria um Gender validado
func NewGender(gender string) (Gender, error) {
	switch strings.TrimSpace(gender) {
	case genderMale:
		return GenderMale, nil
	case genderFemale:
		return GenderFemale, nil
	default:
		return Gender{}, ErrInvalidGender
	}
}

// String retorna o valor do gênero
func (g Gender) String() string {
	return g.value
}

// IsZero indica se o gênero não foi definido
func (g Gender) IsZero() bool {
	return g.value == ""
}
