package entities

import (
	"errors"
	"strings"

	domainerrors "github.com/cofflyze/cofflyze-api/internal/domain/errors"
	"github.com/cofflyze/cofflyze-api/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um usuário do aplicativo
type User struct {
	ID          int64
	FullName    string
	Gender      valueobjects.Gender
	PhoneNumber *string
	Address     *string
	PhotoURL    *string
	Token       *string // token do Firebase usado como chave de correlação
}

// HasPhoto verifica se o usuário possui foto de perfil
func (u *User) HasPhoto() bool {
	return u.PhotoURL != nil && *u.PhotoURL != ""
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if strings.TrimSpace(u.FullName) == "" {
		return domainerrors.NewValidationError("namaLengkap", "required", ErrInvalidUserData)
	}

	if u.Gender.IsZero() {
		return domainerrors.NewValidationError("jenisKelamin", "gender", valueobjects.ErrInvalidGender)
	}

	return nil
}

// ProfileUpdate contém os campos que o PUT /users/:token sobrescreve.
// PhotoURL nil preserva a foto atual.
type ProfileUpdate struct {
	FullName    string
	Gender      valueobjects.Gender
	PhoneNumber *string
	Address     *string
	PhotoURL    *string
}

// Validate valida os campos obrigatórios da atualização
func (p *ProfileUpdate) Validate() error {
	u := User{FullName: p.FullName, Gender: p.Gender}
	return u.Validate()
}
