package dto

import (
	"strings"

	"github.com/cofflyze/cofflyze-api/internal/domain/entities"
)

// UserFormRequest representa os campos de POST /users e PUT /users/:token.
// Aceita multipart, urlencoded ou JSON; o arquivo fotoProfile é lido à parte pelo handler.
type UserFormRequest struct {
	FullName    string `json:"namaLengkap" form:"namaLengkap" binding:"required"`
	Gender      string `json:"jenisKelamin" form:"jenisKelamin" binding:"required,gender"`
	PhoneNumber string `json:"nomorHp" form:"nomorHp"`
	Address     string `json:"alamat" form:"alamat"`
	Token       string `json:"tokenFirebase" form:"tokenFirebase"`
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID          int64   `json:"idUser"`
	FullName    string  `json:"namaLengkap"`
	Gender      string  `json:"jenisKelamin"`
	PhotoURL    *string `json:"fotoProfile"`
	PhoneNumber *string `json:"nomorHp"`
	Address     *string `json:"alamat"`
	Token       *string `json:"tokenFirebase"`
}

// UserPhotoResponse é retornada na criação e na atualização
type UserPhotoResponse struct {
	Message   string  `json:"message"`
	PublicURL *string `json:"publicUrl"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		FullName:    user.FullName,
		Gender:      user.Gender.String(),
		PhotoURL:    user.PhotoURL,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
		Token:       user.Token,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// OptionalString converte campo vazio em nil (NULL no banco)
func OptionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
