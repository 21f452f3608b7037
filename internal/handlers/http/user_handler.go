package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/cofflyze/cofflyze-api/internal/domain/errors"
	"github.com/cofflyze/cofflyze-api/internal/domain/ports"
	"github.com/cofflyze/cofflyze-api/internal/handlers/dto"
	"github.com/cofflyze/cofflyze-api/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
	logger      ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// CreateUser cria um novo usuário com foto de perfil
//
//	@Summary	Cria usuário
//	@Tags		users
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		namaLengkap		formData	string	true	"Nome completo"
//	@Param		jenisKelamin	formData	string	true	"Laki-laki ou Perempuan"
//	@Param		nomorHp			formData	string	false	"Telefone"
//	@Param		alamat			formData	string	false	"Endereço"
//	@Param		tokenFirebase	formData	string	false	"Token do Firebase"
//	@Param		fotoProfile		formData	file	true	"Foto de perfil"
//	@Success	201				{object}	dto.UserPhotoResponse
//	@Failure	400				{object}	dto.ErrorResponse
//	@Failure	500				{object}	dto.ErrorResponse
//	@Router		/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.UserFormRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.WriteProblem(c, dto.BindingErrorResponse(c, err))
		return
	}

	photo, closePhoto, err := readPhoto(c)
	if err != nil {
		dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, "error.malformed_body"))
		return
	}
	defer closePhoto()

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		FullName:    req.FullName,
		Gender:      req.Gender,
		PhoneNumber: dto.OptionalString(req.PhoneNumber),
		Address:     dto.OptionalString(req.Address),
		Token:       dto.OptionalString(req.Token),
		Photo:       photo,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UserPhotoResponse{
		Message:   dto.T(c, "message.user_created"),
		PublicURL: user.PhotoURL,
	})
}

// ListUsers lista usuários
//
//	@Summary	Lista usuários
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}		dto.UserResponse
//	@Failure	500	{object}	dto.ErrorResponse
//	@Router		/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// GetUser busca um usuário pelo token do Firebase
//
//	@Summary	Busca usuário por token
//	@Tags		users
//	@Produce	json
//	@Param		token	path		string	true	"Token do Firebase"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/users/{token} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUserByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateUser atualiza o perfil; sem arquivo a foto atual é mantida
//
//	@Summary	Atualiza usuário por token
//	@Tags		users
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		token			path		string	true	"Token do Firebase"
//	@Param		namaLengkap		formData	string	true	"Nome completo"
//	@Param		jenisKelamin	formData	string	true	"Laki-laki ou Perempuan"
//	@Param		nomorHp			formData	string	false	"Telefone"
//	@Param		alamat			formData	string	false	"Endereço"
//	@Param		fotoProfile		formData	file	false	"Nova foto de perfil"
//	@Success	200				{object}	dto.UserPhotoResponse
//	@Failure	400				{object}	dto.ErrorResponse
//	@Failure	404				{object}	dto.ErrorResponse
//	@Failure	500				{object}	dto.ErrorResponse
//	@Router		/users/{token} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	token := c.Param("token")
	if isBlank(token) {
		h.writeError(c, domainerrors.ErrTokenRequired)
		return
	}

	var req dto.UserFormRequest
	if err := c.ShouldBind(&req); err != nil {
		dto.WriteProblem(c, dto.BindingErrorResponse(c, err))
		return
	}

	photo, closePhoto, err := readPhoto(c)
	if err != nil {
		dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, "error.malformed_body"))
		return
	}
	defer closePhoto()

	publicURL, err := h.userService.UpdateUser(c.Request.Context(), token, services.UpdateUserInput{
		FullName:    req.FullName,
		Gender:      req.Gender,
		PhoneNumber: dto.OptionalString(req.PhoneNumber),
		Address:     dto.OptionalString(req.Address),
		Photo:       photo,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserPhotoResponse{
		Message:   dto.T(c, "message.user_updated"),
		PublicURL: publicURL,
	})
}

// DeleteUser remove o usuário e sua foto
//
//	@Summary	Remove usuário por id
//	@Tags		users
//	@Produce	json
//	@Param		id	path		int	true	"ID do usuário"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "message.user_deleted")})
}

func (h *UserHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, domainerrors.ErrPhotoTooLarge) {
		dto.WriteProblem(c, dto.BadRequestErrorResponseI18n(c, domainerrors.ErrPhotoTooLarge.Error(), map[string]interface{}{
			"Limit": h.userService.MaxPhotoBytes(),
		}))
		return
	}
	writeError(c, h.logger, err)
}

// readPhoto abre o arquivo fotoProfile, se enviado
func readPhoto(c *gin.Context) (*services.PhotoUpload, func(), error) {
	noop := func() {}

	header, err := c.FormFile("fotoProfile")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &services.PhotoUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Content:     file,
	}, func() { _ = file.Close() }, nil
}
