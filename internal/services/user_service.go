package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cofflyze/cofflyze-api/internal/domain/entities"
	"github.com/cofflyze/cofflyze-api/internal/domain/errors"
	"github.com/cofflyze/cofflyze-api/internal/domain/ports"
	"github.com/cofflyze/cofflyze-api/internal/domain/repositories"
	"github.com/cofflyze/cofflyze-api/internal/domain/valueobjects"
)

// DefaultMaxPhotoBytes é o limite de upload quando nenhum é configurado (5 MiB)
const DefaultMaxPhotoBytes int64 = 5 << 20

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo      repositories.UserRepository
	storage       ports.ObjectStorage
	uow           ports.UnitOfWork
	logger        ports.Logger
	clock         ports.Clock
	maxPhotoBytes int64
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	storage ports.ObjectStorage,
	uow ports.UnitOfWork,
	logger ports.Logger,
	clock ports.Clock,
	maxPhotoBytes int64,
) *UserService {
	if maxPhotoBytes <= 0 {
		maxPhotoBytes = DefaultMaxPhotoBytes
	}
	return &UserService{
		userRepo:      userRepo,
		storage:       storage,
		uow:           uow,
		logger:        logger,
		clock:         clock,
		maxPhotoBytes: maxPhotoBytes,
	}
}

// PhotoUpload representa o arquivo de foto recebido na requisição
type PhotoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	FullName    string
	Gender      string
	PhoneNumber *string
	Address     *string
	Token       *string
	Photo       *PhotoUpload
}

// UpdateUserInput representa os dados do PUT /users/:token
type UpdateUserInput struct {
	FullName    string
	Gender      string
	PhoneNumber *string
	Address     *string
	Photo       *PhotoUpload
}

// CreateUser envia a foto para o bucket e depois insere o usuário
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	// Gênero inválido fica zerado e é reportado por Validate
	gender, _ := valueobjects.NewGender(input.Gender)

	user := &entities.User{
		FullName:    strings.TrimSpace(input.FullName),
		Gender:      gender,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		Token:       input.Token,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if input.Photo == nil {
		return nil, errors.ErrPhotoRequired
	}
	if err := s.checkPhoto(input.Photo); err != nil {
		return nil, err
	}

	key, url, err := s.uploadPhoto(ctx, input.Photo)
	if err != nil {
		return nil, err
	}
	user.PhotoURL = &url

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.discardObject(ctx, key)
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	s.logger.Info("user created", "user_id", user.ID, "photo_key", key)
	return user, nil
}

// ListUsers lista todos os usuários
func (s *UserService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.List(ctx)
}

// GetUserByToken busca um usuário pelo token do Firebase
func (s *UserService) GetUserByToken(ctx context.Context, token string) (*entities.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.ErrTokenRequired
	}

	user, err := s.userRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// UpdateUser atualiza o perfil identificado pelo token.
// Sem foto, a coluna fotoProfile permanece como está. Retorna a URL pública
// da nova foto, ou nil quando nenhuma foi enviada.
func (s *UserService) UpdateUser(ctx context.Context, token string, input UpdateUserInput) (*string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.ErrTokenRequired
	}

	gender, _ := valueobjects.NewGender(input.Gender)

	update := entities.ProfileUpdate{
		FullName:    strings.TrimSpace(input.FullName),
		Gender:      gender,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	var (
		current *entities.User
		newKey  string
		err     error
	)

	if input.Photo != nil {
		if err := s.checkPhoto(input.Photo); err != nil {
			return nil, err
		}

		// Token inexistente não deve deixar objeto órfão no bucket
		current, err = s.userRepo.FindByToken(ctx, token)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, errors.ErrUserNotFound
		}

		key, url, err := s.uploadPhoto(ctx, input.Photo)
		if err != nil {
			return nil, err
		}
		newKey = key
		update.PhotoURL = &url
	}

	updated, err := s.userRepo.UpdateByToken(ctx, token, update)
	if err != nil {
		s.discardObject(ctx, newKey)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if !updated {
		s.discardObject(ctx, newKey)
		return nil, errors.ErrUserNotFound
	}

	if current != nil && current.HasPhoto() {
		if oldKey, ok := valueobjects.ProfilePhotoKeyFromURL(*current.PhotoURL); ok && oldKey != newKey {
			s.discardObject(ctx, oldKey)
		}
	}

	s.logger.Info("user updated", "photo_replaced", newKey != "")
	return update.PhotoURL, nil
}

// DeleteUser remove o usuário e, se houver, sua foto de perfil.
// A remoção da foto é best-effort: falhas são registradas e a linha é apagada mesmo assim.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return errors.ErrUserNotFound
		}

		if user.HasPhoto() {
			if key, ok := valueobjects.ProfilePhotoKeyFromURL(*user.PhotoURL); ok {
				if err := s.storage.Delete(ctx, key); err != nil {
					s.logger.Warn("failed to delete profile photo", "user_id", id, "key", key, "error", err)
				}
			}
		}

		deleted, err := s.userRepo.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if !deleted {
			return errors.ErrUserNotFound
		}

		s.logger.Info("user deleted", "user_id", id)
		return nil
	})
}

func (s *UserService) checkPhoto(photo *PhotoUpload) error {
	if photo.Content == nil {
		return errors.ErrPhotoRequired
	}
	if photo.Size > s.maxPhotoBytes {
		return errors.ErrPhotoTooLarge
	}
	return nil
}

// MaxPhotoBytes retorna o limite de tamanho aplicado às fotos
func (s *UserService) MaxPhotoBytes() int64 {
	return s.maxPhotoBytes
}

func (s *UserService) uploadPhoto(ctx context.Context, photo *PhotoUpload) (string, string, error) {
	key := valueobjects.ProfilePhotoKey(s.clock.Now(), photo.Filename)

	url, err := s.storage.Upload(ctx, key, photo.Content, photo.Size, photo.ContentType)
	if err != nil {
		s.logger.Error("failed to upload profile photo", "key", key, "error", err)
		return "", "", fmt.Errorf("%w: %w", errors.ErrUploadFailed, err)
	}

	return key, url, nil
}

// discardObject remove um objeto sem propagar falhas
func (s *UserService) discardObject(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to delete object", "key", key, "error", err)
	}
}
