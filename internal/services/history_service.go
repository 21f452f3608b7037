package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cofflyze/cofflyze-api/internal/domain/entities"
	"github.com/cofflyze/cofflyze-api/internal/domain/errors"
	"github.com/cofflyze/cofflyze-api/internal/domain/ports"
	"github.com/cofflyze/cofflyze-api/internal/domain/repositories"
	"github.com/cofflyze/cofflyze-api/internal/domain/valueobjects"
)

// HistoryService contém a lógica dos registros de diagnóstico
type HistoryService struct {
	historyRepo repositories.HistoryRepository
	logger      ports.Logger
	clock       ports.Clock
	location    *time.Location
}

// NewHistoryService cria um novo HistoryService.
// location define o fuso de "tanggal"; nil usa Asia/Jakarta.
func NewHistoryService(
	historyRepo repositories.HistoryRepository,
	logger ports.Logger,
	clock ports.Clock,
	location *time.Location,
) (*HistoryService, error) {
	if location == nil {
		loc, err := valueobjects.LoadTimeZone("")
		if err != nil {
			return nil, err
		}
		location = loc
	}
	return &HistoryService{
		historyRepo: historyRepo,
		logger:      logger,
		clock:       clock,
		location:    location,
	}, nil
}

// CreateHistoryInput representa o corpo do POST /history
type CreateHistoryInput struct {
	Image       *string
	Accuracy    string
	DiseaseName string
	Description string
	Cause       *string
	Symptoms    *string
	RiskFactors *string
	Treatment   *string
	Prevention  *string
	Token       string
}

// CreateHistory valida o registro e o insere com o horário atual do servidor
func (s *HistoryService) CreateHistory(ctx context.Context, input CreateHistoryInput) (*entities.HistoryEntry, error) {
	entry := &entities.HistoryEntry{
		Image:       input.Image,
		Accuracy:    strings.TrimSpace(input.Accuracy),
		DiseaseName: strings.TrimSpace(input.DiseaseName),
		Description: input.Description,
		Cause:       input.Cause,
		Symptoms:    input.Symptoms,
		RiskFactors: input.RiskFactors,
		Treatment:   input.Treatment,
		Prevention:  input.Prevention,
		Token:       strings.TrimSpace(input.Token),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	entry.CreatedAt = valueobjects.CivilTimestamp(s.clock.Now(), s.location)

	if err := s.historyRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to insert history: %w", err)
	}

	s.logger.Info("history created", "history_id", entry.ID, "disease", entry.DiseaseName)
	return entry, nil
}

// ListHistory lista todos os registros
func (s *HistoryService) ListHistory(ctx context.Context) ([]*entities.HistoryEntry, error) {
	return s.historyRepo.List(ctx)
}

// ListHistoryByToken lista os registros de um token; vazio não é erro
func (s *HistoryService) ListHistoryByToken(ctx context.Context, token string) ([]*entities.HistoryEntry, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.ErrTokenRequired
	}
	return s.historyRepo.ListByToken(ctx, token)
}

// GetHistory busca um registro pelo token e id
func (s *HistoryService) GetHistory(ctx context.Context, token string, id int64) (*entities.HistoryEntry, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.ErrTokenRequired
	}

	entry, err := s.historyRepo.FindByTokenAndID(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, errors.ErrHistoryNotFound
	}
	return entry, nil
}

// DeleteHistory remove um registro pelo id, sem checar o token
func (s *HistoryService) DeleteHistory(ctx context.Context, id int64) error {
	deleted, err := s.historyRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete history: %w", err)
	}
	if !deleted {
		return errors.ErrHistoryNotFound
	}

	s.logger.Info("history deleted", "history_id", id)
	return nil
}
