package entities

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	domainerrors "github.com/cofflyze/cofflyze-api/internal/domain/errors"
)

// MaxDiseaseNameLength é o tamanho máximo de nama_penyakit
const MaxDiseaseNameLength = 100

var (
	ErrInvalidHistoryData = errors.New("invalid history data")
)

// HistoryEntry representa o resultado de um diagnóstico salvo pelo usuário
type HistoryEntry struct {
	ID          int64
	Image       *string // URL ou payload codificado, não interpretado
	Accuracy    string
	CreatedAt   string // YYYY-MM-DD HH:mm:ss no fuso configurado
	DiseaseName string
	Description string
	Cause       *string
	Symptoms    *string
	RiskFactors *string
	Treatment   *string
	Prevention  *string
	Token       string
}

// Validate valida regras de negócio da entidade HistoryEntry
func (h *HistoryEntry) Validate() error {
	if strings.TrimSpace(h.Accuracy) == "" {
		return domainerrors.NewValidationError("akurasi", "required", ErrInvalidHistoryData)
	}

	if strings.TrimSpace(h.DiseaseName) == "" {
		return domainerrors.NewValidationError("nama_penyakit", "required", ErrInvalidHistoryData)
	}

	if utf8.RuneCountInString(h.DiseaseName) > MaxDiseaseNameLength {
		return domainerrors.NewValidationError("nama_penyakit", "max", ErrInvalidHistoryData).
			WithParam(strconv.Itoa(MaxDiseaseNameLength))
	}

	if strings.TrimSpace(h.Description) == "" {
		return domainerrors.NewValidationError("deskripsi", "required", ErrInvalidHistoryData)
	}

	if strings.TrimSpace(h.Token) == "" {
		return domainerrors.NewValidationError("tokenFirebase", "required", ErrInvalidHistoryData)
	}

	return nil
}
