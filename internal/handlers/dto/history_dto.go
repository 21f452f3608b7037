package dto

import (
	"github.com/cofflyze/cofflyze-api/internal/domain/entities"
	"github.com/cofflyze/cofflyze-api/internal/services"
)

// CreateHistoryRequest representa o corpo de POST /history (JSON ou urlencoded)
type CreateHistoryRequest struct {
	Image       *string `json:"gambar" form:"gambar"`
	Accuracy    string  `json:"akurasi" form:"akurasi" binding:"required"`
	DiseaseName string  `json:"nama_penyakit" form:"nama_penyakit" binding:"required,max=100"`
	Description string  `json:"deskripsi" form:"deskripsi" binding:"required"`
	Cause       *string `json:"penyebab" form:"penyebab"`
	Symptoms    *string `json:"gejala" form:"gejala"`
	RiskFactors *string `json:"faktor_risiko" form:"faktor_risiko"`
	Treatment   *string `json:"penanganan" form:"penanganan"`
	Prevention  *string `json:"pencegahan" form:"pencegahan"`
	Token       string  `json:"tokenFirebase" form:"tokenFirebase" binding:"required"`
}

// ToInput converte a requisição para o input do serviço
func (r CreateHistoryRequest) ToInput() services.CreateHistoryInput {
	return services.CreateHistoryInput{
		Image:       optionalPtr(r.Image),
		Accuracy:    r.Accuracy,
		DiseaseName: r.DiseaseName,
		Description: r.Description,
		Cause:       optionalPtr(r.Cause),
		Symptoms:    optionalPtr(r.Symptoms),
		RiskFactors: optionalPtr(r.RiskFactors),
		Treatment:   optionalPtr(r.Treatment),
		Prevention:  optionalPtr(r.Prevention),
		Token:       r.Token,
	}
}

// HistoryResponse representa um registro de histórico
type HistoryResponse struct {
	ID          int64   `json:"id_history"`
	Image       *string `json:"gambar"`
	Accuracy    string  `json:"akurasi"`
	CreatedAt   string  `json:"tanggal"`
	DiseaseName string  `json:"nama_penyakit"`
	Description string  `json:"deskripsi"`
	Cause       *string `json:"penyebab"`
	Symptoms    *string `json:"gejala"`
	RiskFactors *string `json:"faktor_risiko"`
	Treatment   *string `json:"penanganan"`
	Prevention  *string `json:"pencegahan"`
	Token       string  `json:"tokenFirebase"`
}

// ToHistoryResponse converte uma entidade HistoryEntry para HistoryResponse
func ToHistoryResponse(entry *entities.HistoryEntry) HistoryResponse {
	return HistoryResponse{
		ID:          entry.ID,
		Image:       entry.Image,
		Accuracy:    entry.Accuracy,
		CreatedAt:   entry.CreatedAt,
		DiseaseName: entry.DiseaseName,
		Description: entry.Description,
		Cause:       entry.Cause,
		Symptoms:    entry.Symptoms,
		RiskFactors: entry.RiskFactors,
		Treatment:   entry.Treatment,
		Prevention:  entry.Prevention,
		Token:       entry.Token,
	}
}

// ToHistoryResponses sempre retorna slice não nulo, serializado como []
func ToHistoryResponses(entries []*entities.HistoryEntry) []HistoryResponse {
	responses := make([]HistoryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToHistoryResponse(entry)
	}
	return responses
}

func optionalPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return OptionalString(*s)
}
