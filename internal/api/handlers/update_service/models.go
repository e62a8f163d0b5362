package update_service

import "github.com/m04kA/SMC-AgendaService/internal/service/catalog"

// UpdateServiceRequest HTTP request model.
// Active опционально: отсутствие поля не меняет статус услуги.
type UpdateServiceRequest struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Active          *bool   `json:"active,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель каталога
func (r *UpdateServiceRequest) ToServiceRequest(id string) *catalog.UpdateServiceRequest {
	return &catalog.UpdateServiceRequest{
		ID:              id,
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Description:     r.Description,
		Category:        r.Category,
		Active:          r.Active,
	}
}
