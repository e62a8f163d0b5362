package create_service

import "github.com/m04kA/SMC-AgendaService/internal/service/catalog"

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
}

// ToServiceRequest конвертирует HTTP запрос в модель каталога
func (r *CreateServiceRequest) ToServiceRequest() *catalog.CreateServiceRequest {
	return &catalog.CreateServiceRequest{
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Description:     r.Description,
		Category:        r.Category,
	}
}
