package business

import "github.com/m04kA/SMC-AgendaService/internal/domain"

// Info данные бизнеса для публичной страницы записи и экрана настроек
type Info struct {
	Name            string
	Slug            string
	About           string
	Timezone        string
	SlotStepMinutes int
	// WorkingHours семь дней, с воскресенья по субботу, включая выходные
	WorkingHours []domain.WorkingHours
}
