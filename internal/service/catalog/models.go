package catalog

// CreateServiceRequest запрос на добавление услуги в каталог
type CreateServiceRequest struct {
	ID              string // опционально, для начального наполнения из конфигурации
	Name            string
	DurationMinutes int
	Price           float64
	Description     string
	Category        string
}

// UpdateServiceRequest административное изменение услуги
type UpdateServiceRequest struct {
	ID              string
	Name            string
	DurationMinutes int
	Price           float64
	Description     string
	Category        string
	Active          *bool // nil = не менять
}

// DeleteResult итог удаления
type DeleteResult struct {
	// Archived true, если на услугу есть запланированные записи и она
	// была скрыта из каталога вместо физического удаления
	Archived bool
}
