package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Service каталог услуг. Ядро бронирования только читает его через GetByID.
type Service struct {
	repo         ServiceRepository
	appointments AppointmentCounter
	timeout      time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр каталога
func NewService(
	repo ServiceRepository,
	appointments AppointmentCounter,
	timeout time.Duration,
	logger Logger,
) *Service {
	if timeout <= 0 {
		timeout = time.Duration(domain.DefaultStorageTimeoutMs) * time.Millisecond
	}
	return &Service{
		repo:         repo,
		appointments: appointments,
		timeout:      timeout,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID возвращает услугу (в том числе архивную)
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	service, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, s.storageError("GetByID", err)
	}
	return service, nil
}

// List возвращает все услуги, включая архивные
func (s *Service) List(ctx context.Context) ([]*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	services, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.storageError("List", err)
	}
	return services, nil
}

// ListActive возвращает услуги, доступные для новых записей
func (s *Service) ListActive(ctx context.Context) ([]*domain.Service, error) {
	services, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]*domain.Service, 0, len(services))
	for _, service := range services {
		if service.IsBookable() {
			active = append(active, service)
		}
	}
	return active, nil
}

// Create добавляет услугу. Нулевая длительность отклоняется с domain.ErrConfig.
func (s *Service) Create(ctx context.Context, req *CreateServiceRequest) (*domain.Service, error) {
	s.logger.Info("Create: creating service name=%q, duration=%d", req.Name, req.DurationMinutes)

	now := s.timeProvider.Now()
	service := &domain.Service{
		ID:              strings.TrimSpace(req.ID),
		Name:            strings.TrimSpace(req.Name),
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Description:     strings.TrimSpace(req.Description),
		Category:        strings.TrimSpace(req.Category),
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if service.ID == "" {
		service.ID = uuid.NewString()
	}
	if service.Category == "" {
		service.Category = domain.DefaultServiceCategory
	}

	if err := service.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Create(ctx, service); err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, s.storageError("Create", err)
	}

	s.logger.Info("Create: successfully created service id=%s", service.ID)
	return service, nil
}

// Update административное изменение услуги.
// Существующие записи продолжают ссылаться на услугу по ID.
func (s *Service) Update(ctx context.Context, req *UpdateServiceRequest) (*domain.Service, error) {
	s.logger.Info("Update: updating service id=%s", req.ID)

	current, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	// Удлинение услуги сдвинуло бы конец уже занятых интервалов
	if req.DurationMinutes > current.DurationMinutes {
		if err := s.ensureNoScheduled(ctx, current.ID); err != nil {
			s.logger.Warn("Update: refusing to extend service id=%s from %d to %d minutes: %v",
				req.ID, current.DurationMinutes, req.DurationMinutes, err)
			return nil, err
		}
	}

	current.Name = strings.TrimSpace(req.Name)
	current.DurationMinutes = req.DurationMinutes
	current.Price = req.Price
	current.Description = strings.TrimSpace(req.Description)
	current.Category = strings.TrimSpace(req.Category)
	if current.Category == "" {
		current.Category = domain.DefaultServiceCategory
	}
	if req.Active != nil {
		current.Active = *req.Active
	}
	current.UpdatedAt = s.timeProvider.Now()

	if err := current.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Update(ctx, current); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for id=%s: %v", req.ID, err)
		return nil, s.storageError("Update", err)
	}

	s.logger.Info("Update: successfully updated service id=%s", req.ID)
	return current, nil
}

// ensureNoScheduled возвращает ErrDurationLocked, если на услугу есть
// запланированные записи
func (s *Service) ensureNoScheduled(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	scheduled, err := s.appointments.CountScheduledByService(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to count appointments for service id=%s: %v", id, err)
		return s.storageError("Update", err)
	}
	if scheduled > 0 {
		return fmt.Errorf("%w: %d scheduled appointments", ErrDurationLocked, scheduled)
	}
	return nil
}

// Delete удаляет услугу.
// Если на нее есть запланированные записи, услуга архивируется:
// скрывается из новых бронирований, а история ссылок сохраняется.
func (s *Service) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	s.logger.Info("Delete: deleting service id=%s", id)

	service, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	scheduled, err := s.appointments.CountScheduledByService(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count appointments for service id=%s: %v", id, err)
		return nil, s.storageError("Delete", err)
	}

	if scheduled > 0 {
		service.Active = false
		service.UpdatedAt = s.timeProvider.Now()
		if err := s.repo.Update(ctx, service); err != nil {
			s.logger.Error("Delete: failed to archive service id=%s: %v", id, err)
			return nil, s.storageError("Delete", err)
		}
		s.logger.Info("Delete: service id=%s archived, %d scheduled appointments reference it", id, scheduled)
		return &DeleteResult{Archived: true}, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return nil, s.storageError("Delete", err)
	}

	s.logger.Info("Delete: successfully deleted service id=%s", id)
	return &DeleteResult{Archived: false}, nil
}

// Seed наполняет пустой каталог услугами из конфигурации
func (s *Service) Seed(ctx context.Context, seed []CreateServiceRequest) error {
	existing, err := s.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.logger.Info("Seed: catalog already has %d services, skipping", len(existing))
		return nil
	}

	for i := range seed {
		if _, err := s.Create(ctx, &seed[i]); err != nil {
			return fmt.Errorf("seed service %q: %w", seed[i].Name, err)
		}
	}
	return nil
}

func (s *Service) storageError(op string, err error) error {
	if domain.IsTimeout(err) {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
