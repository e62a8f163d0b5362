package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ServiceStore каталог услуг в памяти, сохраняет порядок добавления
type ServiceStore struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Service
	order []string
}

// NewServiceStore создает пустой каталог
func NewServiceStore() *ServiceStore {
	return &ServiceStore{byID: make(map[string]*domain.Service)}
}

func (s *ServiceStore) Create(ctx context.Context, service *domain.Service) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[service.ID]; exists {
		return fmt.Errorf("%w: service id=%s", ErrDuplicateID, service.ID)
	}

	c := *service
	s.byID[c.ID] = &c
	s.order = append(s.order, c.ID)
	return nil
}

func (s *ServiceStore) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	service, ok := s.byID[id]
	if !ok {
		return nil, ErrServiceNotFound
	}
	c := *service
	return &c, nil
}

func (s *ServiceStore) List(ctx context.Context) ([]*domain.Service, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Service, 0, len(s.order))
	for _, id := range s.order {
		c := *s.byID[id]
		result = append(result, &c)
	}
	return result, nil
}

func (s *ServiceStore) Update(ctx context.Context, service *domain.Service) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[service.ID]; !ok {
		return ErrServiceNotFound
	}
	c := *service
	s.byID[c.ID] = &c
	return nil
}

func (s *ServiceStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrServiceNotFound
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
