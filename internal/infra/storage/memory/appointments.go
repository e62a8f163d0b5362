package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// AppointmentStore хранилище записей в памяти процесса.
// Наружу отдаются только копии, чтобы вызывающий код не мутировал состояние.
type AppointmentStore struct {
	mu     sync.RWMutex
	byID   map[string]*domain.Appointment
	byDate map[string][]string // YYYY-MM-DD -> ids
}

// NewAppointmentStore создает пустое хранилище
func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{
		byID:   make(map[string]*domain.Appointment),
		byDate: make(map[string][]string),
	}
}

// Insert сохраняет новую запись
func (s *AppointmentStore) Insert(ctx context.Context, appointment *domain.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[appointment.ID]; exists {
		return fmt.Errorf("%w: appointment id=%s", ErrDuplicateID, appointment.ID)
	}

	stored := appointment.Clone()
	s.byID[stored.ID] = stored
	key := stored.DateKey()
	s.byDate[key] = append(s.byDate[key], stored.ID)

	return nil
}

// GetByID возвращает запись по ID
func (s *AppointmentStore) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byID[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return a.Clone(), nil
}

// UpdateStatus меняет статус записи
func (s *AppointmentStore) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.byID[id]
	if !ok {
		return ErrAppointmentNotFound
	}
	a.Status = status
	a.UpdatedAt = updatedAt
	return nil
}

// ListByDate возвращает все записи на дату (любой статус), по возрастанию времени
func (s *AppointmentStore) ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byDate[date.Format(domain.DateFormat)]
	result := make([]*domain.Appointment, 0, len(ids))
	for _, id := range ids {
		result = append(result, s.byID[id].Clone())
	}

	sortByDateTime(result)
	return result, nil
}

// ListByPeriod возвращает записи с from по to включительно (любой статус)
func (s *AppointmentStore) ListByPeriod(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fromKey, toKey := from.Format(domain.DateFormat), to.Format(domain.DateFormat)

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Appointment, 0)
	for key, ids := range s.byDate {
		if key < fromKey || key > toKey {
			continue
		}
		for _, id := range ids {
			result = append(result, s.byID[id].Clone())
		}
	}

	sortByDateTime(result)
	return result, nil
}

// ListScheduledFrom возвращает запланированные записи начиная с даты from включительно
func (s *AppointmentStore) ListScheduledFrom(ctx context.Context, from time.Time) ([]*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fromKey := from.Format(domain.DateFormat)

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Appointment, 0)
	for _, a := range s.byID {
		if a.IsScheduled() && a.DateKey() >= fromKey {
			result = append(result, a.Clone())
		}
	}

	sortByDateTime(result)
	return result, nil
}

// CountScheduledByService считает запланированные записи на услугу
func (s *AppointmentStore) CountScheduledByService(ctx context.Context, serviceID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, a := range s.byID {
		if a.ServiceID == serviceID && a.IsScheduled() {
			count++
		}
	}
	return count, nil
}

func sortByDateTime(appointments []*domain.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		ki, kj := appointments[i].DateKey(), appointments[j].DateKey()
		if ki != kj {
			return ki < kj
		}
		return appointments[i].Time.Minutes() < appointments[j].Time.Minutes()
	})
}
