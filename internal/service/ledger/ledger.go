package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// Ledger единственная точка изменения записей.
// Проверка пересечений и вставка выполняются под одним мьютексом,
// поэтому два одновременных Add на один интервал не могут пройти оба.
type Ledger struct {
	mu sync.Mutex

	repo         AppointmentRepository
	services     ServiceResolver
	timeout      time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// New создает журнал записей
func New(repo AppointmentRepository, services ServiceResolver, timeout time.Duration, logger Logger) *Ledger {
	if timeout <= 0 {
		timeout = time.Duration(domain.DefaultStorageTimeoutMs) * time.Millisecond
	}
	return &Ledger{
		repo:         repo,
		services:     services,
		timeout:      timeout,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Add проверяет запись и сохраняет ее.
// ID и CreatedAt назначаются, если не заданы. Пустой статус означает scheduled.
func (l *Ledger) Add(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	a := appointment.Clone()
	a.ClientName = strings.TrimSpace(a.ClientName)
	a.ClientEmail = strings.TrimSpace(a.ClientEmail)
	if a.Status == "" {
		a.Status = domain.StatusScheduled
	}
	if err := a.Validate(); err != nil {
		l.logger.Warn("Add: rejected malformed appointment: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidAppointment, err)
	}

	service, err := l.services.GetByID(ctx, a.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrUnknownService, a.ServiceID)
		}
		return nil, l.storageError("Add", err)
	}
	interval := a.Interval(service.DurationMinutes)

	l.mu.Lock()
	defer l.mu.Unlock()

	if a.IsScheduled() {
		existing, err := l.scheduledIntervals(ctx, a.Date)
		if err != nil {
			return nil, err
		}
		for _, busy := range existing {
			if interval.Overlaps(busy.slot) {
				l.logger.Warn("Add: interval %s-%s on %s overlaps appointment id=%s",
					interval.Start, interval.End, a.DateKey(), busy.id)
				return nil, fmt.Errorf("%w: %s %s-%s overlaps appointment id=%s",
					ErrSlotConflict, a.DateKey(), interval.Start, interval.End, busy.id)
			}
		}
	}

	now := l.timeProvider.Now()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	storeCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	if err := l.repo.Insert(storeCtx, a); err != nil {
		l.logger.Error("Add: repository error: %v", err)
		return nil, l.storageError("Add", err)
	}

	l.logger.Info("Add: appointment id=%s scheduled on %s at %s", a.ID, a.DateKey(), a.Time)
	return a.Clone(), nil
}

// Cancel переводит запись в canceled. Интервал освобождается сразу.
// При повторной отмене возвращается запись вместе с ErrAlreadyInState.
// Отмена выполненной записи запрещена.
func (l *Ledger) Cancel(ctx context.Context, id string) (*domain.Appointment, error) {
	return l.transition(ctx, "Cancel", id, domain.StatusCanceled)
}

// Complete отмечает запись как выполненную
func (l *Ledger) Complete(ctx context.Context, id string) (*domain.Appointment, error) {
	return l.transition(ctx, "Complete", id, domain.StatusCompleted)
}

func (l *Ledger) transition(ctx context.Context, op, id string, target domain.AppointmentStatus) (*domain.Appointment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, err := l.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if a.Status == target {
		l.logger.Info("%s: appointment id=%s is already %s", op, id, target)
		return a, fmt.Errorf("%w: id=%s status=%s", ErrAlreadyInState, id, target)
	}
	if !a.IsScheduled() {
		l.logger.Warn("%s: appointment id=%s cannot move from %s to %s", op, id, a.Status, target)
		return nil, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, a.Status, target)
	}

	now := l.timeProvider.Now()

	storeCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	if err := l.repo.UpdateStatus(storeCtx, id, target, now); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		l.logger.Error("%s: repository error for id=%s: %v", op, id, err)
		return nil, l.storageError(op, err)
	}

	a.Status = target
	a.UpdatedAt = now
	l.logger.Info("%s: appointment id=%s is now %s", op, id, target)
	return a, nil
}

// Get возвращает запись по ID
func (l *Ledger) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	a, err := l.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrAppointmentNotFound, id)
		}
		return nil, l.storageError("Get", err)
	}
	return a, nil
}

// ListForDate все записи на дату (любой статус) по возрастанию времени.
// Каждый вызов возвращает свежий срез.
func (l *Ledger) ListForDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	list, err := l.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, l.storageError("ListForDate", err)
	}
	return list, nil
}

// ListRange записи с from по to включительно
func (l *Ledger) ListRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end %s is before start %s",
			ErrInvalidAppointment, to.Format(domain.DateFormat), from.Format(domain.DateFormat))
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	list, err := l.repo.ListByPeriod(ctx, from, to)
	if err != nil {
		return nil, l.storageError("ListRange", err)
	}
	return list, nil
}

// ListUpcoming запланированные записи с (date, time) >= from, не больше limit.
// limit <= 0 означает без ограничения.
func (l *Ledger) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	list, err := l.repo.ListScheduledFrom(ctx, from)
	if err != nil {
		return nil, l.storageError("ListUpcoming", err)
	}

	fromKey := from.Format(domain.DateFormat)
	fromMinutes := from.Hour()*60 + from.Minute()

	result := make([]*domain.Appointment, 0, len(list))
	for _, a := range list {
		if a.DateKey() == fromKey && a.Time.Minutes() < fromMinutes {
			continue
		}
		result = append(result, a)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// HasScheduledForService true, если на услугу есть запланированные записи
func (l *Ledger) HasScheduledForService(ctx context.Context, serviceID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	count, err := l.repo.CountScheduledByService(ctx, serviceID)
	if err != nil {
		return false, l.storageError("HasScheduledForService", err)
	}
	return count > 0, nil
}

// BusyIntervals интервалы запланированных записей на дату по возрастанию начала
func (l *Ledger) BusyIntervals(ctx context.Context, date time.Time) ([]domain.TimeSlot, error) {
	busy, err := l.scheduledIntervals(ctx, date)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0, len(busy))
	for _, b := range busy {
		slots = append(slots, b.slot)
	}
	return slots, nil
}

type busyInterval struct {
	id   string
	slot domain.TimeSlot
}

func (l *Ledger) scheduledIntervals(ctx context.Context, date time.Time) ([]busyInterval, error) {
	list, err := l.ListForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	durations := make(map[string]int)
	result := make([]busyInterval, 0, len(list))
	for _, a := range list {
		if !a.IsScheduled() {
			continue
		}

		duration, ok := durations[a.ServiceID]
		if !ok {
			duration, err = l.resolveDuration(ctx, a)
			if err != nil {
				return nil, err
			}
			durations[a.ServiceID] = duration
		}
		result = append(result, busyInterval{id: a.ID, slot: a.Interval(duration)})
	}
	return result, nil
}

// resolveDuration длительность услуги записи. Удаленная услуга дает длительность 0:
// запись остается в журнале, но не блокирует интервал.
func (l *Ledger) resolveDuration(ctx context.Context, a *domain.Appointment) (int, error) {
	service, err := l.services.GetByID(ctx, a.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			l.logger.Warn("data integrity: appointment id=%s references unknown service id=%s, using zero duration",
				a.ID, a.ServiceID)
			return 0, nil
		}
		return 0, l.storageError("resolveDuration", err)
	}
	return service.DurationMinutes, nil
}

func (l *Ledger) storageError(op string, err error) error {
	if errors.Is(err, domain.ErrTransient) || domain.IsTimeout(err) {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
