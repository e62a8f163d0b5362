package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	catalog      ServiceCatalog
	calendar     WorkingCalendar
	ledger       AppointmentLedger
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog ServiceCatalog,
	calendar WorkingCalendar,
	ledger AppointmentLedger,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		calendar:     calendar,
		ledger:       ledger,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Validate проверяет предложенную запись, не изменяя журнал.
// Причины отказа проверяются по порядку: услуга, прошлое, рабочие часы,
// занятость, данные клиента. Отказ возвращается как *domain.RejectionError,
// прочие ошибки означают сбой зависимостей.
func (uc *UseCase) Validate(ctx context.Context, req *Request) (*domain.Appointment, *domain.Service, error) {
	if err := validateRequest(req); err != nil {
		return nil, nil, err
	}

	// 1. Услуга существует и не архивирована
	service, err := uc.catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.Reject(domain.ReasonUnknownService, "service id=%s not found", req.ServiceID)
		}
		return nil, nil, uc.dependencyError("failed to get service", err)
	}
	if !service.IsBookable() {
		return nil, nil, domain.Reject(domain.ReasonUnknownService, "service id=%s is archived", req.ServiceID)
	}

	// 2. Начало записи не в прошлом
	now := uc.timeProvider.Now()
	if req.Time.OnDate(req.Date).Before(now) {
		return nil, nil, domain.Reject(domain.ReasonInPast, "%s %s is before %s",
			req.Date.Format(domain.DateFormat), req.Time, now.Format("2006-01-02 15:04"))
	}

	// 3. Интервал целиком внутри рабочих часов
	if !uc.calendar.Contains(req.Date, req.Time, service.DurationMinutes) {
		return nil, nil, domain.Reject(domain.ReasonOutsideWorkingHours, "%s %s +%dmin",
			req.Date.Format(domain.DateFormat), req.Time, service.DurationMinutes)
	}

	// 4. Нет пересечений с запланированными записями
	interval := domain.NewTimeSlot(req.Time, service.DurationMinutes)
	busy, err := uc.ledger.BusyIntervals(ctx, req.Date)
	if err != nil {
		return nil, nil, uc.dependencyError("failed to get appointments", err)
	}
	for _, b := range busy {
		if interval.Overlaps(b) {
			return nil, nil, domain.Reject(domain.ReasonSlotTaken, "%s-%s overlaps %s-%s",
				interval.Start, interval.End, b.Start, b.End)
		}
	}

	// 5. Данные клиента
	if err := validateClient(req.ClientName, req.ClientEmail); err != nil {
		return nil, nil, err
	}

	return &domain.Appointment{
		ServiceID:   service.ID,
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientEmail: strings.TrimSpace(req.ClientEmail),
		Date:        domain.DateOnly(req.Date),
		Time:        req.Time,
		Status:      domain.StatusScheduled,
	}, service, nil
}

// Execute проверяет запись и сохраняет ее в журнал.
// Журнал повторно проверяет пересечения под блокировкой: если между
// Validate и Add интервал заняли, клиент получает SLOT_TAKEN.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, date=%s, time=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	appointment, service, err := uc.Validate(ctx, req)
	if err != nil {
		return nil, uc.reject(err)
	}

	created, err := uc.ledger.Add(ctx, appointment)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, uc.reject(domain.Reject(domain.ReasonSlotTaken, "%v", err))
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, uc.reject(domain.Reject(domain.ReasonUnknownService, "%v", err))
		}
		return nil, uc.dependencyError("failed to add appointment", err)
	}

	if uc.metrics != nil {
		uc.metrics.BookingAccepted()
	}
	uc.logger.Info("CreateBooking: successfully created appointment id=%s", created.ID)

	return &Response{Appointment: created, Service: service}, nil
}

func (uc *UseCase) reject(err error) error {
	if rej, ok := domain.AsRejection(err); ok {
		uc.logger.Warn("CreateBooking: rejected: %v", rej)
		if uc.metrics != nil {
			uc.metrics.BookingRejected(string(rej.Reason))
		}
	}
	return err
}

func (uc *UseCase) dependencyError(msg string, err error) error {
	if errors.Is(err, domain.ErrTransient) {
		uc.logger.Warn("CreateBooking: %s: %v", msg, err)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, msg, err)
	}
	uc.logger.Error("CreateBooking: %s: %v", msg, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}
