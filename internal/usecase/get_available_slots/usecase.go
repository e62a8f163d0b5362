package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	catalog      ServiceCatalog
	calendar     WorkingCalendar
	ledger       AppointmentLedger
	stepMinutes  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// stepMinutes <= 0 заменяется шагом по умолчанию (30 минут).
func NewUseCase(
	catalog ServiceCatalog,
	calendar WorkingCalendar,
	ledger AppointmentLedger,
	stepMinutes int,
	logger Logger,
) *UseCase {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}
	return &UseCase{
		catalog:      catalog,
		calendar:     calendar,
		ledger:       ledger,
		stepMinutes:  stepMinutes,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s", req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		return nil, uc.dependencyError("failed to get service", err)
	}
	if !service.IsBookable() {
		uc.logger.Warn("GetAvailableSlots: service id=%s is archived", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	resp := &Response{
		Date:    req.Date,
		Service: service,
		Slots:   []domain.TimeSlot{},
	}

	// 3. Прошедшие даты не бронируются
	now := uc.timeProvider.Now()
	if domain.IsDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return resp, nil
	}

	// 4. Рабочие часы на дату
	open, close, ok := uc.calendar.OpenInterval(req.Date)
	if !ok {
		uc.logger.Info("GetAvailableSlots: business is closed on %s", req.Date.Format(domain.DateFormat))
		return resp, nil
	}

	// 5. Кандидаты с фиксированным шагом
	candidates := generateCandidates(open, close, service.DurationMinutes, uc.stepMinutes)
	if len(candidates) == 0 {
		return resp, nil
	}

	// 6. Занятые интервалы
	busy, err := uc.ledger.BusyIntervals(ctx, req.Date)
	if err != nil {
		return nil, uc.dependencyError("failed to get appointments", err)
	}

	slots := excludeBusy(candidates, busy)
	resp.Slots = excludeStarted(slots, req.Date, now)

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%s, date=%s",
		len(resp.Slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return resp, nil
}

func (uc *UseCase) dependencyError(msg string, err error) error {
	if errors.Is(err, domain.ErrTransient) {
		uc.logger.Warn("GetAvailableSlots: %s: %v", msg, err)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, msg, err)
	}
	uc.logger.Error("GetAvailableSlots: %s: %v", msg, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}
