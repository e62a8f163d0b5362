package agenda

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/integrations/summarizer"
)

// Service агрегирует журнал и каталог для панели администратора
type Service struct {
	ledger       AppointmentLedger
	catalog      ServiceCatalog
	summarizer   Summarizer
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис панели. location задает "сегодня" бизнеса.
func NewService(
	ledger AppointmentLedger,
	catalog ServiceCatalog,
	summarizer Summarizer,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.Local
	}
	return &Service{
		ledger:       ledger,
		catalog:      catalog,
		summarizer:   summarizer,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Dashboard собирает записи на сегодня, ближайшие записи, показатели
// и текстовую сводку дня. Сбой генерации сводки не ломает ответ.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	now := s.timeProvider.Now().In(s.location)
	today := domain.DateOnly(now)
	s.logger.Info("Dashboard: building for %s", today.Format(domain.DateFormat))

	services, err := s.catalog.List(ctx)
	if err != nil {
		return nil, s.dependencyError("Dashboard", "failed to list services", err)
	}
	byID := indexServices(services)

	todayList, err := s.ledger.ListForDate(ctx, today)
	if err != nil {
		return nil, s.dependencyError("Dashboard", "failed to list today's appointments", err)
	}

	upcoming, err := s.ledger.ListUpcoming(ctx, now, 0)
	if err != nil {
		return nil, s.dependencyError("Dashboard", "failed to list upcoming appointments", err)
	}

	stats := Stats{ScheduledUpcoming: len(upcoming)}
	for _, service := range services {
		if service.IsBookable() {
			stats.ActiveServices++
		}
	}

	clients := make(map[string]struct{}, len(upcoming))
	for _, a := range upcoming {
		clients[strings.ToLower(a.ClientEmail)] = struct{}{}
	}
	stats.UniqueClients = len(clients)

	todayEntries := s.entries(todayList, byID)
	items := make([]summarizer.AgendaItem, 0, len(todayEntries))
	for _, e := range todayEntries {
		if e.Appointment.IsScheduled() {
			stats.ExpectedRevenue += e.Price
		}
		items = append(items, summarizer.AgendaItem{
			Time:        e.Appointment.Time.String(),
			ClientName:  e.Appointment.ClientName,
			ServiceName: e.ServiceName,
			Status:      string(e.Appointment.Status),
		})
	}

	if len(upcoming) > upcomingOnDashboard {
		upcoming = upcoming[:upcomingOnDashboard]
	}

	return &Dashboard{
		Date:     today,
		Summary:  s.summarizer.SummarizeOrFallback(ctx, items),
		Stats:    stats,
		Today:    todayEntries,
		Upcoming: s.entries(upcoming, byID),
	}, nil
}

// Month возвращает сетку месяца с записями по дням
func (s *Service) Month(ctx context.Context, year int, month time.Month) (*Month, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d is out of range 1..12", ErrInvalidInput, month)
	}
	if year < 1970 || year > 9999 {
		return nil, fmt.Errorf("%w: year %d is out of range", ErrInvalidInput, year)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, s.location)
	last := first.AddDate(0, 1, -1)

	services, err := s.catalog.List(ctx)
	if err != nil {
		return nil, s.dependencyError("Month", "failed to list services", err)
	}

	list, err := s.ledger.ListRange(ctx, first, last)
	if err != nil {
		return nil, s.dependencyError("Month", "failed to list appointments", err)
	}

	byDay := make(map[string][]*domain.Appointment, last.Day())
	for _, a := range list {
		byDay[a.DateKey()] = append(byDay[a.DateKey()], a)
	}

	byID := indexServices(services)
	days := make([]Day, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{
			Day:          d.Day(),
			Date:         d,
			Appointments: s.entries(byDay[d.Format(domain.DateFormat)], byID),
		})
	}

	s.logger.Info("Month: %d appointments in %04d-%02d", len(list), year, int(month))
	return &Month{
		Year:          year,
		Month:         month,
		Name:          monthNames[month-1],
		LeadingBlanks: int(first.Weekday()),
		Days:          days,
	}, nil
}

// Describe генерирует описание услуги. При недоступности генерации
// возвращается запасной текст.
func (s *Service) Describe(ctx context.Context, serviceName string) (string, error) {
	serviceName = strings.TrimSpace(serviceName)
	if serviceName == "" {
		return "", fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	return s.summarizer.DescribeOrFallback(ctx, serviceName), nil
}

func (s *Service) entries(list []*domain.Appointment, services map[string]*domain.Service) []Entry {
	out := make([]Entry, 0, len(list))
	for _, a := range list {
		e := Entry{Appointment: a}
		if service, ok := services[a.ServiceID]; ok {
			e.ServiceName = service.Name
			e.Price = service.Price
		} else {
			s.logger.Warn("data integrity: appointment id=%s references unknown service id=%s", a.ID, a.ServiceID)
		}
		out = append(out, e)
	}
	return out
}

func indexServices(services []*domain.Service) map[string]*domain.Service {
	byID := make(map[string]*domain.Service, len(services))
	for _, service := range services {
		byID[service.ID] = service
	}
	return byID
}

func (s *Service) dependencyError(op, msg string, err error) error {
	if errors.Is(err, domain.ErrTransient) {
		s.logger.Warn("%s: %s: %v", op, msg, err)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, msg, err)
	}
	s.logger.Error("%s: %s: %v", op, msg, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}
