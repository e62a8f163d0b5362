package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// 2026-10-19, понедельник
var monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubServices map[string]*domain.Service

func (s stubServices) GetByID(_ context.Context, id string) (*domain.Service, error) {
	service, ok := s[id]
	if !ok {
		return nil, memory.ErrServiceNotFound
	}
	c := *service
	return &c, nil
}

// blockingRepository зависает до истечения контекста
type blockingRepository struct{ AppointmentRepository }

func (blockingRepository) ListByDate(ctx context.Context, _ time.Time) ([]*domain.Appointment, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func testServices() stubServices {
	return stubServices{
		"1": {ID: "1", Name: "Consultoria de Negócios", DurationMinutes: 60, Active: true},
		"2": {ID: "2", Name: "Mentoria Express", DurationMinutes: 30, Active: true},
	}
}

func newTestLedger(t *testing.T, services stubServices) (*Ledger, *memory.AppointmentStore) {
	t.Helper()
	store := memory.NewAppointmentStore()
	l := New(store, services, time.Second, logger.NewNop())
	l.timeProvider = fixedTime{now: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
	return l, store
}

func booking(serviceID string, date time.Time, at types.TimeString) *domain.Appointment {
	return &domain.Appointment{
		ServiceID:   serviceID,
		ClientName:  "Ana Clara Silva",
		ClientEmail: "ana@email.com",
		Date:        date,
		Time:        at,
	}
}

func TestLedger_Add(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t, testServices())

	first, err := l.Add(ctx, booking("1", monday, "14:00"))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, domain.StatusScheduled, first.Status)
	assert.False(t, first.CreatedAt.IsZero())

	tests := []struct {
		name    string
		in      *domain.Appointment
		wantErr error
	}{
		{name: "same start", in: booking("2", monday, "14:00"), wantErr: domain.ErrConflict},
		{name: "starts inside", in: booking("2", monday, "14:30"), wantErr: domain.ErrConflict},
		{name: "ends inside", in: booking("1", monday, "13:30"), wantErr: domain.ErrConflict},
		{name: "touching before", in: booking("2", monday, "13:30")},
		{name: "touching after", in: booking("2", monday, "15:00")},
		{name: "other date", in: booking("1", monday.AddDate(0, 0, 1), "14:00")},
		{name: "unknown service", in: booking("404", monday, "09:00"), wantErr: ErrUnknownService},
		{name: "malformed time", in: booking("1", monday, "9h"), wantErr: ErrInvalidAppointment},
		{name: "missing service id", in: booking("", monday, "09:00"), wantErr: ErrInvalidAppointment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Add(ctx, tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLedger_ConcurrentAdd(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t, testServices())

	const attempts = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.Add(ctx, booking("1", monday, "10:00"))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if assert.ErrorIs(t, err, ErrSlotConflict) {
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicts)

	list, err := l.ListForDate(ctx, monday)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestLedger_NoOverlapAfterRandomSequence(t *testing.T) {
	ctx := context.Background()
	services := testServices()
	l, _ := newTestLedger(t, services)

	starts := []types.TimeString{"09:00", "09:30", "10:00", "09:15", "10:45", "11:00", "10:30", "09:45"}
	var accepted []string
	for i, start := range starts {
		serviceID := "1"
		if i%2 == 1 {
			serviceID = "2"
		}
		a, err := l.Add(ctx, booking(serviceID, monday, start))
		if err == nil {
			accepted = append(accepted, a.ID)
		}
		if i == 3 && len(accepted) > 0 {
			_, err := l.Cancel(ctx, accepted[0])
			require.NoError(t, err)
		}
	}

	list, err := l.ListForDate(ctx, monday)
	require.NoError(t, err)

	var scheduled []domain.TimeSlot
	for _, a := range list {
		if a.IsScheduled() {
			scheduled = append(scheduled, a.Interval(services[a.ServiceID].DurationMinutes))
		}
	}
	for i := range scheduled {
		for j := i + 1; j < len(scheduled); j++ {
			assert.False(t, scheduled[i].Overlaps(scheduled[j]), "%v overlaps %v", scheduled[i], scheduled[j])
		}
	}
}

func TestLedger_Transitions(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t, testServices())

	a, err := l.Add(ctx, booking("1", monday, "10:00"))
	require.NoError(t, err)

	t.Run("cancel frees the interval", func(t *testing.T) {
		canceled, err := l.Cancel(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCanceled, canceled.Status)

		busy, err := l.BusyIntervals(ctx, monday)
		require.NoError(t, err)
		assert.Empty(t, busy)

		_, err = l.Add(ctx, booking("1", monday, "10:00"))
		assert.NoError(t, err)
	})

	t.Run("second cancel is idempotent", func(t *testing.T) {
		again, err := l.Cancel(ctx, a.ID)
		assert.ErrorIs(t, err, domain.ErrIdempotentState)
		require.NotNil(t, again)
		assert.Equal(t, domain.StatusCanceled, again.Status)
	})

	t.Run("canceled cannot be completed", func(t *testing.T) {
		_, err := l.Complete(ctx, a.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("completed cannot be canceled", func(t *testing.T) {
		b, err := l.Add(ctx, booking("2", monday, "16:00"))
		require.NoError(t, err)

		done, err := l.Complete(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, done.Status)

		_, err = l.Cancel(ctx, b.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := l.Cancel(ctx, "missing")
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestLedger_DanglingService(t *testing.T) {
	ctx := context.Background()
	services := testServices()
	l, store := newTestLedger(t, services)

	// запись на удаленную услугу не блокирует интервал
	require.NoError(t, store.Insert(ctx, &domain.Appointment{
		ID:        "orphan",
		ServiceID: "removed",
		Date:      monday,
		Time:      "10:00",
		Status:    domain.StatusScheduled,
	}))

	busy, err := l.BusyIntervals(ctx, monday)
	require.NoError(t, err)
	require.Len(t, busy, 1)
	assert.Equal(t, 0, busy[0].DurationMinutes())

	_, err = l.Add(ctx, booking("1", monday, "10:00"))
	assert.NoError(t, err)
}

func TestLedger_Lists(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLedger(t, testServices())

	for _, a := range []*domain.Appointment{
		booking("2", monday, "09:00"),
		booking("2", monday, "11:00"),
		booking("1", monday.AddDate(0, 0, 1), "10:00"),
		booking("1", monday.AddDate(0, 0, 2), "10:00"),
	} {
		_, err := l.Add(ctx, a)
		require.NoError(t, err)
	}

	t.Run("upcoming from instant", func(t *testing.T) {
		from := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
		list, err := l.ListUpcoming(ctx, from, 2)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, types.TimeString("11:00"), list[0].Time)
		assert.Equal(t, "2026-10-20", list[1].DateKey())

		all, err := l.ListUpcoming(ctx, from, 0)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("range", func(t *testing.T) {
		list, err := l.ListRange(ctx, monday, monday.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Len(t, list, 3)

		_, err = l.ListRange(ctx, monday, monday.AddDate(0, 0, -1))
		assert.ErrorIs(t, err, ErrInvalidAppointment)
	})

	t.Run("has scheduled for service", func(t *testing.T) {
		has, err := l.HasScheduledForService(ctx, "1")
		require.NoError(t, err)
		assert.True(t, has)

		has, err = l.HasScheduledForService(ctx, "3")
		require.NoError(t, err)
		assert.False(t, has)
	})
}

func TestLedger_StorageTimeout(t *testing.T) {
	l := New(blockingRepository{}, testServices(), 20*time.Millisecond, logger.NewNop())

	_, err := l.Add(context.Background(), booking("1", monday, "10:00"))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, domain.ErrTransient)

	_, err = l.BusyIntervals(context.Background(), monday)
	assert.ErrorIs(t, err, domain.ErrTransient)
}
