//go:build integration

package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/internal/infra/storage/pgtest"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

var (
	location = time.FixedZone("BRT", -3*60*60)
	// 2026-10-19, понедельник
	monday = time.Date(2026, 10, 19, 0, 0, 0, 0, location)
)

func newAppointment(id, serviceID string, date time.Time, at types.TimeString) *domain.Appointment {
	created := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	return &domain.Appointment{
		ID:          id,
		ServiceID:   serviceID,
		ClientName:  "Ana Clara Silva",
		ClientEmail: "ana@email.com",
		Date:        date,
		Time:        at,
		Status:      domain.StatusScheduled,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestRepository_Postgres(t *testing.T) {
	db := pgtest.Start(t)
	repo := NewRepository(dbmetrics.Wrap(db, nil), location)
	ctx := context.Background()

	t.Run("insert and get", func(t *testing.T) {
		pgtest.Truncate(t, db)

		require.NoError(t, repo.Insert(ctx, newAppointment("a1", "1", monday, "14:00")))

		got, err := repo.GetByID(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, "1", got.ServiceID)
		assert.Equal(t, types.TimeString("14:00"), got.Time)
		assert.Equal(t, domain.StatusScheduled, got.Status)
		assert.Equal(t, "2026-10-19", got.DateKey())
		assert.Equal(t, location, got.Date.Location())

		err = repo.Insert(ctx, newAppointment("a1", "1", monday, "15:00"))
		assert.ErrorIs(t, err, ErrDuplicateID)

		_, err = repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("update status", func(t *testing.T) {
		pgtest.Truncate(t, db)
		require.NoError(t, repo.Insert(ctx, newAppointment("a1", "1", monday, "09:00")))

		updated := time.Date(2026, 10, 18, 13, 0, 0, 0, time.UTC)
		require.NoError(t, repo.UpdateStatus(ctx, "a1", domain.StatusCanceled, updated))

		got, err := repo.GetByID(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCanceled, got.Status)
		assert.True(t, got.UpdatedAt.Equal(updated))

		err = repo.UpdateStatus(ctx, "missing", domain.StatusCanceled, updated)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("lists", func(t *testing.T) {
		pgtest.Truncate(t, db)
		tuesday := monday.AddDate(0, 0, 1)

		require.NoError(t, repo.Insert(ctx, newAppointment("a3", "1", monday, "15:00")))
		require.NoError(t, repo.Insert(ctx, newAppointment("a1", "1", monday, "09:00")))
		require.NoError(t, repo.Insert(ctx, newAppointment("a2", "2", tuesday, "10:00")))
		require.NoError(t, repo.Insert(ctx, newAppointment("a4", "2", monday.AddDate(0, 0, -3), "10:00")))
		require.NoError(t, repo.UpdateStatus(ctx, "a3", domain.StatusCanceled, time.Now()))

		byDate, err := repo.ListByDate(ctx, monday)
		require.NoError(t, err)
		require.Len(t, byDate, 2)
		assert.Equal(t, "a1", byDate[0].ID)
		assert.Equal(t, "a3", byDate[1].ID)

		period, err := repo.ListByPeriod(ctx, monday, tuesday)
		require.NoError(t, err)
		assert.Len(t, period, 3)

		scheduled, err := repo.ListScheduledFrom(ctx, monday)
		require.NoError(t, err)
		require.Len(t, scheduled, 2)
		assert.Equal(t, "a1", scheduled[0].ID)
		assert.Equal(t, "a2", scheduled[1].ID)

		count, err := repo.CountScheduledByService(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
