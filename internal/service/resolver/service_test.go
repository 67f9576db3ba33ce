package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	cellstatusRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/cellstatus"
	"github.com/m04kA/SMC-CalendarService/internal/infra/storage/kvstore"
	overlayRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/overlay"
	rosterService "github.com/m04kA/SMC-CalendarService/internal/service/roster"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	cells    *cellstatusRepo.Repository
	overlays *overlayRepo.Repository
	cache    *Cache
	resolver *Service
}

func newFixture(t *testing.T, unitCount int) *fixture {
	t.Helper()

	store := kvstore.NewMemory()
	cells := cellstatusRepo.NewRepository(store)
	overlays := overlayRepo.NewRepository(store)
	roster := rosterService.NewService(unitCount, "Apartment", false, cells, nopLogger{})
	cache := NewCache()

	return &fixture{
		cells:    cells,
		overlays: overlays,
		cache:    cache,
		resolver: NewService(cells, overlays, roster, cache, nopLogger{}),
	}
}

func (f *fixture) setOverride(t *testing.T, unitID int64, date time.Time, status domain.CellStatus) {
	t.Helper()
	err := f.cells.SetOverride(context.Background(), &domain.CellStatusRecord{
		UnitID: unitID,
		Date:   date,
		Part:   domain.PartFull,
		Status: status,
	})
	require.NoError(t, err)
}

func day(s string) time.Time {
	t, err := time.ParseInLocation(domain.DateFormat, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolveDayStatus_NoOverrides(t *testing.T) {
	f := newFixture(t, 3)

	status, err := f.resolver.ResolveDayStatus(context.Background(), day("2025-07-01"), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFree, status)
}

func TestResolveDayStatus_BookedOnlyWhenNoUnitsAvailable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3)
	d := day("2025-07-01")

	// Два занятых юнита из трёх: день остаётся free
	f.setOverride(t, 1, d, domain.StatusBooked)
	f.setOverride(t, 2, d, domain.StatusBooked)

	status, err := f.resolver.ResolveDayStatus(ctx, d, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFree, status)

	// Третий юнит уходит в pending: доступных нет, день booked
	f.setOverride(t, 3, d, domain.StatusPending)
	f.cache.InvalidateDate(d)

	status, err = f.resolver.ResolveDayStatus(ctx, d, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusBooked, status)
}

func TestResolveDayStatus_UnitOverride(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3)
	d := day("2025-07-02")

	f.setOverride(t, 2, d, domain.StatusBlocked)

	status, err := f.resolver.ResolveDayStatus(ctx, d, ptr.Ptr(int64(2)))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusBlocked, status)

	// Юнит без override остаётся free
	status, err = f.resolver.ResolveDayStatus(ctx, d, ptr.Ptr(int64(1)))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFree, status)
}

func TestResolveDayStatus_UnitOverrideBeatsAllUnits(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3)
	d := day("2025-07-03")

	// Сначала override "на все юниты", потом более специфичный на юнит 2:
	// порядок записи не важен, специфичная запись побеждает
	_, err := f.cells.SetOverrideAll(ctx, &domain.CellStatusRecord{
		Date:   d,
		Part:   domain.PartFull,
		Status: domain.StatusBlocked,
	}, []int64{1, 2, 3})
	require.NoError(t, err)

	f.setOverride(t, 2, d, domain.StatusFree)

	status, err := f.resolver.ResolveDayStatus(ctx, d, ptr.Ptr(int64(2)))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFree, status)

	status, err = f.resolver.ResolveDayStatus(ctx, d, ptr.Ptr(int64(1)))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusBlocked, status)
}

func TestResolveDayStatus_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3)
	d := day("2025-07-04")

	f.setOverride(t, 1, d, domain.StatusExternal)

	first, err := f.resolver.ResolveDayStatus(ctx, d, nil)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		status, err := f.resolver.ResolveDayStatus(ctx, d, nil)
		require.NoError(t, err)
		assert.Equal(t, first, status)
	}
}

func TestResolveDayStatus_EmptyRosterOverlayFallback(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		overlay *domain.EventOverlay
		want    domain.CellStatus
	}{
		{
			name: "special pricing overlay",
			overlay: &domain.EventOverlay{
				IsSpecialPricing: true,
				Price:            ptr.Ptr(150.0),
			},
			want: domain.StatusSpecial,
		},
		{
			name: "private event overlay",
			overlay: &domain.EventOverlay{
				Name:           ptr.Ptr("Maintenance"),
				IsPrivateEvent: true,
			},
			want: domain.StatusPrivate,
		},
		{
			name: "no overlay",
			want: domain.StatusFree,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 0)
			d := day("2025-07-05")

			if tt.overlay != nil {
				tt.overlay.Date = d
				require.NoError(t, f.overlays.Set(ctx, tt.overlay))
			}

			status, err := f.resolver.ResolveDayStatus(ctx, d, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestResolveDayStatus_CacheInvalidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 1)
	d := day("2025-07-06")

	status, err := f.resolver.ResolveDayStatus(ctx, d, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFree, status)

	// Запись мимо инвалидации: кэш продолжает отдавать старый снапшот
	f.setOverride(t, 1, d, domain.StatusBooked)

	status, err = f.resolver.ResolveDayStatus(ctx, d, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFree, status)

	// После инвалидации даты виден актуальный статус
	f.cache.InvalidateDate(d)

	status, err = f.resolver.ResolveDayStatus(ctx, d, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusBooked, status)
}

func TestResolveUnitBreakdown(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 4)
	d := day("2025-07-07")

	f.setOverride(t, 1, d, domain.StatusBooked)
	f.setOverride(t, 2, d, domain.StatusPending)
	f.setOverride(t, 3, d, domain.StatusSpecial)

	b, err := f.resolver.ResolveUnitBreakdown(ctx, d)
	require.NoError(t, err)

	assert.Equal(t, 4, b.Total)
	assert.Equal(t, 2, b.Available) // special и неразмеченный юнит не занимают
	require.Len(t, b.Units, 4)

	assert.Equal(t, domain.StatusBooked, b.Units[0].Status)
	assert.Equal(t, domain.StatusPending, b.Units[1].Status)
	assert.Equal(t, domain.StatusSpecial, b.Units[2].Status)
	assert.Equal(t, domain.StatusFree, b.Units[3].Status)

	// Сумма счётчиков всегда равна общему числу юнитов
	sum := 0
	for _, count := range b.StatusCounts {
		sum += count
	}
	assert.Equal(t, b.Total, sum)
	assert.Equal(t, 1, b.StatusCounts[domain.StatusBooked])
	assert.Equal(t, 1, b.StatusCounts[domain.StatusFree])
}

func TestResolveUnitBreakdown_AllUnitsOverrideFillsGaps(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3)
	d := day("2025-07-08")

	_, err := f.cells.SetOverrideAll(ctx, &domain.CellStatusRecord{
		Date:   d,
		Part:   domain.PartFull,
		Status: domain.StatusBlocked,
		Reason: ptr.Ptr("renovation"),
	}, []int64{1, 2, 3})
	require.NoError(t, err)

	f.setOverride(t, 2, d, domain.StatusFree)

	b, err := f.resolver.ResolveUnitBreakdown(ctx, d)
	require.NoError(t, err)

	assert.Equal(t, 3, b.Total)
	assert.Equal(t, 1, b.Available)
	assert.Equal(t, domain.StatusBlocked, b.Units[0].Status)
	assert.Equal(t, domain.StatusFree, b.Units[1].Status)
	assert.Equal(t, domain.StatusBlocked, b.Units[2].Status)
}

func TestResolveUnitBreakdown_EmptyRoster(t *testing.T) {
	f := newFixture(t, 0)

	b, err := f.resolver.ResolveUnitBreakdown(context.Background(), day("2025-07-09"))
	require.NoError(t, err)

	assert.Equal(t, 0, b.Total)
	assert.Equal(t, 0, b.Available)
	assert.Empty(t, b.Units)
}
