package cellstatus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/storage/kvstore"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation(domain.DateFormat, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSetGetOverride(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kvstore.NewMemory())
	d := day("2025-07-01")

	err := repo.SetOverride(ctx, &domain.CellStatusRecord{
		UnitID: 2,
		Date:   d,
		Part:   domain.PartFull,
		Status: domain.StatusBlocked,
		Price:  ptr.Ptr(80.0),
		Reason: ptr.Ptr("renovation"),
	})
	require.NoError(t, err)

	rec, err := repo.GetOverride(ctx, 2, d, domain.PartFull)
	require.NoError(t, err)

	assert.Equal(t, int64(2), rec.UnitID)
	assert.True(t, rec.Date.Equal(d))
	assert.Equal(t, domain.PartFull, rec.Part)
	assert.Equal(t, domain.StatusBlocked, rec.Status)
	assert.Equal(t, 80.0, *rec.Price)
	assert.Equal(t, "renovation", *rec.Reason)
	assert.False(t, rec.UpdatedAt.IsZero())
}

func TestGetOverride_NotFound(t *testing.T) {
	repo := NewRepository(kvstore.NewMemory())

	_, err := repo.GetOverride(context.Background(), 1, day("2025-07-01"), domain.PartFull)
	assert.ErrorIs(t, err, ErrOverrideNotFound)
}

func TestSetOverride_Validation(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kvstore.NewMemory())

	err := repo.SetOverride(ctx, &domain.CellStatusRecord{
		UnitID: 1,
		Date:   day("2025-07-01"),
		Status: "nonsense",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = repo.SetOverride(ctx, &domain.CellStatusRecord{
		UnitID: 1,
		Date:   day("2025-07-01"),
		Part:   "evening",
		Status: domain.StatusFree,
	})
	assert.ErrorIs(t, err, ErrInvalidPart)
}

func TestSetOverride_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kvstore.NewMemory())
	d := day("2025-07-01")

	require.NoError(t, repo.SetOverride(ctx, &domain.CellStatusRecord{
		UnitID: 1, Date: d, Status: domain.StatusBooked,
	}))
	require.NoError(t, repo.SetOverride(ctx, &domain.CellStatusRecord{
		UnitID: 1, Date: d, Status: domain.StatusFree,
	}))

	rec, err := repo.GetOverride(ctx, 1, d, domain.PartFull)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFree, rec.Status)
}

func TestSetOverrideAll(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kvstore.NewMemory())
	d := day("2025-07-02")

	applied, err := repo.SetOverrideAll(ctx, &domain.CellStatusRecord{
		Date:   d,
		Part:   domain.PartFull,
		Status: domain.StatusExternal,
	}, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 4, applied) // маркер + три юнита

	// Маркер-запись под unit_id = 0
	marker, err := repo.GetOverride(ctx, domain.AllUnits, d, domain.PartFull)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExternal, marker.Status)
	assert.True(t, marker.IsAllUnits())

	for _, unitID := range []int64{1, 2, 3} {
		rec, err := repo.GetOverride(ctx, unitID, d, domain.PartFull)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusExternal, rec.Status)
	}
}

func TestListByDate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kvstore.NewMemory())
	d := day("2025-07-03")

	require.NoError(t, repo.SetOverride(ctx, &domain.CellStatusRecord{
		UnitID: 3, Date: d, Status: domain.StatusBooked,
	}))
	require.NoError(t, repo.SetOverride(ctx, &domain.CellStatusRecord{
		UnitID: 1, Date: d, Status: domain.StatusPending,
	}))
	// Запись другой даты в выборку не попадает
	require.NoError(t, repo.SetOverride(ctx, &domain.CellStatusRecord{
		UnitID: 1, Date: day("2025-07-04"), Status: domain.StatusBlocked,
	}))

	records, err := repo.ListByDate(ctx, d)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Отсортировано по unit_id
	assert.Equal(t, int64(1), records[0].UnitID)
	assert.Equal(t, domain.StatusPending, records[0].Status)
	assert.Equal(t, int64(3), records[1].UnitID)
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := NewRepository(store)

	require.NoError(t, repo.SetOverride(ctx, &domain.CellStatusRecord{
		UnitID: 1, Date: day("2025-07-01"), Status: domain.StatusBooked,
	}))
	require.NoError(t, repo.SetOverride(ctx, &domain.CellStatusRecord{
		UnitID: 2, Date: day("2025-07-02"), Status: domain.StatusBlocked,
	}))
	// Чужие ключи не затрагиваются
	require.NoError(t, store.Set(ctx, "overlay:2025-07-01", []byte(`{}`)))

	removed, err := repo.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	records, err := repo.ListByDate(ctx, day("2025-07-01"))
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = store.Get(ctx, "overlay:2025-07-01")
	assert.NoError(t, err)
}

func TestScanUnitIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kvstore.NewMemory())

	_, err := repo.SetOverrideAll(ctx, &domain.CellStatusRecord{
		Date:   day("2025-07-01"),
		Part:   domain.PartFull,
		Status: domain.StatusBooked,
	}, []int64{5, 2})
	require.NoError(t, err)
	require.NoError(t, repo.SetOverride(ctx, &domain.CellStatusRecord{
		UnitID: 2, Date: day("2025-07-02"), Status: domain.StatusFree,
	}))

	ids, err := repo.ScanUnitIDs(ctx)
	require.NoError(t, err)

	// Маркер unit_id = 0 не считается юнитом; дубликаты схлопываются
	assert.Equal(t, []int64{2, 5}, ids)
}

func TestCellKeyRoundTrip(t *testing.T) {
	d := day("2025-07-01")
	key := cellKey(d, 7, domain.PartFirstHalf)
	assert.Equal(t, "cell:2025-07-01:7:first_half", key)

	parsedDate, unitID, part, err := parseCellKey(key)
	require.NoError(t, err)
	assert.True(t, parsedDate.Equal(d))
	assert.Equal(t, int64(7), unitID)
	assert.Equal(t, domain.PartFirstHalf, part)
}

func TestParseCellKey_Malformed(t *testing.T) {
	tests := []string{
		"overlay:2025-07-01",
		"cell:2025-07-01",
		"cell:not-a-date:1:full",
		"cell:2025-07-01:x:full",
		"cell:2025-07-01:1:evening",
	}

	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			_, _, _, err := parseCellKey(key)
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}
