package cellstatus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/storage/kvstore"
)

// record сериализуемое представление override в key/value хранилище.
// Ключ ячейки несет (date, unit_id, part), поэтому в значении их нет.
type record struct {
	Status    domain.CellStatus `json:"status"`
	Price     *float64          `json:"price,omitempty"`
	Reason    *string           `json:"reason,omitempty"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Repository Cell Status Store: CRUD ручных override статусов
// для ячеек (unit, date, part) поверх key/value хранилища
type Repository struct {
	store KVStore
}

// NewRepository создает новый экземпляр Cell Status Store
func NewRepository(store KVStore) *Repository {
	return &Repository{store: store}
}

// GetOverride возвращает override для ячейки (unit, date, part).
// Возвращает ErrOverrideNotFound, если записи нет.
func (r *Repository) GetOverride(ctx context.Context, unitID int64, date time.Time, part domain.DayPart) (*domain.CellStatusRecord, error) {
	if !part.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPart, part)
	}

	date = domain.DateOnly(date)
	value, err := r.store.Get(ctx, cellKey(date, unitID, part))
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride: %v", ErrStore, err)
	}

	return decodeRecord(value, unitID, date, part)
}

// SetOverride записывает override для одной ячейки.
// Существующая запись по тому же ключу перезаписывается (last-write-wins).
func (r *Repository) SetOverride(ctx context.Context, rec *domain.CellStatusRecord) error {
	if !rec.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, rec.Status)
	}
	part := rec.Part
	if part == "" {
		part = domain.PartFull
	}
	if !part.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPart, part)
	}

	date := domain.DateOnly(rec.Date)
	value, err := json.Marshal(record{
		Status:    rec.Status,
		Price:     rec.Price,
		Reason:    rec.Reason,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: SetOverride: %v", ErrEncode, err)
	}

	if err := r.store.Set(ctx, cellKey(date, rec.UnitID, part), value); err != nil {
		return fmt.Errorf("%w: SetOverride: %v", ErrStore, err)
	}

	return nil
}

// SetOverrideAll применяет один и тот же статус ко всем переданным юнитам
// на дату как одну логическую операцию: маркер-запись unit_id=0 плюс запись
// на каждый юнит. Операция НЕ атомарна сама по себе: при частичном сбое
// возвращается ErrPartialApply с количеством применённых записей, отката нет.
// Атомарность достигается запуском внутри транзакции (см. usecase слой).
func (r *Repository) SetOverrideAll(ctx context.Context, rec *domain.CellStatusRecord, unitIDs []int64) (int, error) {
	if !rec.Status.IsValid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, rec.Status)
	}

	marker := *rec
	marker.UnitID = domain.AllUnits

	applied := 0
	var firstErr error

	if err := r.SetOverride(ctx, &marker); err != nil {
		firstErr = err
	} else {
		applied++
	}

	for _, unitID := range unitIDs {
		unitRec := *rec
		unitRec.UnitID = unitID
		if err := r.SetOverride(ctx, &unitRec); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		applied++
	}

	if firstErr != nil {
		return applied, fmt.Errorf("%w: applied %d of %d writes: %v",
			ErrPartialApply, applied, len(unitIDs)+1, firstErr)
	}

	return applied, nil
}

// ListByDate возвращает все override на дату (включая маркер unit_id=0)
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.CellStatusRecord, error) {
	date = domain.DateOnly(date)
	values, err := r.store.ListByPrefix(ctx, datePrefix(date))
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate: %v", ErrStore, err)
	}

	records := make([]*domain.CellStatusRecord, 0, len(values))
	for key, value := range values {
		_, unitID, part, err := parseCellKey(key)
		if err != nil {
			return nil, err
		}
		rec, err := decodeRecord(value, unitID, date, part)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].UnitID < records[j].UnitID
	})

	return records, nil
}

// ClearAll удаляет все override и возвращает количество удалённых записей
func (r *Repository) ClearAll(ctx context.Context) (int64, error) {
	removed, err := r.store.DeleteByPrefix(ctx, Prefix)
	if err != nil {
		return 0, fmt.Errorf("%w: ClearAll: %v", ErrStore, err)
	}
	return removed, nil
}

// ScanUnitIDs восстанавливает приблизительный список юнитов по ключам
// существующих override. Используется ТОЛЬКО как резервный механизм,
// когда авторитетный источник состава юнитов временно пуст.
func (r *Repository) ScanUnitIDs(ctx context.Context) ([]int64, error) {
	values, err := r.store.ListByPrefix(ctx, Prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: ScanUnitIDs: %v", ErrStore, err)
	}

	seen := make(map[int64]struct{})
	for key := range values {
		_, unitID, _, err := parseCellKey(key)
		if err != nil {
			return nil, err
		}
		if unitID == domain.AllUnits {
			continue
		}
		seen[unitID] = struct{}{}
	}

	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

func decodeRecord(value []byte, unitID int64, date time.Time, part domain.DayPart) (*domain.CellStatusRecord, error) {
	var rec record
	if err := json.Unmarshal(value, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &domain.CellStatusRecord{
		UnitID:    unitID,
		Date:      date,
		Part:      part,
		Status:    rec.Status,
		Price:     rec.Price,
		Reason:    rec.Reason,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}
