package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	cellstatusRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/cellstatus"
	overlayRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/overlay"
)

// Service Status Resolver: агрегирует состав юнитов, Cell Status Store и
// Event Overlay Store в статус дня или юнита. Чистая функция над своими
// входами: одинаковые входы всегда дают одинаковый результат.
type Service struct {
	cellRepo    CellStatusRepository
	overlayRepo OverlayRepository
	roster      RosterProvider
	cache       *Cache
	logger      Logger
}

// NewService создает новый экземпляр Status Resolver
func NewService(
	cellRepo CellStatusRepository,
	overlayRepo OverlayRepository,
	roster RosterProvider,
	cache *Cache,
	logger Logger,
) *Service {
	return &Service{
		cellRepo:    cellRepo,
		overlayRepo: overlayRepo,
		roster:      roster,
		cache:       cache,
		logger:      logger,
	}
}

// Cache возвращает кэш resolver-а для инвалидации мутирующими операциями
func (s *Service) Cache() *Cache {
	return s.cache
}

// ResolveDayStatus разрешает статус даты (или конкретного юнита на дату):
//  1. override юнита, если unitID задан;
//  2. иначе override "на все юниты" (unit_id = 0);
//  3. иначе агрегация по составу: available == 0 -> booked, иначе free;
//  4. при пустом составе — fallback на overlay даты.
//
// Прецедентность зафиксирована как "наиболее специфичная запись всегда
// побеждает": override юнита бьёт override "на все юниты" независимо от
// порядка записи.
func (s *Service) ResolveDayStatus(ctx context.Context, date time.Time, unitID *int64) (domain.CellStatus, error) {
	date = domain.DateOnly(date)

	if s.cache != nil {
		if status, ok := s.cache.Get(date, unitID); ok {
			return status, nil
		}
	}

	status, err := s.resolve(ctx, date, unitID)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		s.cache.Set(date, unitID, status)
	}
	return status, nil
}

func (s *Service) resolve(ctx context.Context, date time.Time, unitID *int64) (domain.CellStatus, error) {
	// 1. Override конкретного юнита
	if unitID != nil && *unitID != domain.AllUnits {
		rec, err := s.cellRepo.GetOverride(ctx, *unitID, date, domain.PartFull)
		if err == nil {
			return rec.Status, nil
		}
		if !errors.Is(err, cellstatusRepo.ErrOverrideNotFound) {
			return "", fmt.Errorf("%w: unit override lookup: %v", ErrInternal, err)
		}
	}

	// 2. Override "на все юниты"
	rec, err := s.cellRepo.GetOverride(ctx, domain.AllUnits, date, domain.PartFull)
	if err == nil {
		return rec.Status, nil
	}
	if !errors.Is(err, cellstatusRepo.ErrOverrideNotFound) {
		return "", fmt.Errorf("%w: all-units override lookup: %v", ErrInternal, err)
	}

	// 3. Агрегация по составу юнитов
	units, err := s.roster.Units(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: roster lookup: %v", ErrInternal, err)
	}

	if len(units) == 0 {
		return s.resolveFromOverlay(ctx, date)
	}

	overrides, err := s.overridesByUnit(ctx, date)
	if err != nil {
		return "", err
	}

	occupied := 0
	for _, unit := range units {
		status := domain.StatusFree
		if rec, ok := overrides[unit.ID]; ok {
			status = rec.Status
		}
		if status.Occupies() {
			occupied++
		}
	}

	// День booked только при нуле доступных юнитов; день с хотя бы одним
	// свободным юнитом на агрегатном уровне всегда free
	if len(units)-occupied == 0 {
		return domain.StatusBooked, nil
	}
	return domain.StatusFree, nil
}

// resolveFromOverlay fallback для пустого состава юнитов:
// статус даты берется из её аннотации
func (s *Service) resolveFromOverlay(ctx context.Context, date time.Time) (domain.CellStatus, error) {
	o, err := s.overlayRepo.Get(ctx, date)
	if errors.Is(err, overlayRepo.ErrOverlayNotFound) {
		return domain.StatusFree, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: overlay lookup: %v", ErrInternal, err)
	}

	switch {
	case o.IsSpecialPricing:
		return domain.StatusSpecial, nil
	case o.IsPrivateEvent:
		return domain.StatusPrivate, nil
	default:
		return domain.StatusFree, nil
	}
}

// ResolveUnitBreakdown возвращает полное распределение статусов по юнитам
// на дату. Инвариант: сумма счётчиков статусов равна общему числу юнитов.
func (s *Service) ResolveUnitBreakdown(ctx context.Context, date time.Time) (*domain.Breakdown, error) {
	date = domain.DateOnly(date)

	units, err := s.roster.Units(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: roster lookup: %v", ErrInternal, err)
	}

	overrides, err := s.overridesByUnit(ctx, date)
	if err != nil {
		return nil, err
	}
	allOverride := overrides[domain.AllUnits]

	counts := make(map[domain.CellStatus]int, len(domain.AllStatuses))
	for _, status := range domain.AllStatuses {
		counts[status] = 0
	}

	details := make([]domain.UnitDayDetail, 0, len(units))
	occupied := 0

	for _, unit := range units {
		detail := domain.UnitDayDetail{Unit: unit, Status: domain.StatusFree}

		// Наиболее специфичная запись побеждает: сначала override юнита,
		// затем override "на все юниты"
		if rec, ok := overrides[unit.ID]; ok {
			detail.Status = rec.Status
			detail.Price = rec.Price
			detail.Reason = rec.Reason
		} else if allOverride != nil {
			detail.Status = allOverride.Status
			detail.Price = allOverride.Price
			detail.Reason = allOverride.Reason
		}

		counts[detail.Status]++
		if detail.Status.Occupies() {
			occupied++
		}
		details = append(details, detail)
	}

	return &domain.Breakdown{
		Date:         date,
		Total:        len(units),
		Available:    len(units) - occupied,
		StatusCounts: counts,
		Units:        details,
	}, nil
}

// overridesByUnit собирает override даты в map по unit_id (part = full)
func (s *Service) overridesByUnit(ctx context.Context, date time.Time) (map[int64]*domain.CellStatusRecord, error) {
	records, err := s.cellRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: list overrides: %v", ErrInternal, err)
	}

	byUnit := make(map[int64]*domain.CellStatusRecord, len(records))
	for _, rec := range records {
		if rec.Part != domain.PartFull {
			continue
		}
		byUnit[rec.UnitID] = rec
	}
	return byUnit, nil
}
