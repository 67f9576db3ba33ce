package roster

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Service поставщик состава юнитов (roster).
// Авторитетный источник — сконфигурированное количество юнитов; скан ключей
// хранилища включается только как резервный механизм, когда авторитетный
// источник пуст (см. scanFallback).
type Service struct {
	unitCount    int
	typeLabel    string
	scanFallback bool
	scanner      UnitScanner
	logger       Logger
}

// NewService создает поставщика состава юнитов
func NewService(unitCount int, typeLabel string, scanFallback bool, scanner UnitScanner, logger Logger) *Service {
	if typeLabel == "" {
		typeLabel = domain.DefaultUnitTypeLabel
	}
	return &Service{
		unitCount:    unitCount,
		typeLabel:    typeLabel,
		scanFallback: scanFallback,
		scanner:      scanner,
		logger:       logger,
	}
}

// Units возвращает текущий состав юнитов.
// Пустой состав допустим: resolver переключается на overlay-fallback.
func (s *Service) Units(ctx context.Context) ([]domain.Unit, error) {
	if s.unitCount > 0 {
		return buildUnits(s.unitCount, s.typeLabel), nil
	}

	if !s.scanFallback || s.scanner == nil {
		return []domain.Unit{}, nil
	}

	// Резервный путь: восстановление списка по ключам Cell Status Store
	ids, err := s.scanner.ScanUnitIDs(ctx)
	if err != nil {
		s.logger.Error("Units: roster scan fallback failed: %v", err)
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.Unit{}, nil
	}

	s.logger.Warn("Units: authoritative roster empty, reconstructed %d units from storage keys", len(ids))

	units := make([]domain.Unit, 0, len(ids))
	for _, id := range ids {
		units = append(units, domain.Unit{
			ID:           id,
			DisplayLabel: fmt.Sprintf("%s %d", s.typeLabel, id),
			Type:         s.typeLabel,
		})
	}
	return units, nil
}

func buildUnits(count int, typeLabel string) []domain.Unit {
	units := make([]domain.Unit, 0, count)
	for i := 1; i <= count; i++ {
		units = append(units, domain.Unit{
			ID:           int64(i),
			DisplayLabel: fmt.Sprintf("%s %d", typeLabel, i),
			Type:         typeLabel,
		})
	}
	return units
}
