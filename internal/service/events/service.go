package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	overlayRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/overlay"
)

// SetEventRequest запрос на запись аннотации даты
type SetEventRequest struct {
	Date             time.Time
	Name             *string
	Price            *float64
	IsPrivateEvent   bool
	IsSpecialPricing bool
	CreatedBy        int64
}

// Service сервис аннотаций дат: приватные события и специальное
// ценообразование. Аннотации не трогают статусы юнитов.
type Service struct {
	overlayRepo OverlayRepository
	cache       CacheInvalidator
	logger      Logger
}

// NewService создает новый экземпляр сервиса событий
func NewService(overlayRepo OverlayRepository, cache CacheInvalidator, logger Logger) *Service {
	return &Service{
		overlayRepo: overlayRepo,
		cache:       cache,
		logger:      logger,
	}
}

// SetPrivateEvent записывает аннотацию даты.
// Пустая аннотация (нет имени, флагов и положительной цены) отклоняется.
func (s *Service) SetPrivateEvent(ctx context.Context, req *SetEventRequest) (*domain.EventOverlay, error) {
	o := &domain.EventOverlay{
		Date:             domain.DateOnly(req.Date),
		Name:             req.Name,
		Price:            req.Price,
		IsPrivateEvent:   req.IsPrivateEvent,
		IsSpecialPricing: req.IsSpecialPricing,
		CreatedBy:        req.CreatedBy,
	}

	if err := validateOverlay(o); err != nil {
		s.logger.Warn("SetPrivateEvent: validation failed for date=%s: %v",
			o.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	if err := s.overlayRepo.Set(ctx, o); err != nil {
		s.logger.Error("SetPrivateEvent: failed to store overlay for date=%s: %v",
			o.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: SetPrivateEvent: %v", ErrInternal, err)
	}

	s.cache.InvalidateDate(o.Date)

	s.logger.Info("SetPrivateEvent: overlay stored for date=%s (private=%t, special=%t)",
		o.Date.Format(domain.DateFormat), o.IsPrivateEvent, o.IsSpecialPricing)
	return o, nil
}

// RemovePrivateEvent удаляет аннотацию даты.
// ErrOverlayNotFound, если аннотации не было.
func (s *Service) RemovePrivateEvent(ctx context.Context, date time.Time) error {
	date = domain.DateOnly(date)

	err := s.overlayRepo.Remove(ctx, date)
	if errors.Is(err, overlayRepo.ErrOverlayNotFound) {
		s.logger.Warn("RemovePrivateEvent: no overlay for date=%s", date.Format(domain.DateFormat))
		return ErrOverlayNotFound
	}
	if err != nil {
		s.logger.Error("RemovePrivateEvent: failed for date=%s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: RemovePrivateEvent: %v", ErrInternal, err)
	}

	s.cache.InvalidateDate(date)

	s.logger.Info("RemovePrivateEvent: overlay removed for date=%s", date.Format(domain.DateFormat))
	return nil
}

// GetOverlay возвращает аннотацию даты, nil если её нет
func (s *Service) GetOverlay(ctx context.Context, date time.Time) (*domain.EventOverlay, error) {
	o, err := s.overlayRepo.Get(ctx, domain.DateOnly(date))
	if errors.Is(err, overlayRepo.ErrOverlayNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlay: %v", ErrInternal, err)
	}
	return o, nil
}

func validateOverlay(o *domain.EventOverlay) error {
	if o.IsEmpty() {
		return ErrEmptyPayload
	}
	if o.Name != nil && len(*o.Name) > domain.MaxEventNameLength {
		return fmt.Errorf("%w: max %d characters", ErrNameTooLong, domain.MaxEventNameLength)
	}
	if o.Price != nil && *o.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}
