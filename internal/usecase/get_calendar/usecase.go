package get_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	overlayRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/overlay"
	periodSvc "github.com/m04kA/SMC-CalendarService/internal/service/period"
	"github.com/m04kA/SMC-CalendarService/internal/service/pricing"
	"github.com/m04kA/SMC-CalendarService/internal/service/rules"
)

// UseCase use case получения календарного окна: период + статус каждого
// дня через resolver и конвейер правил + early-bird цена
type UseCase struct {
	periods      PeriodGenerator
	resolver     StatusResolver
	pipeline     RulePipeline
	overlayRepo  OverlayRepository
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	periods PeriodGenerator,
	resolver StatusResolver,
	pipeline RulePipeline,
	overlays OverlayRepository,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		periods:      periods,
		resolver:     resolver,
		pipeline:     pipeline,
		overlayRepo:  overlays,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: type=%s, offset=%d, from=%q, to=%q",
		req.PeriodType, req.Offset, req.From, req.To)

	today := domain.DateOnly(uc.timeProvider.Now())

	p, err := uc.periods.Generate(periodSvc.Request{
		Type:       domain.PeriodType(req.PeriodType),
		Offset:     req.Offset,
		CustomFrom: req.From,
		CustomTo:   req.To,
		Today:      today,
	})
	if err != nil {
		switch {
		case errors.Is(err, periodSvc.ErrInvalidPeriodType):
			uc.logger.Warn("GetCalendar: invalid period type %q", req.PeriodType)
			return nil, fmt.Errorf("%w: %q", ErrInvalidPeriodType, req.PeriodType)
		case errors.Is(err, periodSvc.ErrInvalidDate):
			uc.logger.Warn("GetCalendar: invalid custom dates: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		case errors.Is(err, periodSvc.ErrRangeTooLarge):
			uc.logger.Warn("GetCalendar: range too large: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrRangeTooLarge, err)
		default:
			uc.logger.Error("GetCalendar: period generation failed: %v", err)
			return nil, fmt.Errorf("%w: period generation: %v", ErrInternal, err)
		}
	}

	ebEnabled, ebWindow, ebPrice := uc.settings.EarlyBirdSettings()

	days := make([]Day, 0, len(p.Dates))
	for _, date := range p.Dates {
		status, err := uc.resolver.ResolveDayStatus(ctx, date, nil)
		if err != nil {
			uc.logger.Error("GetCalendar: resolve failed for date=%s: %v", date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: resolve day status: %v", ErrInternal, err)
		}

		breakdown, err := uc.resolver.ResolveUnitBreakdown(ctx, date)
		if err != nil {
			uc.logger.Error("GetCalendar: breakdown failed for date=%s: %v", date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: resolve breakdown: %v", ErrInternal, err)
		}

		o, err := uc.overlayRepo.Get(ctx, date)
		if err != nil && !errors.Is(err, overlayRepo.ErrOverlayNotFound) {
			uc.logger.Error("GetCalendar: overlay lookup failed for date=%s: %v", date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: overlay lookup: %v", ErrInternal, err)
		}
		if errors.Is(err, overlayRepo.ErrOverlayNotFound) {
			o = nil
		}

		// Пост-обработка статуса конвейером правил контекста отображения
		status = uc.pipeline.Apply(ctx, rules.ContextDisplay, status, &rules.ContextData{
			Date:      date,
			Today:     today,
			Overlay:   o,
			Breakdown: breakdown,
		})

		var overlayPrice *float64
		var event *EventInfo
		if o != nil {
			overlayPrice = o.Price
			event = &EventInfo{
				Name:             o.Name,
				Price:            o.Price,
				IsPrivateEvent:   o.IsPrivateEvent,
				IsSpecialPricing: o.IsSpecialPricing,
			}
		}

		days = append(days, Day{
			Date:           date,
			Status:         status,
			Color:          uc.settings.StatusColor(status),
			Total:          breakdown.Total,
			Available:      breakdown.Available,
			EarlyBirdPrice: pricing.EffectivePrice(date, today, ebEnabled, ebWindow, ebPrice, overlayPrice),
			Event:          event,
		})
	}

	uc.logger.Info("GetCalendar: resolved %d days (%s – %s)",
		len(days), p.From.Format(domain.DateFormat), p.To.Format(domain.DateFormat))

	return &Response{
		Period: PeriodInfo{
			Type:       p.Type,
			Offset:     p.Offset,
			From:       p.From,
			To:         p.To,
			Label:      p.Label,
			PrevOffset: p.PrevOffset,
			NextOffset: p.NextOffset,
			PrevFrom:   p.PrevFrom,
			PrevTo:     p.PrevTo,
			NextFrom:   p.NextFrom,
			NextTo:     p.NextTo,
		},
		Currency: uc.settings.CurrencyCode(),
		Days:     days,
	}, nil
}
