package pricing

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// EffectivePrice вычисляет early-bird цену даты.
// Скидочная цена действует, пока до даты остаётся не меньше windowDays дней:
// тогда возвращается overlay-цена (если задана и > 0), иначе defaultPrice.
// Внутри окна, для прошедших дат и при выключенном механизме — 0.
// Вычисляется на каждую календарную дату независимо от конкретного
// многодневного бронирования.
func EffectivePrice(date, today time.Time, enabled bool, windowDays int, defaultPrice float64, overlayPrice *float64) float64 {
	if !enabled {
		return 0
	}

	daysOut := int(domain.DateOnly(date).Sub(domain.DateOnly(today)).Hours() / 24)
	if daysOut < windowDays {
		return 0
	}

	if overlayPrice != nil && *overlayPrice > 0 {
		return *overlayPrice
	}
	return defaultPrice
}
