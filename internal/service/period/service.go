package period

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request параметры генерации периода
type Request struct {
	Type       domain.PeriodType
	Offset     int    // сдвиг окна в месяцах/кварталах относительно текущего
	CustomFrom string // YYYY-MM-DD, только для custom
	CustomTo   string // YYYY-MM-DD, только для custom
	Today      time.Time
}

// Service генератор периодов: упорядоченные последовательности дат
// для месячного, квартального и произвольного окна с навигацией
type Service struct {
	maxRangeDays int
}

// NewService создает генератор периодов.
// maxRangeDays ограничивает custom-диапазоны (защита от неограниченного скана).
func NewService(maxRangeDays int) *Service {
	if maxRangeDays <= 0 {
		maxRangeDays = domain.DefaultMaxRangeDays
	}
	return &Service{maxRangeDays: maxRangeDays}
}

// Generate вычисляет период: непрерывную возрастающую последовательность дат
// с inclusive границами и метаданными навигации
func (s *Service) Generate(req Request) (*domain.Period, error) {
	today := domain.DateOnly(req.Today)
	if today.IsZero() {
		today = domain.DateOnly(time.Now().UTC())
	}

	switch req.Type {
	case domain.PeriodMonth:
		return s.generateMonth(today, req.Offset), nil
	case domain.PeriodQuarter:
		return s.generateQuarter(today, req.Offset), nil
	case domain.PeriodCustom:
		return s.generateCustom(today, req.CustomFrom, req.CustomTo)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriodType, req.Type)
	}
}

// generateMonth: первый день текущего месяца, сдвинутый на offset месяцев,
// по последний день получившегося месяца
func (s *Service) generateMonth(today time.Time, offset int) *domain.Period {
	from := time.Date(today.Year(), today.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	p := &domain.Period{
		Type:       domain.PeriodMonth,
		Offset:     offset,
		From:       from,
		To:         to,
		Dates:      fillDates(from, to),
		Label:      from.Format("January 2006"),
		PrevOffset: offset - 1,
		NextOffset: offset + 1,
	}
	return p
}

// generateQuarter: текущий квартал плюс offset кварталов,
// с переносом года вперед/назад при выходе за границы
func (s *Service) generateQuarter(today time.Time, offset int) *domain.Period {
	quarter := (int(today.Month()) - 1) / 3

	// Абсолютный номер квартала от нулевого года, floor-деление для
	// корректного переноса года при отрицательных offset
	total := today.Year()*4 + quarter + offset
	year := total / 4
	q := total % 4
	if q < 0 {
		q += 4
		year--
	}

	from := time.Date(year, time.Month(q*3+1), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 3, -1)

	return &domain.Period{
		Type:       domain.PeriodQuarter,
		Offset:     offset,
		From:       from,
		To:         to,
		Dates:      fillDates(from, to),
		Label:      fmt.Sprintf("Q%d %d", q+1, year),
		PrevOffset: offset - 1,
		NextOffset: offset + 1,
	}
}

// generateCustom: явный диапазон [from, to] (по умолчанию [today, today+6]).
// Если from > to, границы меняются местами. Навигация сдвигает окно на длину
// окна, сохраняя её точно.
func (s *Service) generateCustom(today time.Time, fromStr, toStr string) (*domain.Period, error) {
	from := today
	to := today.AddDate(0, 0, domain.DefaultCustomRangeDays-1)

	if fromStr != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, fromStr, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: from=%q", ErrInvalidDate, fromStr)
		}
		from = parsed
	}
	if toStr != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, toStr, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: to=%q", ErrInvalidDate, toStr)
		}
		to = parsed
	}

	if from.After(to) {
		from, to = to, from
	}

	length := daysBetween(from, to) + 1
	if length > s.maxRangeDays {
		return nil, fmt.Errorf("%w: %d days requested, max %d", ErrRangeTooLarge, length, s.maxRangeDays)
	}

	return &domain.Period{
		Type:     domain.PeriodCustom,
		From:     from,
		To:       to,
		Dates:    fillDates(from, to),
		Label:    fmt.Sprintf("%s – %s", from.Format(domain.DateFormat), to.Format(domain.DateFormat)),
		PrevFrom: from.AddDate(0, 0, -length),
		PrevTo:   to.AddDate(0, 0, -length),
		NextFrom: from.AddDate(0, 0, length),
		NextTo:   to.AddDate(0, 0, length),
	}, nil
}

// fillDates возвращает все даты [from, to] включительно, по одной на день
func fillDates(from, to time.Time) []time.Time {
	dates := make([]time.Time, 0, daysBetween(from, to)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// daysBetween количество полных дней между двумя нормализованными датами
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
