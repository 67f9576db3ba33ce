package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

func date(s string) time.Time {
	t, err := time.ParseInLocation(domain.DateFormat, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

// assertContiguous проверяет инвариант периода: строго возрастающая
// последовательность дат без пропусков, границы inclusive
func assertContiguous(t *testing.T, p *domain.Period) {
	t.Helper()

	require.NotEmpty(t, p.Dates)
	assert.True(t, p.Dates[0].Equal(p.From), "first date must equal From")
	assert.True(t, p.Dates[len(p.Dates)-1].Equal(p.To), "last date must equal To")

	for i := 1; i < len(p.Dates); i++ {
		expected := p.Dates[i-1].AddDate(0, 0, 1)
		assert.True(t, p.Dates[i].Equal(expected),
			"gap at index %d: %s after %s", i, p.Dates[i], p.Dates[i-1])
	}
}

func TestGenerate_Month(t *testing.T) {
	svc := NewService(90)

	tests := []struct {
		name     string
		today    string
		offset   int
		wantFrom string
		wantTo   string
		wantDays int
	}{
		{
			name:     "current month",
			today:    "2025-01-15",
			offset:   0,
			wantFrom: "2025-01-01",
			wantTo:   "2025-01-31",
			wantDays: 31,
		},
		{
			name:     "next month",
			today:    "2025-01-15",
			offset:   1,
			wantFrom: "2025-02-01",
			wantTo:   "2025-02-28",
			wantDays: 28,
		},
		{
			name:     "previous month across year boundary",
			today:    "2025-01-15",
			offset:   -1,
			wantFrom: "2024-12-01",
			wantTo:   "2024-12-31",
			wantDays: 31,
		},
		{
			name:     "leap february",
			today:    "2024-01-10",
			offset:   1,
			wantFrom: "2024-02-01",
			wantTo:   "2024-02-29",
			wantDays: 29,
		},
		{
			name:     "twelve months forward wraps year",
			today:    "2025-03-20",
			offset:   12,
			wantFrom: "2026-03-01",
			wantTo:   "2026-03-31",
			wantDays: 31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := svc.Generate(Request{
				Type:   domain.PeriodMonth,
				Offset: tt.offset,
				Today:  date(tt.today),
			})
			require.NoError(t, err)

			assert.True(t, p.From.Equal(date(tt.wantFrom)))
			assert.True(t, p.To.Equal(date(tt.wantTo)))
			assert.Len(t, p.Dates, tt.wantDays)
			assert.Equal(t, tt.offset-1, p.PrevOffset)
			assert.Equal(t, tt.offset+1, p.NextOffset)
			assertContiguous(t, p)
		})
	}
}

func TestGenerate_Quarter(t *testing.T) {
	svc := NewService(90)

	tests := []struct {
		name      string
		today     string
		offset    int
		wantFrom  string
		wantTo    string
		wantLabel string
	}{
		{
			name:      "current quarter",
			today:     "2025-02-15",
			offset:    0,
			wantFrom:  "2025-01-01",
			wantTo:    "2025-03-31",
			wantLabel: "Q1 2025",
		},
		{
			name:      "previous quarter wraps year back",
			today:     "2025-02-15",
			offset:    -1,
			wantFrom:  "2024-10-01",
			wantTo:    "2024-12-31",
			wantLabel: "Q4 2024",
		},
		{
			name:      "four quarters forward wraps year",
			today:     "2025-05-10",
			offset:    4,
			wantFrom:  "2026-04-01",
			wantTo:    "2026-06-30",
			wantLabel: "Q2 2026",
		},
		{
			name:      "five quarters back",
			today:     "2025-02-15",
			offset:    -5,
			wantFrom:  "2023-10-01",
			wantTo:    "2023-12-31",
			wantLabel: "Q4 2023",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := svc.Generate(Request{
				Type:   domain.PeriodQuarter,
				Offset: tt.offset,
				Today:  date(tt.today),
			})
			require.NoError(t, err)

			assert.True(t, p.From.Equal(date(tt.wantFrom)))
			assert.True(t, p.To.Equal(date(tt.wantTo)))
			assert.Equal(t, tt.wantLabel, p.Label)
			assertContiguous(t, p)
		})
	}
}

func TestGenerate_CustomDefaults(t *testing.T) {
	svc := NewService(90)

	p, err := svc.Generate(Request{
		Type:  domain.PeriodCustom,
		Today: date("2025-06-01"),
	})
	require.NoError(t, err)

	assert.True(t, p.From.Equal(date("2025-06-01")))
	assert.True(t, p.To.Equal(date("2025-06-07")))
	assert.Len(t, p.Dates, domain.DefaultCustomRangeDays)
	assertContiguous(t, p)
}

func TestGenerate_CustomSwapsReversedBounds(t *testing.T) {
	svc := NewService(90)

	p, err := svc.Generate(Request{
		Type:       domain.PeriodCustom,
		CustomFrom: "2025-06-10",
		CustomTo:   "2025-06-03",
		Today:      date("2025-06-01"),
	})
	require.NoError(t, err)

	assert.True(t, p.From.Equal(date("2025-06-03")))
	assert.True(t, p.To.Equal(date("2025-06-10")))
	assert.Len(t, p.Dates, 8)
	assertContiguous(t, p)
}

func TestGenerate_CustomPagination(t *testing.T) {
	svc := NewService(90)

	p, err := svc.Generate(Request{
		Type:       domain.PeriodCustom,
		CustomFrom: "2025-06-01",
		CustomTo:   "2025-06-10",
		Today:      date("2025-05-20"),
	})
	require.NoError(t, err)

	// Навигация сдвигает окно ровно на его длину и сохраняет её
	assert.True(t, p.NextFrom.Equal(date("2025-06-11")))
	assert.True(t, p.NextTo.Equal(date("2025-06-20")))
	assert.True(t, p.PrevFrom.Equal(date("2025-05-22")))
	assert.True(t, p.PrevTo.Equal(date("2025-05-31")))

	next, err := svc.Generate(Request{
		Type:       domain.PeriodCustom,
		CustomFrom: p.NextFrom.Format(domain.DateFormat),
		CustomTo:   p.NextTo.Format(domain.DateFormat),
		Today:      date("2025-05-20"),
	})
	require.NoError(t, err)
	assert.Equal(t, p.SpanDays(), next.SpanDays())

	// Prev следующей страницы возвращает исходное окно
	assert.True(t, next.PrevFrom.Equal(p.From))
	assert.True(t, next.PrevTo.Equal(p.To))
}

func TestGenerate_CustomRangeTooLarge(t *testing.T) {
	svc := NewService(90)

	_, err := svc.Generate(Request{
		Type:       domain.PeriodCustom,
		CustomFrom: "2025-01-01",
		CustomTo:   "2025-04-01", // 91 день
		Today:      date("2025-01-01"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRangeTooLarge)
}

func TestGenerate_CustomInvalidDate(t *testing.T) {
	svc := NewService(90)

	_, err := svc.Generate(Request{
		Type:       domain.PeriodCustom,
		CustomFrom: "01.06.2025",
		Today:      date("2025-06-01"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestGenerate_InvalidType(t *testing.T) {
	svc := NewService(90)

	_, err := svc.Generate(Request{Type: "week", Today: date("2025-06-01")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPeriodType)
}
