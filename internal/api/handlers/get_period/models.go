package get_period

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// PeriodResponse HTTP response model
type PeriodResponse struct {
	Type       string   `json:"type"`
	Offset     int      `json:"offset"`
	From       string   `json:"from"`
	To         string   `json:"to"`
	Label      string   `json:"label"`
	Dates      []string `json:"dates"`
	PrevOffset int      `json:"prevOffset,omitempty"`
	NextOffset int      `json:"nextOffset,omitempty"`
	PrevFrom   string   `json:"prevFrom,omitempty"`
	PrevTo     string   `json:"prevTo,omitempty"`
	NextFrom   string   `json:"nextFrom,omitempty"`
	NextTo     string   `json:"nextTo,omitempty"`
}

// FromDomainPeriod конвертирует domain.Period в HTTP response
func FromDomainPeriod(p *domain.Period) *PeriodResponse {
	dates := make([]string, len(p.Dates))
	for i, d := range p.Dates {
		dates[i] = d.Format(domain.DateFormat)
	}

	resp := &PeriodResponse{
		Type:   string(p.Type),
		Offset: p.Offset,
		From:   p.From.Format(domain.DateFormat),
		To:     p.To.Format(domain.DateFormat),
		Label:  p.Label,
		Dates:  dates,
	}

	if p.Type == domain.PeriodCustom {
		resp.PrevFrom = p.PrevFrom.Format(domain.DateFormat)
		resp.PrevTo = p.PrevTo.Format(domain.DateFormat)
		resp.NextFrom = p.NextFrom.Format(domain.DateFormat)
		resp.NextTo = p.NextTo.Format(domain.DateFormat)
	} else {
		resp.PrevOffset = p.PrevOffset
		resp.NextOffset = p.NextOffset
	}

	return resp
}
