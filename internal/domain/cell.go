package domain

import "time"

// AllUnits is the sentinel unit ID for an override that applies to every
// currently known unit on a date.
const AllUnits int64 = 0

// CellStatusRecord represents a manual status override for a single
// (unit, date, part) cell. At most one record exists per key.
type CellStatusRecord struct {
	UnitID    int64
	Date      time.Time // date only, normalized to midnight UTC
	Part      DayPart
	Status    CellStatus
	Price     *float64
	Reason    *string
	UpdatedAt time.Time
}

// IsAllUnits returns true if the record is an all-units override
func (r *CellStatusRecord) IsAllUnits() bool {
	return r.UnitID == AllUnits
}

// Unit represents a single bookable accommodation inventory item.
// The roster is owned by the accommodation-management side; the calendar
// engine treats it as read-mostly.
type Unit struct {
	ID           int64
	DisplayLabel string
	Type         string
}

// UnitDayDetail is the per-unit line of a day breakdown
type UnitDayDetail struct {
	Unit   Unit
	Status CellStatus
	Price  *float64
	Reason *string
}

// Breakdown is the full per-unit status distribution for one date
type Breakdown struct {
	Date         time.Time
	Total        int
	Available    int
	StatusCounts map[CellStatus]int
	Units        []UnitDayDetail
}
