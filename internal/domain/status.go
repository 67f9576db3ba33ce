package domain

// CellStatus represents the availability status of a calendar cell
type CellStatus string

const (
	StatusFree     CellStatus = "free"
	StatusBooked   CellStatus = "booked"
	StatusPending  CellStatus = "pending"
	StatusExternal CellStatus = "external"
	StatusBlocked  CellStatus = "blocked"
	StatusSpecial  CellStatus = "special"
	StatusPrivate  CellStatus = "private"
)

// DayPart represents the part of the day a cell status applies to.
// Aggregation currently always operates on PartFull; the half-day parts
// exist for sub-day granularity in the data model.
type DayPart string

const (
	PartFull       DayPart = "full"
	PartFirstHalf  DayPart = "first_half"
	PartSecondHalf DayPart = "second_half"
)

// OccupyingStatuses are the statuses that make a unit unavailable on a date.
// Used when counting available units for day-level aggregation.
var OccupyingStatuses = []CellStatus{
	StatusBooked,
	StatusPending,
	StatusBlocked,
	StatusExternal,
}

// AllStatuses lists every valid cell status
var AllStatuses = []CellStatus{
	StatusFree,
	StatusBooked,
	StatusPending,
	StatusExternal,
	StatusBlocked,
	StatusSpecial,
	StatusPrivate,
}

// IsValid returns true if the status is one of the known cell statuses
func (s CellStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Occupies returns true if the status makes a unit unavailable for booking
func (s CellStatus) Occupies() bool {
	for _, occ := range OccupyingStatuses {
		if s == occ {
			return true
		}
	}
	return false
}

// IsValid returns true if the part is one of the known day parts
func (p DayPart) IsValid() bool {
	return p == PartFull || p == PartFirstHalf || p == PartSecondHalf
}
