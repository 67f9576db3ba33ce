package domain

// Default configuration values
const (
	DefaultUnitCount       = 1
	DefaultUnitTypeLabel   = "Apartment"
	DefaultCustomRangeDays = 7
	DefaultEarlyBirdDays   = 30
	DefaultMaxRangeDays    = 90 // cap for caller-supplied date windows
)

// Business validation constants
const (
	MinUnitCount       = 0
	MaxUnitCount       = 500
	MaxReasonLength    = 500
	MaxEventNameLength = 200
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultStatusColors maps each cell status to its display color.
// Overridable through the settings collaborator.
var DefaultStatusColors = map[CellStatus]string{
	StatusFree:     "#90ee90",
	StatusBooked:   "#ff4c4c",
	StatusPending:  "#ffd700",
	StatusExternal: "#b0b0b0",
	StatusBlocked:  "#808080",
	StatusSpecial:  "#ffa500",
	StatusPrivate:  "#9370db",
}
