package set_cell_status

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модель запроса на установку статуса ячейки.
// UnitID == domain.AllUnits (0) применяет статус ко всем юнитам даты.
type Request struct {
	UnitID int64
	Date   time.Time
	Part   domain.DayPart
	Status domain.CellStatus
	Price  *float64
	Reason *string
}

// Response результат установки статуса
type Response struct {
	UnitID  int64
	Date    time.Time
	Status  domain.CellStatus
	Applied int // количество записанных override (включая маркер при "на все юниты")
}
