package roster

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// UnitDefaults значения по умолчанию для новых юнитов при синхронизации
type UnitDefaults struct {
	TypeLabel string
}

// Sync приводит состав юнитов к целевому количеству.
// Рост: добавляются юниты с номерами current+1 .. target, наследующие
// параметры из defaults. Сокращение: удаляются юниты с наибольшими
// номерами (обрезка хвоста), нижние номера остаются стабильными.
// Идемпотентна при target == len(current).
func Sync(current []domain.Unit, targetCount int, defaults UnitDefaults) []domain.Unit {
	if targetCount < 0 {
		targetCount = 0
	}

	typeLabel := defaults.TypeLabel
	if typeLabel == "" {
		typeLabel = domain.DefaultUnitTypeLabel
	}

	updated := make([]domain.Unit, len(current))
	copy(updated, current)
	sort.Slice(updated, func(i, j int) bool { return updated[i].ID < updated[j].ID })

	switch {
	case targetCount > len(updated):
		for i := len(updated) + 1; i <= targetCount; i++ {
			updated = append(updated, domain.Unit{
				ID:           int64(i),
				DisplayLabel: fmt.Sprintf("%s %d", typeLabel, i),
				Type:         typeLabel,
			})
		}
	case targetCount < len(updated):
		updated = updated[:targetCount]
	}

	return updated
}
