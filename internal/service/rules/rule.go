package rules

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// ContextData данные, доступные правилам при выполнении
type ContextData struct {
	Date      time.Time
	Today     time.Time
	UnitID    *int64
	Overlay   *domain.EventOverlay
	Breakdown *domain.Breakdown
	Values    map[string]interface{}
}

// Rule подключаемое правило пост-обработки разрешённого статуса.
// Правила выполняются упорядоченным конвейером: по возрастанию Priority
// (0..100, меньший выполняется раньше), при равенстве — в порядке регистрации.
type Rule interface {
	ID() string
	Name() string
	Description() string
	Priority() int
	Contexts() []string
	Dependencies() []string
	Version() string

	// AppliesTo сообщает, применимо ли правило в данном контексте к данным
	AppliesTo(context string, data *ContextData) bool

	// Execute трансформирует статус. Ошибка приводит к пропуску правила,
	// конвейер продолжает с последнего успешного значения.
	Execute(status domain.CellStatus, data *ContextData) (domain.CellStatus, error)
}

// Meta общие метаданные правила; встраивается в конкретные правила
type Meta struct {
	RuleID          string
	RuleName        string
	RuleDescription string
	RulePriority    int
	RuleContexts    []string
	RuleDeps        []string
	RuleVersion     string
}

func (m Meta) ID() string             { return m.RuleID }
func (m Meta) Name() string           { return m.RuleName }
func (m Meta) Description() string    { return m.RuleDescription }
func (m Meta) Priority() int          { return m.RulePriority }
func (m Meta) Contexts() []string     { return m.RuleContexts }
func (m Meta) Dependencies() []string { return m.RuleDeps }
func (m Meta) Version() string        { return m.RuleVersion }

// HasContext проверяет вхождение контекста в список контекстов правила
func (m Meta) HasContext(context string) bool {
	for _, c := range m.RuleContexts {
		if c == context {
			return true
		}
	}
	return false
}
