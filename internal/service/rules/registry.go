package rules

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/storage/kvstore"
)

// EnabledPrefix префикс ключей персистентных флагов включения правил
const EnabledPrefix = "rule_enabled:"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type registered struct {
	rule  Rule
	order int // порядок регистрации, разрешает ничьи по приоритету
}

// Registry конвейер правил: явный упорядоченный in-process список
// (не строковый глобальный реестр событий). Потокобезопасен.
type Registry struct {
	store  kvstore.Store // персистентность флагов включения; может быть nil
	logger Logger

	mu       sync.RWMutex
	rules    []registered
	disabled map[string]bool
}

// NewRegistry создает пустой реестр правил.
// store может быть nil: тогда флаги включения живут только в памяти.
func NewRegistry(store kvstore.Store, logger Logger) *Registry {
	return &Registry{
		store:    store,
		logger:   logger,
		disabled: make(map[string]bool),
	}
}

// Register регистрирует правило. Порядок регистрации запоминается и
// разрешает ничьи при равных приоритетах.
func (r *Registry) Register(rule Rule) error {
	if rule.Priority() < 0 || rule.Priority() > 100 {
		return fmt.Errorf("%w: rule %q priority %d", ErrInvalidPriority, rule.ID(), rule.Priority())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, reg := range r.rules {
		if reg.rule.ID() == rule.ID() {
			return fmt.Errorf("%w: %q", ErrDuplicateRule, rule.ID())
		}
	}

	r.rules = append(r.rules, registered{rule: rule, order: len(r.rules)})
	return nil
}

// LoadState загружает персистентные флаги включения из хранилища
func (r *Registry) LoadState(ctx context.Context) error {
	if r.store == nil {
		return nil
	}

	values, err := r.store.ListByPrefix(ctx, EnabledPrefix)
	if err != nil {
		return fmt.Errorf("%w: LoadState: %v", ErrStore, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for key, value := range values {
		id := strings.TrimPrefix(key, EnabledPrefix)
		var flag struct {
			Enabled bool `json:"enabled"`
		}
		if err := json.Unmarshal(value, &flag); err != nil {
			r.logger.Warn("LoadState: skipping malformed flag for rule %q: %v", id, err)
			continue
		}
		r.disabled[id] = !flag.Enabled
	}

	return nil
}

// SetEnabled включает или выключает правило и персистирует флаг
func (r *Registry) SetEnabled(ctx context.Context, id string, enabled bool) error {
	r.mu.Lock()
	found := false
	for _, reg := range r.rules {
		if reg.rule.ID() == id {
			found = true
			break
		}
	}
	if !found {
		r.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrRuleNotFound, id)
	}
	r.disabled[id] = !enabled
	r.mu.Unlock()

	if r.store == nil {
		return nil
	}

	value, err := json.Marshal(struct {
		Enabled bool `json:"enabled"`
	}{Enabled: enabled})
	if err != nil {
		return fmt.Errorf("%w: SetEnabled: %v", ErrStore, err)
	}
	if err := r.store.Set(ctx, EnabledPrefix+id, value); err != nil {
		return fmt.Errorf("%w: SetEnabled: %v", ErrStore, err)
	}

	return nil
}

// IsEnabled возвращает true, если правило включено (по умолчанию включено)
func (r *Registry) IsEnabled(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return !r.disabled[id]
}

// Rules возвращает все зарегистрированные правила в порядке регистрации
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.rules))
	for _, reg := range r.rules {
		result = append(result, reg.rule)
	}
	return result
}

// Apply прогоняет статус через конвейер правил контекста.
// Отбираются включённые правила, применимые к контексту, с выполненными
// зависимостями; сортировка по приоритету (ничьи — порядок регистрации);
// последовательный fold. Ошибка правила логируется, правило пропускается,
// fold продолжается с последнего успешного значения: разрешение всегда
// завершается валидным статусом и никогда не возвращает ошибку.
//
// Невыполненная зависимость (незарегистрированная или выключенная) приводит
// к пропуску зависимого правила на этапе отбора. Зависимости не влияют на
// порядок выполнения: порядок определяется только приоритетом.
func (r *Registry) Apply(_ context.Context, ruleContext string, status domain.CellStatus, data *ContextData) domain.CellStatus {
	r.mu.RLock()
	selected := make([]registered, 0, len(r.rules))
	for _, reg := range r.rules {
		if r.disabled[reg.rule.ID()] {
			continue
		}
		if !r.dependenciesMetLocked(reg.rule) {
			r.logger.Warn("Apply: rule %q skipped, unmet dependencies %v", reg.rule.ID(), reg.rule.Dependencies())
			continue
		}
		if !reg.rule.AppliesTo(ruleContext, data) {
			continue
		}
		selected = append(selected, reg)
	}
	r.mu.RUnlock()

	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].rule.Priority() != selected[j].rule.Priority() {
			return selected[i].rule.Priority() < selected[j].rule.Priority()
		}
		return selected[i].order < selected[j].order
	})

	current := status
	for _, reg := range selected {
		next, err := reg.rule.Execute(current, data)
		if err != nil {
			r.logger.Error("Apply: rule %q failed, skipping: %v", reg.rule.ID(), err)
			continue
		}
		if !next.IsValid() {
			r.logger.Error("Apply: rule %q produced invalid status %q, skipping", reg.rule.ID(), next)
			continue
		}
		current = next
	}

	return current
}

// dependenciesMetLocked проверяет, что все зависимости правила
// зарегистрированы и включены. Вызывается под r.mu.
func (r *Registry) dependenciesMetLocked(rule Rule) bool {
	for _, dep := range rule.Dependencies() {
		found := false
		for _, reg := range r.rules {
			if reg.rule.ID() == dep {
				found = true
				break
			}
		}
		if !found || r.disabled[dep] {
			return false
		}
	}
	return true
}
