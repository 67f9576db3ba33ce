package rules

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/storage/kvstore"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// stubRule настраиваемое правило для тестов конвейера
type stubRule struct {
	Meta
	applies bool
	execute func(status domain.CellStatus, data *ContextData) (domain.CellStatus, error)
}

func (r *stubRule) AppliesTo(context string, _ *ContextData) bool {
	return r.HasContext(context) && r.applies
}

func (r *stubRule) Execute(status domain.CellStatus, data *ContextData) (domain.CellStatus, error) {
	return r.execute(status, data)
}

func newStubRule(id string, priority int, transform domain.CellStatus) *stubRule {
	return &stubRule{
		Meta: Meta{
			RuleID:       id,
			RuleName:     id,
			RulePriority: priority,
			RuleContexts: []string{ContextDisplay},
			RuleVersion:  "1.0",
		},
		applies: true,
		execute: func(domain.CellStatus, *ContextData) (domain.CellStatus, error) {
			return transform, nil
		},
	}
}

func TestRegister_DuplicateID(t *testing.T) {
	reg := NewRegistry(nil, nopLogger{})

	require.NoError(t, reg.Register(newStubRule("a", 10, domain.StatusPrivate)))
	err := reg.Register(newStubRule("a", 20, domain.StatusSpecial))
	assert.ErrorIs(t, err, ErrDuplicateRule)
}

func TestRegister_PriorityOutOfRange(t *testing.T) {
	reg := NewRegistry(nil, nopLogger{})

	assert.ErrorIs(t, reg.Register(newStubRule("low", -1, domain.StatusFree)), ErrInvalidPriority)
	assert.ErrorIs(t, reg.Register(newStubRule("high", 101, domain.StatusFree)), ErrInvalidPriority)
}

func TestApply_PriorityOrder(t *testing.T) {
	reg := NewRegistry(nil, nopLogger{})

	// Регистрируем в обратном порядке приоритетов: выполняется
	// сначала priority 10, затем 20 — побеждает последний
	require.NoError(t, reg.Register(newStubRule("second", 20, domain.StatusSpecial)))
	require.NoError(t, reg.Register(newStubRule("first", 10, domain.StatusPrivate)))

	got := reg.Apply(context.Background(), ContextDisplay, domain.StatusFree, &ContextData{})
	assert.Equal(t, domain.StatusSpecial, got)
}

func TestApply_EqualPriorityUsesRegistrationOrder(t *testing.T) {
	reg := NewRegistry(nil, nopLogger{})

	require.NoError(t, reg.Register(newStubRule("a", 10, domain.StatusPrivate)))
	require.NoError(t, reg.Register(newStubRule("b", 10, domain.StatusSpecial)))

	got := reg.Apply(context.Background(), ContextDisplay, domain.StatusFree, &ContextData{})
	assert.Equal(t, domain.StatusSpecial, got)
}

func TestApply_ContextFilter(t *testing.T) {
	reg := NewRegistry(nil, nopLogger{})

	displayRule := newStubRule("display_only", 10, domain.StatusPrivate)
	validationRule := newStubRule("validation_only", 20, domain.StatusBlocked)
	validationRule.RuleContexts = []string{ContextValidation}

	require.NoError(t, reg.Register(displayRule))
	require.NoError(t, reg.Register(validationRule))

	got := reg.Apply(context.Background(), ContextDisplay, domain.StatusFree, &ContextData{})
	assert.Equal(t, domain.StatusPrivate, got)
}

func TestApply_DisabledRuleSkipped(t *testing.T) {
	reg := NewRegistry(nil, nopLogger{})

	require.NoError(t, reg.Register(newStubRule("a", 10, domain.StatusPrivate)))
	require.NoError(t, reg.SetEnabled(context.Background(), "a", false))

	got := reg.Apply(context.Background(), ContextDisplay, domain.StatusFree, &ContextData{})
	assert.Equal(t, domain.StatusFree, got)

	require.NoError(t, reg.SetEnabled(context.Background(), "a", true))
	got = reg.Apply(context.Background(), ContextDisplay, domain.StatusFree, &ContextData{})
	assert.Equal(t, domain.StatusPrivate, got)
}

func TestApply_UnmetDependencySkipsRule(t *testing.T) {
	reg := NewRegistry(nil, nopLogger{})

	dependent := newStubRule("dependent", 10, domain.StatusPrivate)
	dependent.RuleDeps = []string{"missing"}
	require.NoError(t, reg.Register(dependent))

	// Зависимость не зарегистрирована: правило пропускается на отборе
	got := reg.Apply(context.Background(), ContextDisplay, domain.StatusFree, &ContextData{})
	assert.Equal(t, domain.StatusFree, got)

	// После регистрации зависимости правило выполняется
	dep := newStubRule("missing", 5, domain.StatusFree)
	require.NoError(t, reg.Register(dep))

	got = reg.Apply(context.Background(), ContextDisplay, domain.StatusFree, &ContextData{})
	assert.Equal(t, domain.StatusPrivate, got)

	// Выключенная зависимость снова выключает зависимое правило
	require.NoError(t, reg.SetEnabled(context.Background(), "missing", false))
	got = reg.Apply(context.Background(), ContextDisplay, domain.StatusFree, &ContextData{})
	assert.Equal(t, domain.StatusFree, got)
}

func TestApply_FailingRuleSkipped(t *testing.T) {
	reg := NewRegistry(nil, nopLogger{})

	failing := newStubRule("failing", 10, domain.StatusFree)
	failing.execute = func(domain.CellStatus, *ContextData) (domain.CellStatus, error) {
		return "", errors.New("boom")
	}
	require.NoError(t, reg.Register(failing))
	require.NoError(t, reg.Register(newStubRule("working", 20, domain.StatusSpecial)))

	// Ошибка правила не прерывает конвейер: fold продолжается
	// с последнего успешного значения
	got := reg.Apply(context.Background(), ContextDisplay, domain.StatusFree, &ContextData{})
	assert.Equal(t, domain.StatusSpecial, got)
}

func TestApply_InvalidStatusSkipped(t *testing.T) {
	reg := NewRegistry(nil, nopLogger{})

	invalid := newStubRule("invalid", 10, domain.CellStatus("nonsense"))
	require.NoError(t, reg.Register(invalid))

	got := reg.Apply(context.Background(), ContextDisplay, domain.StatusBooked, &ContextData{})
	assert.Equal(t, domain.StatusBooked, got)
}

func TestSetEnabled_UnknownRule(t *testing.T) {
	reg := NewRegistry(nil, nopLogger{})

	err := reg.SetEnabled(context.Background(), "ghost", false)
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestEnablementPersistsAcrossRegistries(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()

	reg := NewRegistry(store, nopLogger{})
	require.NoError(t, reg.Register(newStubRule("a", 10, domain.StatusPrivate)))
	require.NoError(t, reg.SetEnabled(ctx, "a", false))

	// Новый реестр над тем же хранилищем: флаг восстанавливается
	fresh := NewRegistry(store, nopLogger{})
	require.NoError(t, fresh.Register(newStubRule("a", 10, domain.StatusPrivate)))
	require.NoError(t, fresh.LoadState(ctx))

	assert.False(t, fresh.IsEnabled("a"))
	got := fresh.Apply(ctx, ContextDisplay, domain.StatusFree, &ContextData{})
	assert.Equal(t, domain.StatusFree, got)
}

func TestBuiltinRules(t *testing.T) {
	reg := NewRegistry(nil, nopLogger{})
	require.NoError(t, reg.Register(NewPrivateEventRule()))
	require.NoError(t, reg.Register(NewSpecialPricingRule()))

	ctx := context.Background()

	tests := []struct {
		name    string
		status  domain.CellStatus
		overlay *domain.EventOverlay
		want    domain.CellStatus
	}{
		{
			name:    "private event marks free day",
			status:  domain.StatusFree,
			overlay: &domain.EventOverlay{IsPrivateEvent: true},
			want:    domain.StatusPrivate,
		},
		{
			name:    "special pricing marks free day",
			status:  domain.StatusFree,
			overlay: &domain.EventOverlay{IsSpecialPricing: true},
			want:    domain.StatusSpecial,
		},
		{
			name:    "booked day never masked by overlay",
			status:  domain.StatusBooked,
			overlay: &domain.EventOverlay{IsPrivateEvent: true},
			want:    domain.StatusBooked,
		},
		{
			name:   "no overlay leaves status untouched",
			status: domain.StatusFree,
			want:   domain.StatusFree,
		},
		{
			// private выполняется раньше (priority 10) и переводит день
			// из free; special уже не трансформирует занятый статус
			name:   "both flags set, private wins",
			status: domain.StatusFree,
			overlay: &domain.EventOverlay{
				IsPrivateEvent:   true,
				IsSpecialPricing: true,
			},
			want: domain.StatusPrivate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reg.Apply(ctx, ContextDisplay, tt.status, &ContextData{Overlay: tt.overlay})
			assert.Equal(t, tt.want, got)
		})
	}
}
