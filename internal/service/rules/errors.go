package rules

import "errors"

var (
	// ErrDuplicateRule возвращается при повторной регистрации правила с тем же ID
	ErrDuplicateRule = errors.New("rules: rule already registered")

	// ErrInvalidPriority возвращается при приоритете вне диапазона [0, 100]
	ErrInvalidPriority = errors.New("rules: priority out of range")

	// ErrRuleNotFound возвращается, когда правило с таким ID не зарегистрировано
	ErrRuleNotFound = errors.New("rules: rule not found")

	// ErrStore возвращается при ошибке персистентности флагов включения
	ErrStore = errors.New("rules: enablement store error")
)
