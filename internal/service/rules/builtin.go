package rules

import "github.com/m04kA/SMC-CalendarService/internal/domain"

// ContextDisplay контекст отображения календаря
const ContextDisplay = "display"

// ContextValidation контекст проверки перед записью
const ContextValidation = "validation"

// PrivateEventRule помечает свободные дни с приватным событием статусом private
type PrivateEventRule struct {
	Meta
}

// NewPrivateEventRule создает правило приватных событий
func NewPrivateEventRule() *PrivateEventRule {
	return &PrivateEventRule{Meta: Meta{
		RuleID:          "private_event",
		RuleName:        "Private event",
		RuleDescription: "Marks free days annotated as private events",
		RulePriority:    10,
		RuleContexts:    []string{ContextDisplay},
		RuleVersion:     "1.0",
	}}
}

// AppliesTo применимо в контексте отображения к датам с приватным событием
func (r *PrivateEventRule) AppliesTo(context string, data *ContextData) bool {
	return r.HasContext(context) && data != nil && data.Overlay != nil && data.Overlay.IsPrivateEvent
}

// Execute переводит свободный день в private; занятые дни не маскируются
func (r *PrivateEventRule) Execute(status domain.CellStatus, _ *ContextData) (domain.CellStatus, error) {
	if status == domain.StatusFree {
		return domain.StatusPrivate, nil
	}
	return status, nil
}

// SpecialPricingRule помечает свободные дни со специальным ценообразованием
type SpecialPricingRule struct {
	Meta
}

// NewSpecialPricingRule создает правило специального ценообразования
func NewSpecialPricingRule() *SpecialPricingRule {
	return &SpecialPricingRule{Meta: Meta{
		RuleID:          "special_pricing",
		RuleName:        "Special pricing",
		RuleDescription: "Marks free days annotated with special pricing",
		RulePriority:    20,
		RuleContexts:    []string{ContextDisplay},
		RuleVersion:     "1.0",
	}}
}

// AppliesTo применимо в контексте отображения к датам со спец-ценой
func (r *SpecialPricingRule) AppliesTo(context string, data *ContextData) bool {
	return r.HasContext(context) && data != nil && data.Overlay != nil && data.Overlay.IsSpecialPricing
}

// Execute переводит свободный день в special
func (r *SpecialPricingRule) Execute(status domain.CellStatus, _ *ContextData) (domain.CellStatus, error) {
	if status == domain.StatusFree {
		return domain.StatusSpecial, nil
	}
	return status, nil
}
