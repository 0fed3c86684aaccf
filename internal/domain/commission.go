package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RuleType is how a commission value is interpreted
type RuleType string

const (
	RuleTypePercentage  RuleType = "percentage"
	RuleTypeFixedAmount RuleType = "fixed_amount"
)

// IsValid returns true for known rule types
func (t RuleType) IsValid() bool {
	return t == RuleTypePercentage || t == RuleTypeFixedAmount
}

// CommissionSource tells where a resolved commission came from
type CommissionSource string

const (
	SourceServiceRule CommissionSource = "service_rule"
	SourceGeneral     CommissionSource = "general"
)

var hundred = decimal.NewFromInt(PercentageScale)

// PercentageScale percentages are stored as 0..100
const PercentageScale = 100

// CommissionConfig is the professional's fallback percentage
type CommissionConfig struct {
	ID                int64
	ProfessionalID    int64
	GeneralPercentage decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CommissionRule overrides the general config for one service
type CommissionRule struct {
	ID             int64
	ProfessionalID int64
	ServiceID      int64
	RuleType       RuleType
	Value          decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ResolvedCommission is the commission that applies to (professional, service)
type ResolvedCommission struct {
	RuleType RuleType
	Value    decimal.Decimal
	Source   CommissionSource
}

// ResolveCommission picks the per-service rule when present, else the general percentage.
// A professional without any config resolves to 0%.
func ResolveCommission(config *CommissionConfig, rule *CommissionRule) ResolvedCommission {
	if rule != nil {
		return ResolvedCommission{
			RuleType: rule.RuleType,
			Value:    rule.Value,
			Source:   SourceServiceRule,
		}
	}

	value := decimal.Zero
	if config != nil {
		value = config.GeneralPercentage
	}
	return ResolvedCommission{
		RuleType: RuleTypePercentage,
		Value:    value,
		Source:   SourceGeneral,
	}
}

// Amount returns the commission for a service priced servicePrice
func (r ResolvedCommission) Amount(servicePrice decimal.Decimal) decimal.Decimal {
	return ComputeAmount(r.RuleType, r.Value, servicePrice)
}

// Matches returns true if the resolved commission already has this type and value
func (r ResolvedCommission) Matches(ruleType RuleType, value decimal.Decimal) bool {
	return r.RuleType == ruleType && r.Value.Equal(value)
}

// ComputeAmount: Percentage -> price * value / 100; FixedAmount -> value
func ComputeAmount(ruleType RuleType, value, servicePrice decimal.Decimal) decimal.Decimal {
	if ruleType == RuleTypeFixedAmount {
		return value
	}
	return servicePrice.Mul(value).Div(hundred)
}

// ValidateRuleValue checks a rule value before it is persisted. Values are never clamped.
func ValidateRuleValue(ruleType RuleType, value, servicePrice decimal.Decimal) error {
	switch ruleType {
	case RuleTypePercentage:
		return ValidatePercentage(value)
	case RuleTypeFixedAmount:
		if value.IsNegative() || value.GreaterThan(servicePrice) {
			return fmt.Errorf("%w: got %s, service price %s", ErrInvalidFixedAmount, value, servicePrice)
		}
		if !HasMoneyScale(value) {
			return fmt.Errorf("%w: at most %d decimal places, got %s", ErrInvalidFixedAmount, MoneyScale, value)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRuleType, ruleType)
	}
}

// ValidatePercentage checks 0 <= value <= 100
func ValidatePercentage(value decimal.Decimal) error {
	if value.IsNegative() || value.GreaterThan(hundred) {
		return fmt.Errorf("%w: got %s", ErrInvalidPercentage, value)
	}
	if !HasMoneyScale(value) {
		return fmt.Errorf("%w: at most %d decimal places, got %s", ErrInvalidPercentage, MoneyScale, value)
	}
	return nil
}

// HasMoneyScale reports whether value is stored without rounding.
// Trailing zeros do not count: 12.300 is fine, 12.345 is not.
func HasMoneyScale(value decimal.Decimal) bool {
	return value.Equal(value.Truncate(MoneyScale))
}
