package models

import (
	"github.com/jneves25/barber-service/internal/domain"
	"github.com/shopspring/decimal"
)

// Request модели

// SetRuleRequest запрос на установку правила для услуги
type SetRuleRequest struct {
	RuleType string          `json:"ruleType" validate:"required,oneof=percentage fixed_amount"`
	Value    decimal.Decimal `json:"value"`
}

// SetGeneralPercentageRequest запрос на установку общего процента мастера
type SetGeneralPercentageRequest struct {
	GeneralPercentage decimal.Decimal `json:"generalPercentage"`
}

// Response модели

// ResolvedResponse действующая комиссия для пары (мастер, услуга)
type ResolvedResponse struct {
	ProfessionalID int64  `json:"professionalId"`
	ServiceID      int64  `json:"serviceId"`
	RuleType       string `json:"ruleType"`
	Value          string `json:"value"`
	Source         string `json:"source"` // service_rule | general
}

// BreakdownResponse комиссия с суммой для цены услуги
type BreakdownResponse struct {
	ResolvedResponse
	ServiceName  string `json:"serviceName"`
	ServicePrice string `json:"servicePrice"`
	Amount       string `json:"amount"`
}

// RuleWriteResponse результат установки правила.
// Written=false означает, что значение совпало с действующим и запись не выполнялась
type RuleWriteResponse struct {
	Commission ResolvedResponse `json:"commission"`
	Written    bool             `json:"written"`
}

// RuleResponse правило для услуги
type RuleResponse struct {
	ServiceID int64  `json:"serviceId"`
	RuleType  string `json:"ruleType"`
	Value     string `json:"value"`
}

// SettingsResponse все настройки комиссий мастера
type SettingsResponse struct {
	ProfessionalID    int64          `json:"professionalId"`
	GeneralPercentage string         `json:"generalPercentage"`
	Rules             []RuleResponse `json:"rules"`
}

// Методы конвертации

// FromResolved конвертирует действующую комиссию в DTO
func FromResolved(professionalID, serviceID int64, r domain.ResolvedCommission) ResolvedResponse {
	return ResolvedResponse{
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		RuleType:       string(r.RuleType),
		Value:          r.Value.String(),
		Source:         string(r.Source),
	}
}

// FromDomainSettings конвертирует общую конфигурацию и правила в DTO.
// Отсутствующая конфигурация отдается как 0%
func FromDomainSettings(professionalID int64, config *domain.CommissionConfig, rules []*domain.CommissionRule) *SettingsResponse {
	general := decimal.Zero
	if config != nil {
		general = config.GeneralPercentage
	}

	resp := &SettingsResponse{
		ProfessionalID:    professionalID,
		GeneralPercentage: general.String(),
		Rules:             make([]RuleResponse, len(rules)),
	}
	for i, rule := range rules {
		resp.Rules[i] = RuleResponse{
			ServiceID: rule.ServiceID,
			RuleType:  string(rule.RuleType),
			Value:     rule.Value.String(),
		}
	}
	return resp
}
