package model

// RiskClass is one of the five statutory hazard categories that determine
// the accident-insurance rate.
type RiskClass string

const (
	RiskClassI   RiskClass = "I"
	RiskClassII  RiskClass = "II"
	RiskClassIII RiskClass = "III"
	RiskClassIV  RiskClass = "IV"
	RiskClassV   RiskClass = "V"
)

// RiskClasses lists the valid classes in ascending hazard order.
var RiskClasses = []RiskClass{RiskClassI, RiskClassII, RiskClassIII, RiskClassIV, RiskClassV}

// ParseRiskClass returns the class for s, or false for any other value.
// Undefined classes are rejected at the boundary, never defaulted.
func ParseRiskClass(s string) (RiskClass, bool) {
	switch RiskClass(s) {
	case RiskClassI, RiskClassII, RiskClassIII, RiskClassIV, RiskClassV:
		return RiskClass(s), true
	}
	return "", false
}

// CalculationInput is the full input surface of the forward calculator.
// It is a transient value object, rebuilt for every evaluation.
type CalculationInput struct {
	ContractValue          float64   `json:"contract_value"`
	RiskClass              RiskClass `json:"risk_class"`
	ContractualRiskPercent float64   `json:"contractual_risk_percent"`
}
