package model

// CalculationRequest is the wire form of a forward calculation.
// RiskClass arrives as a raw string and is parsed at the boundary.
type CalculationRequest struct {
	ContractValue          float64 `json:"contract_value"`
	RiskClass              string  `json:"risk_class"`
	ContractualRiskPercent float64 `json:"contractual_risk_percent"`
	IncludeReport          bool    `json:"include_report,omitempty"`
}

// SimulationRequest carries the negotiation target together with the
// inputs of the calculation it is based on. The engine recomputes the
// forward result and derives the cost ratio from it.
type SimulationRequest struct {
	DesiredNetIncome       float64 `json:"desired_net_income"`
	ContractValue          float64 `json:"contract_value"`
	RiskClass              string  `json:"risk_class"`
	ContractualRiskPercent float64 `json:"contractual_risk_percent"`
	IncludeReport          bool    `json:"include_report,omitempty"`
}
