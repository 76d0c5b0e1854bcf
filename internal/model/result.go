package model

// CalculationResult holds every figure derived from a CalculationInput.
// All monetary values are exact engine outputs; rounding and currency
// formatting happen in the presentation layer.
type CalculationResult struct {
	ContractValue            float64 `json:"contract_value"`
	BaseIncome               float64 `json:"base_income"`
	Health                   float64 `json:"health"`
	Pension                  float64 `json:"pension"`
	AccidentInsurance        float64 `json:"accident_insurance"`
	VacationProvision        float64 `json:"vacation_provision"`
	SeveranceProvision       float64 `json:"severance_provision"`
	ContractualRiskProvision float64 `json:"contractual_risk_provision"`
	TotalSocialSecurity      float64 `json:"total_social_security"`
	TotalProvisions          float64 `json:"total_provisions"`
	TotalCosts               float64 `json:"total_costs"`
	NetIncome                float64 `json:"net_income"`
	NonDisposablePercent     float64 `json:"non_disposable_percent"`
}

// SimulationResult is the output of the negotiation simulator: the gross
// contract value required to reach a target net income under the current
// cost ratio, and how far that is from the current contract.
type SimulationResult struct {
	RequiredGrossContractValue float64 `json:"required_gross_contract_value"`
	DifferenceFromCurrent      float64 `json:"difference_from_current_contract_value"`
	CostFactor                 float64 `json:"cost_factor"`
}
