package engine

import (
	"fmt"

	"contractor-engine/internal/model"
	"contractor-engine/internal/rates"
)

// Calculator derives take-home figures from a contract value under a
// fixed rate schedule. It holds no mutable state: every call is an
// independent pure evaluation, safe for concurrent use.
type Calculator struct {
	schedule rates.Schedule
}

func New(schedule rates.Schedule) *Calculator {
	return &Calculator{schedule: schedule}
}

// Schedule returns the schedule the calculator was built with.
func (c *Calculator) Schedule() rates.Schedule {
	return c.schedule
}

// Compute derives every monetary figure for the given input.
//
// Invalid input is rejected, not repaired: a negative contract value and
// a contractual risk percent outside [0,20] are errors even though the
// input layer normally clamps them first. A zero contract value is valid
// and yields an all-zero result, including a zero non-disposable percent.
func (c *Calculator) Compute(in model.CalculationInput) (model.CalculationResult, error) {
	if in.ContractValue < 0 {
		return model.CalculationResult{}, &model.InputError{
			Code:   model.CodeNegativeContractValue,
			Reason: fmt.Sprintf("contract value %v is negative", in.ContractValue),
		}
	}
	if in.ContractualRiskPercent < 0 || in.ContractualRiskPercent > 20 {
		return model.CalculationResult{}, &model.InputError{
			Code:   model.CodeRiskPercentOutOfRange,
			Reason: fmt.Sprintf("contractual risk percent %v is outside [0,20]", in.ContractualRiskPercent),
		}
	}

	accidentRate, err := c.schedule.RateFor(in.RiskClass)
	if err != nil {
		return model.CalculationResult{}, err
	}

	if in.ContractValue == 0 {
		// Explicit zero branch: keeps non_disposable_percent at 0
		// instead of dividing by zero.
		return model.CalculationResult{}, nil
	}

	s := c.schedule
	res := model.CalculationResult{ContractValue: in.ContractValue}

	res.BaseIncome = in.ContractValue * s.BaseIncomeFraction
	res.Health = res.BaseIncome * s.HealthRate
	res.Pension = res.BaseIncome * s.PensionRate
	res.AccidentInsurance = res.BaseIncome * accidentRate

	res.VacationProvision = in.ContractValue * s.VacationProvisionRate
	res.SeveranceProvision = in.ContractValue * s.SeveranceProvisionRate
	res.ContractualRiskProvision = in.ContractValue * (in.ContractualRiskPercent / 100)

	res.TotalSocialSecurity = res.Health + res.Pension + res.AccidentInsurance
	res.TotalProvisions = res.VacationProvision + res.SeveranceProvision + res.ContractualRiskProvision
	res.TotalCosts = res.TotalSocialSecurity + res.TotalProvisions

	res.NetIncome = in.ContractValue - res.TotalCosts
	res.NonDisposablePercent = res.TotalCosts / in.ContractValue * 100

	return res, nil
}
