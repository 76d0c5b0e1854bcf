package engine

import (
	"fmt"

	"contractor-engine/internal/model"
)

// Simulate solves for the gross contract value that yields the desired
// net income under the cost ratio of the current result.
//
// The cost ratio is invariant to the contract value in this model (every
// cost term is the contract value times a fixed rate sum), so holding it
// constant is exact algebra, not an approximation: it inverts
// netIncome = contractValue * (1 - costFactor).
//
// When the ratio is at or above 100% the target is unreachable and the
// required gross is reported as 0; callers can detect this with
// Degenerate. A negative desired net income is an error.
func Simulate(desiredNetIncome float64, current model.CalculationResult) (model.SimulationResult, error) {
	if desiredNetIncome < 0 {
		return model.SimulationResult{}, &model.InputError{
			Code:   model.CodeNegativeDesiredNet,
			Reason: fmt.Sprintf("desired net income %v is negative", desiredNetIncome),
		}
	}

	var costFactor float64
	if current.ContractValue > 0 {
		costFactor = current.TotalCosts / current.ContractValue
	}

	var requiredGross float64
	if remainder := 1 - costFactor; remainder > 0 {
		requiredGross = desiredNetIncome / remainder
	}

	return model.SimulationResult{
		RequiredGrossContractValue: requiredGross,
		DifferenceFromCurrent:      requiredGross - current.ContractValue,
		CostFactor:                 costFactor,
	}, nil
}

// Degenerate reports whether the simulation hit the defined zero branch:
// costs consume the entire contract value, so no gross amount reaches
// the desired net income.
func Degenerate(sim model.SimulationResult) bool {
	return sim.CostFactor >= 1
}
