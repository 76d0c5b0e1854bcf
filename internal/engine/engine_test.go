package engine

import (
	"errors"
	"math"
	"testing"

	"contractor-engine/internal/model"
	"contractor-engine/internal/rates"
)

func within(got, want, rel float64) bool {
	if want == 0 {
		return math.Abs(got) <= rel
	}
	return math.Abs(got-want) <= rel*math.Abs(want)
}

func checkField(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !within(got, want, 1e-9) {
		t.Fatalf("%s: expected %v, got %v", name, want, got)
	}
}

func TestComputeScenarioRiskClassI(t *testing.T) {
	c := New(rates.Statutory())

	res, err := c.Compute(model.CalculationInput{
		ContractValue:          3_200_000,
		RiskClass:              model.RiskClassI,
		ContractualRiskPercent: 10.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkField(t, "base_income", res.BaseIncome, 1_280_000)
	checkField(t, "health", res.Health, 160_000)
	checkField(t, "pension", res.Pension, 204_800)
	checkField(t, "accident_insurance", res.AccidentInsurance, 6_681.6)
	checkField(t, "total_social_security", res.TotalSocialSecurity, 371_481.6)
	checkField(t, "vacation_provision", res.VacationProvision, 133_440)
	checkField(t, "severance_provision", res.SeveranceProvision, 298_560)
	checkField(t, "contractual_risk_provision", res.ContractualRiskProvision, 320_000)
	checkField(t, "total_provisions", res.TotalProvisions, 752_000)
	checkField(t, "total_costs", res.TotalCosts, 1_123_481.6)
	checkField(t, "net_income", res.NetIncome, 2_076_518.4)

	if !within(res.NonDisposablePercent, 35.1088, 1e-4) {
		t.Fatalf("non_disposable_percent: expected ~35.11, got %v", res.NonDisposablePercent)
	}
}

func TestComputeScenarioRiskClassV(t *testing.T) {
	c := New(rates.Statutory())

	res, err := c.Compute(model.CalculationInput{
		ContractValue: 5_000_000,
		RiskClass:     model.RiskClassV,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checkField(t, "accident_insurance", res.AccidentInsurance, 139_200)
	if res.ContractualRiskProvision != 0 {
		t.Fatalf("expected zero contractual risk provision, got %v", res.ContractualRiskProvision)
	}
}

func TestComputeAccidentInsuranceAllClasses(t *testing.T) {
	c := New(rates.Statutory())
	const contractValue = 1_000_000

	expected := map[model.RiskClass]float64{
		model.RiskClassI:   0.00522,
		model.RiskClassII:  0.01044,
		model.RiskClassIII: 0.02436,
		model.RiskClassIV:  0.04350,
		model.RiskClassV:   0.06960,
	}

	for rc, rate := range expected {
		res, err := c.Compute(model.CalculationInput{ContractValue: contractValue, RiskClass: rc})
		if err != nil {
			t.Fatalf("class %s: unexpected error: %v", rc, err)
		}
		want := contractValue * 0.40 * rate
		if !within(res.AccidentInsurance, want, 1e-9) {
			t.Fatalf("class %s: expected accident insurance %v, got %v", rc, want, res.AccidentInsurance)
		}
	}
}

func TestComputeIdentities(t *testing.T) {
	c := New(rates.Statutory())

	inputs := []model.CalculationInput{
		{ContractValue: 1, RiskClass: model.RiskClassI},
		{ContractValue: 1_500_000, RiskClass: model.RiskClassII, ContractualRiskPercent: 5},
		{ContractValue: 3_200_000, RiskClass: model.RiskClassI, ContractualRiskPercent: 10},
		{ContractValue: 87_654_321.99, RiskClass: model.RiskClassIV, ContractualRiskPercent: 20},
	}

	for _, in := range inputs {
		res, err := c.Compute(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !within(res.TotalCosts, res.TotalSocialSecurity+res.TotalProvisions, 1e-9) {
			t.Fatalf("total_costs identity broken for %v", in)
		}
		if !within(res.NetIncome+res.TotalCosts, in.ContractValue, 1e-9) {
			t.Fatalf("net income identity broken for %v", in)
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	c := New(rates.Statutory())
	in := model.CalculationInput{
		ContractValue:          2_700_000,
		RiskClass:              model.RiskClassIII,
		ContractualRiskPercent: 7.5,
	}

	first, err := c.Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected bit-identical results, got %v and %v", first, second)
	}
}

func TestComputeNetIncomeMonotonic(t *testing.T) {
	c := New(rates.Statutory())

	prev := math.Inf(-1)
	for _, cv := range []float64{100_000, 500_000, 1_000_000, 3_200_000, 10_000_000} {
		res, err := c.Compute(model.CalculationInput{
			ContractValue:          cv,
			RiskClass:              model.RiskClassII,
			ContractualRiskPercent: 10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.NetIncome <= prev {
			t.Fatalf("net income not strictly increasing at contract value %v", cv)
		}
		prev = res.NetIncome
	}
}

func TestComputeZeroContractValue(t *testing.T) {
	c := New(rates.Statutory())

	res, err := c.Compute(model.CalculationInput{
		ContractValue:          0,
		RiskClass:              model.RiskClassIII,
		ContractualRiskPercent: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != (model.CalculationResult{}) {
		t.Fatalf("expected all-zero result, got %+v", res)
	}
	if math.IsNaN(res.NonDisposablePercent) || math.IsInf(res.NonDisposablePercent, 0) {
		t.Fatal("non_disposable_percent must be 0, not NaN/Inf")
	}
}

func TestComputeInvalidInput(t *testing.T) {
	c := New(rates.Statutory())

	cases := []struct {
		name string
		in   model.CalculationInput
		code string
	}{
		{
			name: "negative contract value",
			in:   model.CalculationInput{ContractValue: -1, RiskClass: model.RiskClassI},
			code: model.CodeNegativeContractValue,
		},
		{
			name: "risk percent above 20",
			in:   model.CalculationInput{ContractValue: 100, RiskClass: model.RiskClassI, ContractualRiskPercent: 25},
			code: model.CodeRiskPercentOutOfRange,
		},
		{
			name: "negative risk percent",
			in:   model.CalculationInput{ContractValue: 100, RiskClass: model.RiskClassI, ContractualRiskPercent: -0.5},
			code: model.CodeRiskPercentOutOfRange,
		},
		{
			name: "unknown risk class",
			in:   model.CalculationInput{ContractValue: 100, RiskClass: "VI"},
			code: model.CodeUnknownRiskClass,
		},
	}

	for _, tc := range cases {
		_, err := c.Compute(tc.in)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !errors.Is(err, model.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
		var ie *model.InputError
		if !errors.As(err, &ie) || ie.Code != tc.code {
			t.Fatalf("%s: expected code %s, got %v", tc.name, tc.code, err)
		}
	}
}
