package rates

import (
	"fmt"

	"contractor-engine/internal/model"
)

// Schedule holds the statutory percentages used by the calculator, as
// exact decimal fractions. A Schedule is read-only after construction;
// localization to another jurisdiction happens by loading a different
// schedule, never by mutating this one.
type Schedule struct {
	BaseIncomeFraction     float64                     `json:"base_income_fraction" yaml:"base_income_fraction"`
	HealthRate             float64                     `json:"health_rate" yaml:"health_rate"`
	PensionRate            float64                     `json:"pension_rate" yaml:"pension_rate"`
	AccidentInsurance      map[model.RiskClass]float64 `json:"accident_insurance" yaml:"accident_insurance"`
	VacationProvisionRate  float64                     `json:"vacation_provision_rate" yaml:"vacation_provision_rate"`
	SeveranceProvisionRate float64                     `json:"severance_provision_rate" yaml:"severance_provision_rate"`
}

// Statutory returns the national schedule the engine ships with.
func Statutory() Schedule {
	return Schedule{
		BaseIncomeFraction: 0.40,
		HealthRate:         0.125,
		PensionRate:        0.16,
		AccidentInsurance: map[model.RiskClass]float64{
			model.RiskClassI:   0.00522,
			model.RiskClassII:  0.01044,
			model.RiskClassIII: 0.02436,
			model.RiskClassIV:  0.04350,
			model.RiskClassV:   0.06960,
		},
		VacationProvisionRate:  0.0417,
		SeveranceProvisionRate: 0.0933, // vacation bonus + severance combined
	}
}

// RateFor returns the accident-insurance rate for the given risk class.
// An undefined class is an error, never a silent default.
func (s Schedule) RateFor(rc model.RiskClass) (float64, error) {
	r, ok := s.AccidentInsurance[rc]
	if !ok {
		return 0, &model.InputError{
			Code:   model.CodeUnknownRiskClass,
			Reason: fmt.Sprintf("unknown risk class %q", string(rc)),
		}
	}
	return r, nil
}

// Validate checks that every rate is a fraction in [0,1] and that all
// five risk classes are present.
func (s Schedule) Validate() error {
	fields := map[string]float64{
		"base_income_fraction":     s.BaseIncomeFraction,
		"health_rate":              s.HealthRate,
		"pension_rate":             s.PensionRate,
		"vacation_provision_rate":  s.VacationProvisionRate,
		"severance_provision_rate": s.SeveranceProvisionRate,
	}
	for name, v := range fields {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be a fraction in [0,1], got %v", name, v)
		}
	}
	for _, rc := range model.RiskClasses {
		r, ok := s.AccidentInsurance[rc]
		if !ok {
			return fmt.Errorf("accident_insurance is missing risk class %s", rc)
		}
		if r < 0 || r > 1 {
			return fmt.Errorf("accident_insurance[%s] must be a fraction in [0,1], got %v", rc, r)
		}
	}
	if len(s.AccidentInsurance) != len(model.RiskClasses) {
		return fmt.Errorf("accident_insurance defines %d classes, want %d", len(s.AccidentInsurance), len(model.RiskClasses))
	}
	return nil
}
