// Package report renders a calculation as a plain-text advisory
// document. Section order is fixed: summary, mandatory contributions,
// suggested provisions, negotiation simulation, legal notes, disclaimer.
// All rounding happens here; the engine's outputs stay exact.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"contractor-engine/internal/model"
)

// Render produces the report for a forward result. When sim is non-nil
// the negotiation section is included, describing the gross contract
// value required to reach desiredNet.
func Render(res model.CalculationResult, sim *model.SimulationResult, desiredNet float64) string {
	var b strings.Builder

	section(&b, "SUMMARY")
	line(&b, "Gross contract value", res.ContractValue)
	line(&b, "Total costs", res.TotalCosts)
	line(&b, "Net income", res.NetIncome)
	fmt.Fprintf(&b, "  %-28s %s\n", "Non-disposable share", percent(res.NonDisposablePercent))

	section(&b, "MANDATORY CONTRIBUTIONS")
	line(&b, "Contribution base (40%)", res.BaseIncome)
	line(&b, "Health", res.Health)
	line(&b, "Pension", res.Pension)
	line(&b, "Accident insurance", res.AccidentInsurance)
	line(&b, "Total contributions", res.TotalSocialSecurity)

	section(&b, "SUGGESTED PROVISIONS")
	line(&b, "Vacation", res.VacationProvision)
	line(&b, "Severance", res.SeveranceProvision)
	line(&b, "Contractual risk", res.ContractualRiskProvision)
	line(&b, "Total provisions", res.TotalProvisions)

	if sim != nil {
		section(&b, "NEGOTIATION SIMULATION")
		line(&b, "Desired net income", desiredNet)
		line(&b, "Required gross value", sim.RequiredGrossContractValue)
		line(&b, "Difference vs current", sim.DifferenceFromCurrent)
		fmt.Fprintf(&b, "  %-28s %s\n", "Cost ratio", percent(sim.CostFactor*100))
	}

	section(&b, "LEGAL NOTES")
	b.WriteString("  Health and pension contributions are assessed on 40% of the gross\n")
	b.WriteString("  contract value, as the statutory contribution base. The accident\n")
	b.WriteString("  insurance rate follows the declared risk class (I-V). Vacation,\n")
	b.WriteString("  severance and contractual-risk amounts are suggested self-funded\n")
	b.WriteString("  reserves, not legally mandatory payments.\n")

	section(&b, "DISCLAIMER")
	b.WriteString("  Figures are estimates based on the active rate schedule and the\n")
	b.WriteString("  values entered. This document is informational only and does not\n")
	b.WriteString("  constitute legal, tax or accounting advice.\n")

	return b.String()
}

func section(b *strings.Builder, title string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(title + "\n")
}

func line(b *strings.Builder, label string, amount float64) {
	fmt.Fprintf(b, "  %-28s %s\n", label, Currency(amount))
}

// Currency formats an amount rounded to whole units with grouping
// separators, e.g. 3,200,000.
func Currency(v float64) string {
	return "$" + humanize.Commaf(math.Round(v))
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
