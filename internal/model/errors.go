package model

import "errors"

// ErrInvalidInput marks out-of-range or malformed input rejected by the
// engine. The two documented zero-division guards (zero contract value,
// cost ratio at or above 100%) are defined results, not errors.
var ErrInvalidInput = errors.New("invalid input")

// Stable message codes surfaced in calculation envelopes.
const (
	CodeUnknownRiskClass      = "UNKNOWN_RISK_CLASS"
	CodeNegativeContractValue = "NEGATIVE_CONTRACT_VALUE"
	CodeRiskPercentOutOfRange = "RISK_PERCENT_OUT_OF_RANGE"
	CodeNegativeDesiredNet    = "NEGATIVE_DESIRED_NET_INCOME"
	CodeDegenerateCostRatio   = "COST_RATIO_AT_OR_ABOVE_100_PERCENT"
)

// InputError is an ErrInvalidInput carrying a stable code for the
// response envelope.
type InputError struct {
	Code   string
	Reason string
}

func (e *InputError) Error() string { return "invalid input: " + e.Reason }

func (e *InputError) Unwrap() error { return ErrInvalidInput }
