package handler

import (
	"errors"
	"log/slog"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"contractor-engine/internal/engine"
	"contractor-engine/internal/model"
	"contractor-engine/internal/report"
)

// Handler is the HTTP boundary of the engine. It is also the input
// layer: raw risk percentages are clamped to [0,20] here, the way the
// original form bounded keystrokes, so the engine only sees clamped
// values during normal interactive use.
type Handler struct {
	calc *engine.Calculator
	log  *slog.Logger
}

func New(calc *engine.Calculator, log *slog.Logger) *Handler {
	return &Handler{calc: calc, log: log}
}

// Route dispatches a request to the matching endpoint.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/v1/calculate":
		h.handleCalculate(ctx)
	case "/v1/simulate":
		h.handleSimulate(ctx)
	case "/v1/rates":
		h.handleRates(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) handleCalculate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	env := newEnvelope()
	result, err := h.calc.Compute(model.CalculationInput{
		ContractValue:          req.ContractValue,
		RiskClass:              model.RiskClass(req.RiskClass),
		ContractualRiskPercent: clampRiskPercent(req.ContractualRiskPercent),
	})

	resp := model.CalculationResponse{}
	if err != nil {
		env.fail(err)
	} else {
		resp.Result = &result
		if req.IncludeReport {
			resp.Report = report.Render(result, nil, 0)
		}
	}
	resp.CalculationMetadata, resp.Messages = env.close()

	h.log.Info("calculation",
		"calculation_id", resp.CalculationMetadata.CalculationID,
		"outcome", resp.CalculationMetadata.CalculationOutcome)
	writeJSON(ctx, fasthttp.StatusOK, &resp)
}

func (h *Handler) handleSimulate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.SimulationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	env := newEnvelope()
	resp := model.SimulationResponse{}

	current, err := h.calc.Compute(model.CalculationInput{
		ContractValue:          req.ContractValue,
		RiskClass:              model.RiskClass(req.RiskClass),
		ContractualRiskPercent: clampRiskPercent(req.ContractualRiskPercent),
	})
	if err != nil {
		env.fail(err)
	} else {
		resp.Current = &current
		sim, err := engine.Simulate(req.DesiredNetIncome, current)
		if err != nil {
			env.fail(err)
		} else {
			resp.Simulation = &sim
			if engine.Degenerate(sim) {
				env.warn(model.CodeDegenerateCostRatio,
					"Costs consume the entire contract value; no gross amount reaches the desired net income")
			}
			if req.IncludeReport {
				resp.Report = report.Render(current, &sim, req.DesiredNetIncome)
			}
		}
	}
	resp.CalculationMetadata, resp.Messages = env.close()

	h.log.Info("simulation",
		"calculation_id", resp.CalculationMetadata.CalculationID,
		"outcome", resp.CalculationMetadata.CalculationOutcome)
	writeJSON(ctx, fasthttp.StatusOK, &resp)
}

func (h *Handler) handleRates(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s := h.calc.Schedule()
	writeJSON(ctx, fasthttp.StatusOK, &s)
}

// clampRiskPercent bounds the contractual risk percentage the same way
// the interactive form does before it reaches the engine.
func clampRiskPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 20 {
		return 20
	}
	return p
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	body, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// messageFor maps an engine error to an envelope message. Unexpected
// errors still surface, just without a stable code.
func messageFor(err error) model.CalculationMessage {
	var ie *model.InputError
	if errors.As(err, &ie) {
		return model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    ie.Code,
			Message: ie.Reason,
		}
	}
	return model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    "INTERNAL_ERROR",
		Message: err.Error(),
	}
}
