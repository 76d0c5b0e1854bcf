package handler

import (
	"time"

	"github.com/google/uuid"

	"contractor-engine/internal/model"
)

// envelope accumulates the metadata and messages every response carries.
type envelope struct {
	start    time.Time
	messages []model.CalculationMessage
	outcome  string
}

func newEnvelope() *envelope {
	return &envelope{start: time.Now(), outcome: model.OutcomeSuccess}
}

func (e *envelope) warn(code, message string) {
	e.add(model.CalculationMessage{Level: model.LevelWarning, Code: code, Message: message})
}

func (e *envelope) fail(err error) {
	e.add(messageFor(err))
	e.outcome = model.OutcomeFailure
}

func (e *envelope) add(m model.CalculationMessage) {
	m.ID = len(e.messages)
	e.messages = append(e.messages, m)
}

func (e *envelope) close() (model.CalculationMetadata, []model.CalculationMessage) {
	elapsed := time.Since(e.start)
	now := time.Now().UTC()

	if e.messages == nil {
		e.messages = []model.CalculationMessage{}
	}

	return model.CalculationMetadata{
		CalculationID:          uuid.New().String(),
		CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
		CalculationCompletedAt: now.Format(time.RFC3339),
		CalculationDurationMs:  elapsed.Milliseconds(),
		CalculationOutcome:     e.outcome,
	}, e.messages
}
