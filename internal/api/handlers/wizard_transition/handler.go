package wizard_transition

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidState       = "некорректное состояние или событие мастера"
	msgInvalidForm        = "некорректные дни недели или даты в форме"
)

type Handler struct {
	machine  WizardMachine
	location *time.Location
	logger   Logger
}

func NewHandler(machine WizardMachine, location *time.Location, logger Logger) *Handler {
	return &Handler{
		machine:  machine,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/recurring-events/wizard
// Переход мастера вычисляется без побочных эффектов, состояние хранит клиент
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /recurring-events/wizard - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	state, err := req.State.ToState(h.machine.Initial())
	if err != nil {
		h.logger.Warn("POST /recurring-events/wizard - Invalid state: %v", err)
		handlers.RespondBadRequest(w, msgInvalidState)
		return
	}
	event, err := req.Event.ToEvent()
	if err != nil {
		h.logger.Warn("POST /recurring-events/wizard - Invalid event: %v", err)
		handlers.RespondBadRequest(w, msgInvalidState)
		return
	}
	form, err := req.Form.ToDomain(h.location)
	if err != nil {
		h.logger.Warn("POST /recurring-events/wizard - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	next := h.machine.Apply(state, event, form)

	fieldErrors := h.machine.Errors(next, form)
	if fieldErrors == nil {
		fieldErrors = domain.ValidationErrors{}
	}

	h.logger.Info("POST /recurring-events/wizard - Transition %s: %s -> %s",
		event.Type, state.Current(), next.Current())
	handlers.RespondJSON(w, http.StatusOK, TransitionResponse{
		State:     FromState(next),
		Terminal:  next.Current().IsTerminal(),
		Navigable: stepNames(h.machine.Navigable(next, form)),
		Errors:    fieldErrors,
	})
}
