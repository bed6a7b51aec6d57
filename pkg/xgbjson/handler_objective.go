package xgbjson

import "fmt"

// ObjectiveHandler parses the learner's objective object: the loss-function
// name plus a family-specific hyperparameter block this parser doesn't
// need to interpret.
type ObjectiveHandler struct {
	BaseHandler

	objective *string
}

// NewObjectiveHandler returns a handler writing the objective's name into
// *objective, a buffer owned by the enclosing LearnerHandler.
func NewObjectiveHandler(objective *string) *ObjectiveHandler {
	return &ObjectiveHandler{objective: objective}
}

// OnString copies name into the shared objective buffer.
func (h *ObjectiveHandler) OnString(v string) Action {
	if h.Key() != "name" {
		return fail(fmt.Errorf("%w: objective.%s", ErrUnexpectedKey, h.Key()))
	}

	*h.objective = v

	return consume()
}

// OnStartObject tolerates every *_param sub-object XGBoost nests under the
// objective (reg_loss_param, poisson_regression_param, softmax_multiclass_param,
// and friends) without needing to know the full enumeration.
func (h *ObjectiveHandler) OnStartObject() Action {
	return push(NewIgnoreHandler())
}

// OnEndObject pops this handler.
func (h *ObjectiveHandler) OnEndObject(int) Action { return pop() }
