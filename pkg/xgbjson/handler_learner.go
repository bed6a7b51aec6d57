package xgbjson

import (
	"fmt"

	"github.com/vareth-ml/xgbtree/pkg/treemodel"
)

// LearnerHandler parses the top-level learner object: model parameters,
// the booster itself, the objective (whose name selects the prediction
// transform), and an attributes block this parser ignores.
type LearnerHandler struct {
	BaseHandler

	ctx       *Context
	model     *treemodel.Model
	objective string
}

// NewLearnerHandler returns a handler populating model from the learner
// object's children.
func NewLearnerHandler(model *treemodel.Model, ctx *Context) *LearnerHandler {
	return &LearnerHandler{model: model, ctx: ctx}
}

// OnStartObject dispatches each recognized learner member to its handler.
func (h *LearnerHandler) OnStartObject() Action {
	switch h.Key() {
	case "learner_model_param":
		return push(NewLearnerParamHandler(h.model, h.ctx))
	case "gradient_booster":
		return push(NewGradientBoosterHandler(h.model, h.ctx))
	case "objective":
		return push(NewObjectiveHandler(&h.objective))
	case "attributes":
		return push(NewIgnoreHandler())
	default:
		return fail(fmt.Errorf("%w: learner.%s", ErrUnexpectedKey, h.Key()))
	}
}

// OnEndObject invokes the external prediction-transform selector with the
// parsed objective name, then pops.
func (h *LearnerHandler) OnEndObject(int) Action {
	treemodel.SelectPredictionTransform(h.model, h.objective)

	return pop()
}
