package xgbjson

import (
	"fmt"
	"strconv"

	"github.com/vareth-ml/xgbtree/pkg/mathutil"
	"github.com/vareth-ml/xgbtree/pkg/treemodel"
)

// LearnerParamHandler parses learner_model_param. Every value arrives as a
// decimal string rather than a JSON number, matching XGBoost's convention
// for this object.
type LearnerParamHandler struct {
	BaseHandler

	model *treemodel.Model
	ctx   *Context
}

// NewLearnerParamHandler returns a handler writing base_score, num_class,
// and num_feature into model.
func NewLearnerParamHandler(model *treemodel.Model, ctx *Context) *LearnerParamHandler {
	return &LearnerParamHandler{model: model, ctx: ctx}
}

// OnString dispatches on the current key, parsing the decimal-string value
// for the three recognized parameters and failing on anything else.
func (h *LearnerParamHandler) OnString(v string) Action {
	switch h.Key() {
	case "base_score":
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			h.ctx.logger().Warn("xgbjson: base_score not fully numeric, treating as zero",
				"value", v, "error", err)

			f = 0
		}

		h.model.GlobalBias = float32(f)

		return consume()
	case "num_class":
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fail(fmt.Errorf("%w: learner_model_param.num_class %q: %v", ErrMalformedJSON, v, err))
		}

		h.model.NumOutputGroup = int32(mathutil.Max(int(n), 1))

		return consume()
	case "num_feature":
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fail(fmt.Errorf("%w: learner_model_param.num_feature %q: %v", ErrMalformedJSON, v, err))
		}

		h.model.NumFeature = int32(n)

		return consume()
	default:
		return fail(fmt.Errorf("%w: learner_model_param.%s", ErrUnexpectedKey, h.Key()))
	}
}

// OnEndObject pops this handler.
func (h *LearnerParamHandler) OnEndObject(int) Action { return pop() }
