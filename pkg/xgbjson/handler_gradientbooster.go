package xgbjson

import (
	"fmt"

	"github.com/vareth-ml/xgbtree/pkg/treemodel"
)

// GBTreeBoosterName is the only gradient_booster.name value this parser
// accepts. Linear boosters and others are out of scope.
const GBTreeBoosterName = "gbtree"

// GradientBoosterHandler parses the learner's gradient_booster object: a
// name discriminator gating which booster family follows, and the model
// body itself.
type GradientBoosterHandler struct {
	BaseHandler

	ctx   *Context
	model *treemodel.Model
}

// NewGradientBoosterHandler returns a handler validating the booster
// family and dispatching its model body into model.
func NewGradientBoosterHandler(model *treemodel.Model, ctx *Context) *GradientBoosterHandler {
	return &GradientBoosterHandler{model: model, ctx: ctx}
}

// OnString requires name to equal the gbtree literal; any other value is a
// schema violation this parser cannot recover from.
func (h *GradientBoosterHandler) OnString(v string) Action {
	if h.Key() != "name" {
		return fail(fmt.Errorf("%w: gradient_booster.%s", ErrUnexpectedKey, h.Key()))
	}

	if v != GBTreeBoosterName {
		err := fmt.Errorf("%w: got %q", ErrUnsupportedBooster, v)
		h.ctx.logger().Error("xgbjson: unsupported booster family", "name", v, "error", err)

		return fail(err)
	}

	return consume()
}

// OnStartObject installs GBTreeModelHandler under the model key.
func (h *GradientBoosterHandler) OnStartObject() Action {
	if h.Key() == "model" {
		return push(NewGBTreeModelHandler(h.model, h.ctx))
	}

	return fail(fmt.Errorf("%w: gradient_booster.%s", ErrUnexpectedKey, h.Key()))
}

// OnEndObject pops this handler.
func (h *GradientBoosterHandler) OnEndObject(int) Action { return pop() }
