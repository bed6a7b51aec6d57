package xgbjson

import (
	"fmt"

	"github.com/vareth-ml/xgbtree/pkg/treemodel"
)

// XGBoostModelHandler parses the document's top-level object: the version
// vector and the learner. Exactly these two members must be present.
type XGBoostModelHandler struct {
	BaseHandler

	ctx     *Context
	model   *treemodel.Model
	version []uint32

	memberCount int
}

// NewXGBoostModelHandler returns a handler populating model from the
// top-level object's two members.
func NewXGBoostModelHandler(model *treemodel.Model, ctx *Context) *XGBoostModelHandler {
	return &XGBoostModelHandler{model: model, ctx: ctx}
}

// OnStartArray installs a u32 array handler for version.
func (h *XGBoostModelHandler) OnStartArray() Action {
	if h.Key() != "version" {
		return fail(fmt.Errorf("%w: %s", ErrUnexpectedKey, h.Key()))
	}

	h.memberCount++

	return push(NewUint32ArrayHandler(&h.version))
}

// OnStartObject installs LearnerHandler under the learner key.
func (h *XGBoostModelHandler) OnStartObject() Action {
	if h.Key() != "learner" {
		return fail(fmt.Errorf("%w: %s", ErrUnexpectedKey, h.Key()))
	}

	h.memberCount++

	return push(NewLearnerHandler(h.model, h.ctx))
}

// OnEndObject enforces the exactly-two-members invariant, clears the
// random-forest flag, applies the XGBoost>=1.0 bias-to-margin transform
// when the version gates it, and pops.
func (h *XGBoostModelHandler) OnEndObject(count int) Action {
	if h.memberCount != 2 || count != 2 {
		err := fmt.Errorf("%w: got %d", ErrTopLevelMemberCount, count)
		h.ctx.logger().Error("xgbjson: top-level member count invariant violated",
			"count", count, "error", err)

		return fail(err)
	}

	h.model.RandomForestFlag = false

	if len(h.version) > 0 && h.version[0] >= 1 {
		h.model.GlobalBias = treemodel.MarginTransform(h.model.GlobalBias)
	}

	return pop()
}
