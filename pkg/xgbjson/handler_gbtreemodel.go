package xgbjson

import (
	"fmt"

	"github.com/vareth-ml/xgbtree/pkg/treemodel"
)

// GBTreeModelHandler parses gradient_booster.model: the tree sequence plus
// two fields this parser recognizes by name but has no use for.
type GBTreeModelHandler struct {
	BaseHandler

	ctx   *Context
	model *treemodel.Model
}

// NewGBTreeModelHandler returns a handler appending parsed trees directly
// into model.Trees.
func NewGBTreeModelHandler(model *treemodel.Model, ctx *Context) *GBTreeModelHandler {
	return &GBTreeModelHandler{model: model, ctx: ctx}
}

// OnStartArray dispatches trees to an element-handler array targeting
// model.Trees, and tolerates tree_info (a per-tree id list this parser
// doesn't consult).
func (h *GBTreeModelHandler) OnStartArray() Action {
	switch h.Key() {
	case "trees":
		return push(NewElementArrayHandler(&h.model.Trees, func(t *treemodel.Tree) Handler {
			return NewRegTreeHandler(t, h.ctx)
		}))
	case "tree_info":
		return push(NewIgnoreHandler())
	default:
		return fail(fmt.Errorf("%w: gradient_booster.model.%s", ErrUnexpectedKey, h.Key()))
	}
}

// OnStartObject tolerates gbtree_model_param, whose fields (num_trees,
// num_parallel_tree, num_feature) either duplicate what's parsed elsewhere
// or aren't needed here.
func (h *GBTreeModelHandler) OnStartObject() Action {
	if h.Key() == "gbtree_model_param" {
		return push(NewIgnoreHandler())
	}

	return fail(fmt.Errorf("%w: gradient_booster.model.%s", ErrUnexpectedKey, h.Key()))
}

// OnEndObject pops this handler; every tree has already reshaped and
// appended itself.
func (h *GBTreeModelHandler) OnEndObject(int) Action { return pop() }
