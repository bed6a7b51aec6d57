package xgbjson

import (
	"fmt"
	"strconv"
)

// tolerated keys inside tree_param whose string value is accepted and
// discarded. num_deleted is marked deprecated upstream but still appears in
// models written by older XGBoost versions.
var treeParamIgnoredKeys = map[string]bool{
	"num_feature":      true,
	"size_leaf_vector": true,
	"num_deleted":      true,
}

// TreeParamHandler parses the tree_param sub-object. XGBoost writes every
// integer parameter here as a decimal string rather than a JSON number.
type TreeParamHandler struct {
	BaseHandler

	numNodes *int32
	ctx      *Context
}

// NewTreeParamHandler returns a handler that writes num_nodes into
// *numNodes and tolerates the other documented tree_param keys.
func NewTreeParamHandler(numNodes *int32, ctx *Context) *TreeParamHandler {
	return &TreeParamHandler{numNodes: numNodes, ctx: ctx}
}

// OnString dispatches on the current key: num_nodes is parsed as a decimal
// integer, a handful of other keys are tolerated and ignored, anything else
// fails the parse.
func (h *TreeParamHandler) OnString(v string) Action {
	switch h.Key() {
	case "num_nodes":
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fail(fmt.Errorf("%w: tree_param.num_nodes %q: %v", ErrMalformedJSON, v, err))
		}

		*h.numNodes = int32(n)

		return consume()
	default:
		if treeParamIgnoredKeys[h.Key()] {
			return consume()
		}

		return fail(fmt.Errorf("%w: tree_param.%s", ErrUnexpectedKey, h.Key()))
	}
}

// OnEndObject pops this handler; tree_param carries no finalize step beyond
// having written num_nodes.
func (h *TreeParamHandler) OnEndObject(int) Action { return pop() }
