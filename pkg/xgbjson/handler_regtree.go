package xgbjson

import (
	"fmt"

	"github.com/vareth-ml/xgbtree/pkg/treemodel"
)

// RegTreeHandler accumulates one tree's ten parallel flat arrays plus
// num_nodes, then reshapes them into the destination tree's recursive
// layout on EndObject.
type RegTreeHandler struct {
	BaseHandler

	ctx    *Context
	target *treemodel.Tree

	numNodes int32

	lossChanges      []float64
	sumHessian       []float64
	baseWeights      []float64
	leafChildCounts  []int32
	leftChildren     []int32
	rightChildren    []int32
	parents          []int32
	splitIndices     []int32
	splitConditions  []float64
	defaultLeft      []bool
}

// NewRegTreeHandler returns a handler that fills in target, the tree's
// slot in the model's tree sequence, once parsing of the flat arrays
// completes.
func NewRegTreeHandler(target *treemodel.Tree, ctx *Context) *RegTreeHandler {
	return &RegTreeHandler{target: target, ctx: ctx}
}

// OnUint accepts and discards the tree's own "id" field; XGBoost assigns it
// but the destination layout renumbers nodes anyway.
func (h *RegTreeHandler) OnUint(uint32) Action {
	if h.Key() == "id" {
		return consume()
	}

	return fail(fmt.Errorf("%w: tree.%s", ErrUnexpectedKey, h.Key()))
}

// OnInt mirrors OnUint for tokenizers that surface a small non-negative id
// as a signed integer.
func (h *RegTreeHandler) OnInt(int32) Action {
	if h.Key() == "id" {
		return consume()
	}

	return fail(fmt.Errorf("%w: tree.%s", ErrUnexpectedKey, h.Key()))
}

// OnStartObject dispatches tree_param to TreeParamHandler; every other key
// is a schema violation at this nesting level.
func (h *RegTreeHandler) OnStartObject() Action {
	if h.Key() == "tree_param" {
		return push(NewTreeParamHandler(&h.numNodes, h.ctx))
	}

	return fail(fmt.Errorf("%w: tree.%s", ErrUnexpectedKey, h.Key()))
}

// OnStartArray dispatches each of the ten flat arrays, plus the ignored
// categorical-split arrays, to the appropriate child handler.
func (h *RegTreeHandler) OnStartArray() Action {
	switch h.Key() {
	case "loss_changes":
		return push(NewFloat64ArrayHandler(&h.lossChanges))
	case "sum_hessian":
		return push(NewFloat64ArrayHandler(&h.sumHessian))
	case "base_weights":
		return push(NewFloat64ArrayHandler(&h.baseWeights))
	case "leaf_child_counts":
		return push(NewInt32ArrayHandler(&h.leafChildCounts))
	case "left_children":
		return push(NewInt32ArrayHandler(&h.leftChildren))
	case "right_children":
		return push(NewInt32ArrayHandler(&h.rightChildren))
	case "parents":
		return push(NewInt32ArrayHandler(&h.parents))
	case "split_indices":
		return push(NewInt32ArrayHandler(&h.splitIndices))
	case "split_conditions":
		return push(NewFloat64ArrayHandler(&h.splitConditions))
	case "default_left":
		return push(NewBoolArrayHandler(&h.defaultLeft))
	case "categories", "split_type":
		return push(NewIgnoreHandler())
	default:
		return fail(fmt.Errorf("%w: tree.%s", ErrUnexpectedKey, h.Key()))
	}
}

// OnEndObject verifies the ten-array length invariant, reshapes the tree
// into the destination layout, and pops.
func (h *RegTreeHandler) OnEndObject(int) Action {
	n := int(h.numNodes)
	if !h.arraysMatchLength(n) {
		err := fmt.Errorf("%w: want %d nodes", ErrArrayLengthMismatch, n)
		h.ctx.logger().Error("xgbjson: tree array length mismatch", "num_nodes", n, "error", err)

		return fail(err)
	}

	h.reshape()

	return pop()
}

func (h *RegTreeHandler) arraysMatchLength(n int) bool {
	lengths := []int{
		len(h.lossChanges), len(h.sumHessian), len(h.baseWeights),
		len(h.leafChildCounts), len(h.leftChildren), len(h.rightChildren),
		len(h.parents), len(h.splitIndices), len(h.splitConditions), len(h.defaultLeft),
	}

	for _, l := range lengths {
		if l != n {
			return false
		}
	}

	return true
}

// reshape walks the flat, XGBoost-indexed arrays breadth-first from node 0
// and rebuilds the tree in the destination library's recursive,
// contiguously-id'd layout. Deleted subtrees (gaps in the old id space) are
// never reached from root 0 and are silently dropped, matching the
// original's topology.
func (h *RegTreeHandler) reshape() {
	type pending struct{ oldID, newID int32 }

	root := h.target.Init()
	queue := []pending{{oldID: 0, newID: root}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		old := cur.oldID

		if h.leftChildren[old] == -1 {
			h.target.SetLeaf(cur.newID, float32(h.splitConditions[old]))
		} else {
			newLeft, newRight := h.target.AddChilds(cur.newID)
			h.target.SetNumericalSplit(
				cur.newID,
				h.splitIndices[old],
				float32(h.splitConditions[old]),
				h.defaultLeft[old],
				treemodel.OpLT,
			)
			h.target.SetGain(cur.newID, float32(h.lossChanges[old]))

			queue = append(queue,
				pending{oldID: h.leftChildren[old], newID: newLeft},
				pending{oldID: h.rightChildren[old], newID: newRight},
			)
		}

		h.target.SetSumHess(cur.newID, h.sumHessian[old])
	}
}
