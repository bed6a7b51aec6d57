package xgbjson

// IgnoreHandler accepts every event as success, discarding whatever subtree
// it is pushed for. Used for schema regions this parser recognizes by name
// but has no interest in: categorical-split metadata, per-objective
// hyperparameter blocks, tree_info, attributes, and gbtree_model_param.
type IgnoreHandler struct {
	BaseHandler
}

// NewIgnoreHandler returns a handler that discards its entire subtree.
func NewIgnoreHandler() *IgnoreHandler { return &IgnoreHandler{} }

// OnStartObject pushes another IgnoreHandler so the nested object is
// consumed without this handler needing to track nesting depth itself.
func (h *IgnoreHandler) OnStartObject() Action { return push(NewIgnoreHandler()) }

// OnStartArray pushes another IgnoreHandler so the nested array is consumed.
func (h *IgnoreHandler) OnStartArray() Action { return push(NewIgnoreHandler()) }

// OnEndObject pops this handler; its subtree is fully consumed.
func (h *IgnoreHandler) OnEndObject(int) Action { return pop() }

// OnEndArray pops this handler; its subtree is fully consumed.
func (h *IgnoreHandler) OnEndArray(int) Action { return pop() }
