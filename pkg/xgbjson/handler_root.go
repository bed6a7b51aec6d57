package xgbjson

import "fmt"

// rootHandler installs XGBoostModelHandler on the document's opening
// object and otherwise leaves the model it was constructed with in place:
// it never pops, since there is no parent to return to.
type rootHandler struct {
	BaseHandler

	ctx *Context
}

func newRootHandler(ctx *Context) *rootHandler {
	return &rootHandler{ctx: ctx}
}

// OnStartObject installs XGBoostModelHandler targeting the context's
// model. Any other event arriving before the document's opening object is
// a parse error.
func (h *rootHandler) OnStartObject() Action {
	return push(NewXGBoostModelHandler(h.ctx.Model, h.ctx))
}

func (h *rootHandler) onUnexpected() Action {
	return fail(fmt.Errorf("%w: expected top-level object", ErrUnexpectedEvent))
}

func (h *rootHandler) OnNull() Action              { return h.onUnexpected() }
func (h *rootHandler) OnBool(bool) Action          { return h.onUnexpected() }
func (h *rootHandler) OnInt(int32) Action          { return h.onUnexpected() }
func (h *rootHandler) OnUint(uint32) Action        { return h.onUnexpected() }
func (h *rootHandler) OnInt64(int64) Action        { return h.onUnexpected() }
func (h *rootHandler) OnUint64(uint64) Action      { return h.onUnexpected() }
func (h *rootHandler) OnDouble(float64) Action     { return h.onUnexpected() }
func (h *rootHandler) OnString(string) Action      { return h.onUnexpected() }
func (h *rootHandler) OnStartArray() Action        { return h.onUnexpected() }
func (h *rootHandler) OnEndArray(int) Action       { return h.onUnexpected() }
