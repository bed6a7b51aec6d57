package xgbjson

// ActionKind identifies what the dispatcher should do after a handler
// processes one event.
type ActionKind uint8

// Actions a handler may request of the dispatcher. This replaces the
// original's weak back-reference from handler to dispatcher: handlers never
// touch the stack directly, they only describe what should happen to it.
const (
	// ActionConsume means the event was handled (or intentionally ignored)
	// and the stack is unchanged.
	ActionConsume ActionKind = iota
	// ActionPush installs Child as the new top of the stack.
	ActionPush
	// ActionPop discards the current top of the stack.
	ActionPop
	// ActionFail aborts the parse with Err.
	ActionFail
)

// Action is the return value of every Handler method.
type Action struct {
	Kind  ActionKind
	Child Handler
	Err   error
}

func consume() Action        { return Action{Kind: ActionConsume} }
func push(child Handler) Action { return Action{Kind: ActionPush, Child: child} }
func pop() Action            { return Action{Kind: ActionPop} }
func fail(err error) Action  { return Action{Kind: ActionFail, Err: err} }

// Handler is the capability set every schema-specific state machine
// implements: one method per event kind. A handler is pushed onto the
// dispatcher's stack when its parent installs it under a recognized key,
// and lives for exactly the JSON container it was installed for.
type Handler interface {
	OnNull() Action
	OnBool(v bool) Action
	OnInt(v int32) Action
	OnUint(v uint32) Action
	OnInt64(v int64) Action
	OnUint64(v uint64) Action
	OnDouble(v float64) Action
	OnString(v string) Action
	OnKey(v string) Action
	OnStartObject() Action
	OnEndObject(count int) Action
	OnStartArray() Action
	OnEndArray(count int) Action
}

// BaseHandler supplies the default event behavior described in the
// component design: any event a handler doesn't care about is consumed
// without side effects. Concrete handlers embed BaseHandler and override
// only the methods their schema context requires. It also tracks the
// "current key" every Key event sets, consulted by the value event that
// follows it.
type BaseHandler struct {
	key string
}

// Key returns the key set by the most recent Key event at this nesting
// level.
func (b *BaseHandler) Key() string { return b.key }

func (b *BaseHandler) OnNull() Action             { return consume() }
func (b *BaseHandler) OnBool(bool) Action         { return consume() }
func (b *BaseHandler) OnInt(int32) Action         { return consume() }
func (b *BaseHandler) OnUint(uint32) Action       { return consume() }
func (b *BaseHandler) OnInt64(int64) Action       { return consume() }
func (b *BaseHandler) OnUint64(uint64) Action     { return consume() }
func (b *BaseHandler) OnDouble(float64) Action    { return consume() }
func (b *BaseHandler) OnString(string) Action     { return consume() }
func (b *BaseHandler) OnKey(v string) Action      { b.key = v; return consume() }
func (b *BaseHandler) OnStartObject() Action      { return consume() }
func (b *BaseHandler) OnEndObject(int) Action     { return consume() }
func (b *BaseHandler) OnStartArray() Action       { return consume() }
func (b *BaseHandler) OnEndArray(int) Action      { return consume() }
