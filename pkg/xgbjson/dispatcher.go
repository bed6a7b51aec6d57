package xgbjson

import (
	"fmt"
	"log/slog"

	"github.com/vareth-ml/xgbtree/pkg/treemodel"
)

// Context bundles the dependencies handlers need beyond their own local
// state: the model under construction and a logger for the diagnostics the
// error-handling design calls for at the point of detection. It is shared
// by pointer across every handler in a single parse.
type Context struct {
	Model  *treemodel.Model
	Logger *slog.Logger
}

func (c *Context) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	return slog.Default()
}

// Dispatcher owns the handler stack and the in-progress model for one
// parse. It receives the linearized event stream from the tokenizer adapter
// and forwards each event to the handler on top of the stack, applying the
// Action the handler returns.
type Dispatcher struct {
	ctx   *Context
	stack []Handler
	err   error
}

// NewDispatcher creates a dispatcher with a RootHandler at the bottom of
// the stack, targeting model.
func NewDispatcher(ctx *Context) *Dispatcher {
	return &Dispatcher{
		ctx:   ctx,
		stack: []Handler{newRootHandler(ctx)},
	}
}

// Dispatch forwards one event to the current top handler and applies the
// resulting Action. Once the dispatcher has failed, further calls return
// the original error without doing further work.
func (d *Dispatcher) Dispatch(ev Event) error {
	if d.err != nil {
		return d.err
	}

	if len(d.stack) == 0 {
		d.err = ErrEmptyStack

		return d.err
	}

	top := d.stack[len(d.stack)-1]
	action := dispatchEvent(top, ev)

	switch action.Kind {
	case ActionConsume:
		return nil
	case ActionPush:
		d.stack = append(d.stack, action.Child)

		return nil
	case ActionPop:
		return d.pop()
	case ActionFail:
		d.ctx.logger().Error("xgbjson: parse failed", "error", action.Err)
		d.err = action.Err

		return d.err
	default:
		d.err = fmt.Errorf("xgbjson: unknown action kind %d", action.Kind)

		return d.err
	}
}

func (d *Dispatcher) pop() error {
	if len(d.stack) <= 1 {
		d.err = fmt.Errorf("%w: no parent to return to", ErrStackUnderflow)

		return d.err
	}

	d.stack = d.stack[:len(d.stack)-1]

	return nil
}

// Err returns the error that aborted the parse, if any.
func (d *Dispatcher) Err() error { return d.err }

// Result hands over the populated model. Ownership transfers to the
// caller: the dispatcher's reference is cleared, matching the destructive
// move semantics of the original get_result.
func (d *Dispatcher) Result() *treemodel.Model {
	m := d.ctx.Model
	d.ctx.Model = nil

	return m
}

func dispatchEvent(h Handler, ev Event) Action {
	switch ev.Kind {
	case KindNull:
		return h.OnNull()
	case KindBool:
		return h.OnBool(ev.Bool)
	case KindInt:
		return h.OnInt(ev.Int)
	case KindUint:
		return h.OnUint(ev.Uint)
	case KindInt64:
		return h.OnInt64(ev.Int64)
	case KindUint64:
		return h.OnUint64(ev.Uint64)
	case KindDouble:
		return h.OnDouble(ev.Double)
	case KindString:
		return h.OnString(ev.Str)
	case KindKey:
		return h.OnKey(ev.Str)
	case KindStartObject:
		return h.OnStartObject()
	case KindEndObject:
		return h.OnEndObject(ev.Count)
	case KindStartArray:
		return h.OnStartArray()
	case KindEndArray:
		return h.OnEndArray(ev.Count)
	default:
		return fail(fmt.Errorf("%w: kind %d", ErrUnexpectedEvent, ev.Kind))
	}
}
