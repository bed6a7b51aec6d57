package xgbjson

// ArrayHandler accumulates a flat JSON array of scalars into *target. It is
// generic over the element type so the ten flat arrays inside a tree, and
// the top-level version vector, share one implementation; only the
// conversion from an incoming numeric/bool event to T differs between call
// sites, supplied by convert.
type ArrayHandler[T any] struct {
	BaseHandler

	target  *[]T
	convert func(Event) (T, bool)
}

func newArrayHandler[T any](target *[]T, convert func(Event) (T, bool)) *ArrayHandler[T] {
	return &ArrayHandler[T]{target: target, convert: convert}
}

func (h *ArrayHandler[T]) append(ev Event) Action {
	v, ok := h.convert(ev)
	if ok {
		*h.target = append(*h.target, v)
	}
	// A non-matching scalar inside a recognized array is trusted-schema
	// input we don't expect to see; tolerate it rather than abort, matching
	// the base handler's general "don't care, consume" policy.
	return consume()
}

func (h *ArrayHandler[T]) OnBool(v bool) Action    { return h.append(EventBool(v)) }
func (h *ArrayHandler[T]) OnInt(v int32) Action    { return h.append(EventInt(v)) }
func (h *ArrayHandler[T]) OnUint(v uint32) Action  { return h.append(EventUint(v)) }
func (h *ArrayHandler[T]) OnInt64(v int64) Action  { return h.append(EventInt64(v)) }
func (h *ArrayHandler[T]) OnUint64(v uint64) Action { return h.append(EventUint64(v)) }
func (h *ArrayHandler[T]) OnDouble(v float64) Action { return h.append(EventDouble(v)) }
func (h *ArrayHandler[T]) OnEndArray(int) Action   { return pop() }

// NewFloat64ArrayHandler builds an ArrayHandler for a []float64 target,
// accepting any numeric event kind and widening to float64.
func NewFloat64ArrayHandler(target *[]float64) *ArrayHandler[float64] {
	return newArrayHandler(target, func(ev Event) (float64, bool) {
		switch ev.Kind {
		case KindDouble:
			return ev.Double, true
		case KindInt:
			return float64(ev.Int), true
		case KindUint:
			return float64(ev.Uint), true
		case KindInt64:
			return float64(ev.Int64), true
		case KindUint64:
			return float64(ev.Uint64), true
		default:
			return 0, false
		}
	})
}

// NewInt32ArrayHandler builds an ArrayHandler for a []int32 target,
// accepting any integer event kind and narrowing to int32. Overflow is not
// checked: the input is a trusted schema.
func NewInt32ArrayHandler(target *[]int32) *ArrayHandler[int32] {
	return newArrayHandler(target, func(ev Event) (int32, bool) {
		switch ev.Kind {
		case KindInt:
			return ev.Int, true
		case KindUint:
			return int32(ev.Uint), true
		case KindInt64:
			return int32(ev.Int64), true
		case KindUint64:
			return int32(ev.Uint64), true
		default:
			return 0, false
		}
	})
}

// NewUint32ArrayHandler builds an ArrayHandler for a []uint32 target, used
// for the top-level version vector.
func NewUint32ArrayHandler(target *[]uint32) *ArrayHandler[uint32] {
	return newArrayHandler(target, func(ev Event) (uint32, bool) {
		switch ev.Kind {
		case KindUint:
			return ev.Uint, true
		case KindInt:
			return uint32(ev.Int), true
		case KindUint64:
			return uint32(ev.Uint64), true
		case KindInt64:
			return uint32(ev.Int64), true
		default:
			return 0, false
		}
	})
}

// NewBoolArrayHandler builds an ArrayHandler for a []bool target, used for
// default_left.
func NewBoolArrayHandler(target *[]bool) *ArrayHandler[bool] {
	return newArrayHandler(target, func(ev Event) (bool, bool) {
		if ev.Kind == KindBool {
			return ev.Bool, true
		}

		return false, false
	})
}

// ElementArrayHandler accumulates an array of JSON objects into *target,
// each parsed by a fresh child handler the caller supplies via newHandler.
// Used for the "trees" array: each element is appended as a zero-value T
// and newHandler gets a pointer into the slice to fill in place, so the
// child handler's finalize step (the tree reshape, for RegTreeHandler)
// writes directly into the model's own tree sequence.
type ElementArrayHandler[T any] struct {
	BaseHandler

	target     *[]T
	newHandler func(*T) Handler
}

// NewElementArrayHandler builds an ElementArrayHandler appending into
// target, constructing each element's handler via newHandler.
func NewElementArrayHandler[T any](target *[]T, newHandler func(*T) Handler) *ElementArrayHandler[T] {
	return &ElementArrayHandler[T]{target: target, newHandler: newHandler}
}

// OnStartObject appends a new zero-value element and pushes a handler
// targeting it.
func (h *ElementArrayHandler[T]) OnStartObject() Action {
	*h.target = append(*h.target, *new(T))
	elem := &(*h.target)[len(*h.target)-1]

	return push(h.newHandler(elem))
}

// OnEndArray pops this handler; every element has already finalized and
// popped itself.
func (h *ElementArrayHandler[T]) OnEndArray(int) Action { return pop() }
