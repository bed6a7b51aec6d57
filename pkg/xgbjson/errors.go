package xgbjson

import "errors"

// Sentinel errors surfaced by the dispatcher and handlers. All but
// ErrEmptyStack are wrapped with additional context via
// fmt.Errorf("%w: ...", ...) at the point of detection; ErrEmptyStack is
// returned as is.
var (
	// ErrMalformedJSON is returned when the underlying tokenizer cannot
	// produce a well-formed token stream from the input bytes, and when a
	// decimal-string parameter (num_nodes, num_class, num_feature) is not a
	// valid integer.
	ErrMalformedJSON = errors.New("malformed JSON")

	// ErrUnexpectedEvent is returned when a handler receives an event kind
	// it has no interpretation for in its current context.
	ErrUnexpectedEvent = errors.New("unexpected event")

	// ErrUnexpectedKey is returned when a StartObject/StartArray/scalar
	// event arrives under a key the enclosing handler does not recognize.
	ErrUnexpectedKey = errors.New("unexpected key")

	// ErrUnsupportedBooster is returned when gradient_booster.name is not
	// the literal "gbtree". Linear boosters and others are out of scope.
	ErrUnsupportedBooster = errors.New("only GBTree-type boosters are currently supported")

	// ErrTopLevelMemberCount is returned when the top-level object does not
	// have exactly two members (version, learner).
	ErrTopLevelMemberCount = errors.New("xgboost model must have exactly two top-level members")

	// ErrArrayLengthMismatch is returned when a tree's ten flat arrays are
	// not all the same length as tree_param.num_nodes.
	ErrArrayLengthMismatch = errors.New("tree arrays have mismatched lengths")

	// ErrStackUnderflow is returned if a handler tries to pop past the root
	// of the handler stack. Reaching this indicates a bug in the handler
	// hierarchy, not a malformed document.
	ErrStackUnderflow = errors.New("handler stack underflow")

	// ErrEmptyStack is returned when an event arrives after the stack has
	// already been fully unwound.
	ErrEmptyStack = errors.New("no handler on stack")
)
