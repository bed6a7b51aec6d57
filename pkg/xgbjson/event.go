// Package xgbjson implements a streaming, stack-based interpreter for the
// XGBoost model JSON schema. It consumes a linear event stream (the shape a
// SAX-style JSON tokenizer would produce) and builds a [treemodel.Model],
// reshaping each tree from XGBoost's flat, id-indexed layout into the
// recursive child-indexed layout the destination tree library expects.
package xgbjson

// Kind identifies the shape of an [Event].
type Kind uint8

// Event kinds, one per JSON token the underlying tokenizer can produce.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindInt64
	KindUint64
	KindDouble
	KindString
	KindKey
	KindStartObject
	KindEndObject
	KindStartArray
	KindEndArray
)

// Event is a tagged variant over the JSON token stream. Scalar events carry
// their value in the field matching their Kind; Key and String carry Str;
// EndObject and EndArray carry Count, the tokenizer's member/element count
// for that container (informational except where a handler validates it).
type Event struct {
	Kind   Kind
	Bool   bool
	Int    int32
	Uint   uint32
	Int64  int64
	Uint64 uint64
	Double float64
	Str    string
	Count  int
}

// EventNull returns a Null event.
func EventNull() Event { return Event{Kind: KindNull} }

// EventBool returns a Bool event carrying v.
func EventBool(v bool) Event { return Event{Kind: KindBool, Bool: v} }

// EventInt returns an Int event carrying v.
func EventInt(v int32) Event { return Event{Kind: KindInt, Int: v} }

// EventUint returns a Uint event carrying v.
func EventUint(v uint32) Event { return Event{Kind: KindUint, Uint: v} }

// EventInt64 returns an Int64 event carrying v.
func EventInt64(v int64) Event { return Event{Kind: KindInt64, Int64: v} }

// EventUint64 returns a Uint64 event carrying v.
func EventUint64(v uint64) Event { return Event{Kind: KindUint64, Uint64: v} }

// EventDouble returns a Double event carrying v.
func EventDouble(v float64) Event { return Event{Kind: KindDouble, Double: v} }

// EventString returns a String event carrying v.
func EventString(v string) Event { return Event{Kind: KindString, Str: v} }

// EventKey returns a Key event carrying v.
func EventKey(v string) Event { return Event{Kind: KindKey, Str: v} }

// EventStartObject returns a StartObject event.
func EventStartObject() Event { return Event{Kind: KindStartObject} }

// EventEndObject returns an EndObject event carrying the member count.
func EventEndObject(count int) Event { return Event{Kind: KindEndObject, Count: count} }

// EventStartArray returns a StartArray event.
func EventStartArray() Event { return Event{Kind: KindStartArray} }

// EventEndArray returns an EndArray event carrying the element count.
func EventEndArray(count int) Event { return Event{Kind: KindEndArray, Count: count} }
