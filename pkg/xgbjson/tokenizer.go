package xgbjson

import (
	"fmt"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// streamConfig is the jsoniter configuration Stream borrows its iterator
// from. It does no numeric typing of its own: the split of number literals
// into Int/Uint/Int64/Uint64/Double events is done by streamNumber.
var streamConfig = jsoniter.ConfigCompatibleWithStandardLibrary

// Stream reads one JSON document from r, synthesizing the dispatcher's
// Event stream from jsoniter's token-level iterator, and returns the first
// error either side reports. It is the adapter between an off-the-shelf
// streaming tokenizer and the schema interpreter; the interpreter itself
// never touches jsoniter types.
func Stream(r io.Reader, d *Dispatcher) error {
	it := streamConfig.BorrowIterator(nil)
	defer streamConfig.ReturnIterator(it)

	it.Reset(r)

	if err := streamValue(it, d); err != nil {
		return err
	}

	if it.Error != nil && it.Error != io.EOF {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, it.Error)
	}

	return nil
}

func streamValue(it *jsoniter.Iterator, d *Dispatcher) error {
	switch it.WhatIsNext() {
	case jsoniter.ObjectValue:
		return streamObject(it, d)
	case jsoniter.ArrayValue:
		return streamArray(it, d)
	case jsoniter.StringValue:
		return d.Dispatch(EventString(it.ReadString()))
	case jsoniter.NumberValue:
		return streamNumber(it, d)
	case jsoniter.BoolValue:
		return d.Dispatch(EventBool(it.ReadBool()))
	case jsoniter.NilValue:
		it.ReadNil()

		return d.Dispatch(EventNull())
	default:
		return fmt.Errorf("%w: unrecognized token", ErrMalformedJSON)
	}
}

func streamObject(it *jsoniter.Iterator, d *Dispatcher) error {
	if err := d.Dispatch(EventStartObject()); err != nil {
		return err
	}

	count := 0

	field := it.ReadObject()
	for field != "" {
		if err := d.Dispatch(EventKey(field)); err != nil {
			return err
		}

		if err := streamValue(it, d); err != nil {
			return err
		}

		count++

		field = it.ReadObject()
	}

	if it.Error != nil && it.Error != io.EOF {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, it.Error)
	}

	return d.Dispatch(EventEndObject(count))
}

func streamArray(it *jsoniter.Iterator, d *Dispatcher) error {
	if err := d.Dispatch(EventStartArray()); err != nil {
		return err
	}

	count := 0

	for it.ReadArray() {
		if err := streamValue(it, d); err != nil {
			return err
		}

		count++
	}

	if it.Error != nil && it.Error != io.EOF {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, it.Error)
	}

	return d.Dispatch(EventEndArray(count))
}

// streamNumber replicates RapidJSON's SAX numeric dispatch: a literal with
// no fractional part and no exponent that fits a signed or unsigned 32 or
// 64 bit integer is delivered as that integer kind; everything else is a
// Double.
func streamNumber(it *jsoniter.Iterator, d *Dispatcher) error {
	num := it.ReadNumber()

	if i, err := num.Int64(); err == nil {
		if i >= 0 {
			if u := uint64(i); u <= 0xFFFFFFFF {
				return d.Dispatch(EventUint(uint32(u)))
			}

			return d.Dispatch(EventUint64(uint64(i)))
		}

		if i >= -(1 << 31) {
			return d.Dispatch(EventInt(int32(i)))
		}

		return d.Dispatch(EventInt64(i))
	}

	if u, err := strconv.ParseUint(num.String(), 10, 64); err == nil {
		return d.Dispatch(EventUint64(u))
	}

	f, err := num.Float64()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	return d.Dispatch(EventDouble(f))
}
