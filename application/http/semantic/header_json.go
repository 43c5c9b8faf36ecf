package semantic

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// MarshalJSON encodes h as an object in insertion order.
// A single value becomes a string and a list becomes an array.
func (h *Headers) MarshalJSON() ([]byte, error) {
	stream := jsoniter.ConfigFastest.BorrowStream(nil)
	defer jsoniter.ConfigFastest.ReturnStream(stream)

	stream.WriteObjectStart()
	for idx, name := range h.order {
		if idx > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(name)

		v := h.entries[name]
		if !v.list && len(v.values) == 1 {
			stream.WriteString(v.values[0])
			continue
		}
		stream.WriteArrayStart()
		for i, value := range v.values {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteString(value)
		}
		stream.WriteArrayEnd()
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, errors.Wrap(stream.Error, "encoding headers")
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// UnmarshalJSON replaces h with the fields of a JSON object, keeping their order.
func (h *Headers) UnmarshalJSON(data []byte) error {
	iter := jsoniter.ConfigFastest.BorrowIterator(data)
	defer jsoniter.ConfigFastest.ReturnIterator(iter)

	var fields []Field
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, name string) bool {
		switch iter.WhatIsNext() {
		case jsoniter.StringValue:
			fields = append(fields, Field{Name: name, Value: Single(iter.ReadString())})
		case jsoniter.ArrayValue:
			var values []string
			iter.ReadVal(&values)
			fields = append(fields, Field{Name: name, Value: List(values...)})
		default:
			iter.ReportError("decoding headers", "value of "+name+" must be a string or an array of strings")
			return false
		}
		return true
	})
	if iter.Error != nil {
		return errors.Wrap(iter.Error, "decoding headers")
	}

	return h.SetAll(fields)
}
