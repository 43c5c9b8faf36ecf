package semantic

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// FieldValue is either a single value or an ordered list of values
// appearing under one field name.
type FieldValue struct {
	values []string
	list   bool
}

func Single(value string) FieldValue {
	return FieldValue{values: []string{value}}
}

func List(values ...string) FieldValue {
	return FieldValue{values: slices.Clone(values), list: true}
}

func (v FieldValue) IsList() bool { return v.list }

// Values returns the value as a list. A single value is a list of one.
func (v FieldValue) Values() []string {
	return append([]string{}, v.values...)
}

func (v FieldValue) Equal(other FieldValue) bool {
	return v.list == other.list && slices.Equal(v.values, other.values)
}

func (v FieldValue) appended(other FieldValue) FieldValue {
	values := make([]string, 0, len(v.values)+len(other.values))
	values = append(values, v.values...)
	values = append(values, other.values...)
	return FieldValue{values: values, list: true}
}

type Field struct {
	Name  string
	Value FieldValue
}

// Headers is a field name to value mapping with case-insensitive lookup.
// The casing a name was last set with is kept for output.
// Entries are kept in insertion order; re-setting a name moves it to the end.
//
// The zero value is an empty Headers ready to use.
type Headers struct {
	entries map[string]FieldValue // original-cased name -> value
	names   map[string]string     // lowercased name -> original-cased name
	order   []string
}

func NewHeaders(fields ...Field) (Headers, error) {
	var h Headers
	if err := h.SetAll(fields); err != nil {
		return Headers{}, err
	}
	return h, nil
}

// FieldsFrom converts a plain map into fields, sorted by name.
// Every value becomes a list.
func FieldsFrom(m map[string][]string) []Field {
	keys := maps.Keys(m)
	slices.Sort(keys)

	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, Field{Name: k, Value: List(m[k]...)})
	}
	return fields
}

// SetAll replaces every entry with fields.
// If any name is invalid, h is left untouched.
func (h *Headers) SetAll(fields []Field) error {
	for _, f := range fields {
		if err := assertValidFieldName(f.Name); err != nil {
			return err
		}
	}

	h.reset()
	for _, f := range fields {
		h.set(f.Name, f.Value)
	}
	return nil
}

// Set overwrites any entry with a case-insensitively equal name.
// The previous casing is discarded.
func (h *Headers) Set(name string, value FieldValue) error {
	if err := assertValidFieldName(name); err != nil {
		return err
	}
	h.set(name, value)
	return nil
}

// Add appends value to the existing entry, keeping the existing casing.
// Without an existing entry it behaves like [Headers.Set].
func (h *Headers) Add(name string, value FieldValue) error {
	if err := assertValidFieldName(name); err != nil {
		return err
	}

	existing, ok := h.names[strings.ToLower(name)]
	if !ok {
		h.set(name, value)
		return nil
	}

	h.set(existing, h.entries[existing].appended(value))
	return nil
}

func (h *Headers) Remove(name string) error {
	if err := assertValidFieldName(name); err != nil {
		return err
	}
	h.remove(name)
	return nil
}

// Get returns the values of name, or an empty list if absent.
func (h *Headers) Get(name string) []string {
	original, ok := h.names[strings.ToLower(name)]
	if !ok {
		return []string{}
	}
	return h.entries[original].Values()
}

// Line returns the values of name joined by ','.
func (h *Headers) Line(name string) string {
	return strings.Join(h.Get(name), ",")
}

func (h *Headers) Has(name string) bool {
	_, ok := h.names[strings.ToLower(name)]
	return ok
}

func (h *Headers) Len() int { return len(h.order) }

// Names returns the stored names in insertion order.
func (h *Headers) Names() []string {
	return slices.Clone(h.order)
}

// Fields returns all the key-values in the header.
func (h *Headers) Fields() map[string][]string {
	clone := make(map[string][]string, len(h.entries))
	for k, v := range h.entries {
		clone[k] = v.Values()
	}
	return clone
}

// Entries returns all the entries in insertion order.
func (h *Headers) Entries() []Field {
	fields := make([]Field, 0, len(h.order))
	for _, name := range h.order {
		v := h.entries[name]
		fields = append(fields, Field{Name: name, Value: FieldValue{values: v.Values(), list: v.list}})
	}
	return fields
}

func (h *Headers) reset() {
	h.entries = make(map[string]FieldValue)
	h.names = make(map[string]string)
	h.order = nil
}

func (h *Headers) set(name string, value FieldValue) {
	if h.entries == nil {
		h.reset()
	}

	h.remove(name)

	h.entries[name] = FieldValue{values: slices.Clone(value.values), list: value.list}
	h.names[strings.ToLower(name)] = name
	h.order = append(h.order, name)
}

func (h *Headers) remove(name string) {
	key := strings.ToLower(name)
	original, ok := h.names[key]
	if !ok {
		return
	}

	delete(h.entries, original)
	delete(h.names, key)
	if idx := slices.Index(h.order, original); idx >= 0 {
		h.order = slices.Delete(h.order, idx, idx+1)
	}
}

// holds reports whether an entry with exactly this casing holds value.
func (h *Headers) holds(name string, value FieldValue) bool {
	v, ok := h.entries[name]
	return ok && v.Equal(value)
}

// holdsExactly reports whether SetAll(fields) would be a no-op.
func (h *Headers) holdsExactly(fields []Field) bool {
	if len(fields) != len(h.order) {
		return false
	}
	for idx, f := range fields {
		if h.order[idx] != f.Name || !h.entries[f.Name].Equal(f.Value) {
			return false
		}
	}
	return true
}

func (h *Headers) clone() Headers {
	if h.entries == nil {
		return Headers{}
	}

	entries := make(map[string]FieldValue, len(h.entries))
	for k, v := range h.entries {
		entries[k] = FieldValue{values: slices.Clone(v.values), list: v.list}
	}
	return Headers{
		entries: entries,
		names:   maps.Clone(h.names),
		order:   slices.Clone(h.order),
	}
}

func assertValidFieldName(name string) error {
	if name == "" {
		return errors.Wrap(ErrInvalidHeaderKey, "<empty string> was provided")
	}
	return nil
}
