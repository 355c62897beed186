// Package redisearch builds the FT.* commands this service issues and decodes
// their replies. Search replies carry no schema: they are flat positional
// sequences, so the decoder works over a small tagged value type instead of
// assuming concrete Go types coming back from the client.
package redisearch

import (
	"fmt"
	"strconv"
)

// Kind discriminates the shapes a reply value can take.
type Kind int

const (
	KindNil Kind = iota
	KindInteger
	KindString
	KindDouble
	KindArray
)

// Value is one node of a generic engine reply: a scalar or a sequence of
// further values.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	a    []Value
}

func Integer(i int64) Value   { return Value{kind: KindInteger, i: i} }
func String(s string) Value   { return Value{kind: KindString, s: s} }
func Double(f float64) Value  { return Value{kind: KindDouble, f: f} }
func Array(vs ...Value) Value { return Value{kind: KindArray, a: vs} }

func (v Value) Kind() Kind { return v.kind }

// FromReply converts the dynamically-typed reply the redis client returns
// into a Value tree. Unrecognized scalar types are a decode error rather than
// a silent coercion.
func FromReply(raw any) (Value, error) {
	switch r := raw.(type) {
	case nil:
		return Value{kind: KindNil}, nil
	case int64:
		return Integer(r), nil
	case string:
		return String(r), nil
	case []byte:
		return String(string(r)), nil
	case float64:
		return Double(r), nil
	case []any:
		vs := make([]Value, len(r))
		for i, item := range r {
			v, err := FromReply(item)
			if err != nil {
				return Value{}, err
			}

			vs[i] = v
		}

		return Array(vs...), nil
	default:
		return Value{}, decodeErrorf("unsupported reply type %T", raw)
	}
}

// Uint64 coerces an integer or numeric string element to uint64
func (v Value) Uint64() (uint64, error) {
	switch v.kind {
	case KindInteger:
		if v.i < 0 {
			return 0, decodeErrorf("expected unsigned integer, got %d", v.i)
		}

		return uint64(v.i), nil
	case KindString:
		n, err := strconv.ParseUint(v.s, 10, 64)
		if err != nil {
			return 0, decodeErrorf("expected unsigned integer, got %q", v.s)
		}

		return n, nil
	default:
		return 0, decodeErrorf("expected integer, got %s", v.kind)
	}
}

// AsString coerces a string or integer element to its textual form
func (v Value) AsString() (string, error) {
	switch v.kind {
	case KindString:
		return v.s, nil
	case KindInteger:
		return strconv.FormatInt(v.i, 10), nil
	default:
		return "", decodeErrorf("expected string, got %s", v.kind)
	}
}

// Float32 coerces a double or numeric string element to float32. Scores come
// back as bulk strings under RESP2 and doubles under RESP3.
func (v Value) Float32() (float32, error) {
	switch v.kind {
	case KindDouble:
		return float32(v.f), nil
	case KindString:
		f, err := strconv.ParseFloat(v.s, 32)
		if err != nil {
			return 0, decodeErrorf("expected float, got %q", v.s)
		}

		return float32(f), nil
	default:
		return 0, decodeErrorf("expected float, got %s", v.kind)
	}
}

// Array returns the element sequence, or false for scalar values
func (v Value) Array() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}

	return v.a, true
}

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindDouble:
		return "double"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}
