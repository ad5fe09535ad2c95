// SPDX-License-Identifier: MIT

package solution

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Kind tags the concrete type held by an Answer.
type Kind uint8

const (
	KindInt8 Kind = iota + 1
	KindInt16
	KindInt32
	KindInt64
	KindInt
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint
	KindString
)

var kindNames = [...]string{
	KindInt8:   "int8",
	KindInt16:  "int16",
	KindInt32:  "int32",
	KindInt64:  "int64",
	KindInt:    "int",
	KindUint8:  "uint8",
	KindUint16: "uint16",
	KindUint32: "uint32",
	KindUint64: "uint64",
	KindUint:   "uint",
	KindString: "string",
}

// String returns the Go name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}

	return "invalid"
}

// Answer is a tagged union over the integer widths and strings a puzzle
// may produce. The zero Answer is invalid and renders as "".
type Answer struct {
	kind Kind
	i    int64
	u    uint64
	s    string
}

// Int wraps a signed integer, keeping its width.
func Int[T constraints.Signed](v T) Answer {
	return Answer{kind: signedKind(v), i: int64(v)}
}

// Uint wraps an unsigned integer, keeping its width.
func Uint[T constraints.Unsigned](v T) Answer {
	return Answer{kind: unsignedKind(v), u: uint64(v)}
}

// Of wraps any integer, choosing a signed or unsigned kind from T.
func Of[T constraints.Integer](v T) Answer {
	var zero T
	if zero-1 < zero {
		return Answer{kind: signedKind(v), i: int64(v)}
	}

	return Answer{kind: unsignedKind(v), u: uint64(v)}
}

// Str wraps a string answer.
func Str(s string) Answer {
	return Answer{kind: KindString, s: s}
}

// signedKind maps the dynamic type of v to its Kind; named types fall
// back to KindInt64.
func signedKind[T constraints.Integer](v T) Kind {
	switch any(v).(type) {
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int:
		return KindInt
	}

	return KindInt64
}

func unsignedKind[T constraints.Integer](v T) Kind {
	switch any(v).(type) {
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint:
		return KindUint
	}

	return KindUint64
}

// Kind reports the tag of a.
func (a Answer) Kind() Kind { return a.kind }

// IsZero reports whether a was never set.
func (a Answer) IsZero() bool { return a.kind == 0 }

// String renders the value in decimal, or verbatim for strings.
func (a Answer) String() string {
	switch {
	case a.kind == 0:
		return ""
	case a.kind == KindString:
		return a.s
	case a.kind >= KindUint8:
		return strconv.FormatUint(a.u, 10)
	default:
		return strconv.FormatInt(a.i, 10)
	}
}
