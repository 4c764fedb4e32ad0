package models

import (
	"math"
	"strconv"
	"time"
)

// Kind is the inferred kind of a single cell value.
type Kind int

const (
	// KindMissing is an empty cell.
	KindMissing Kind = iota
	// KindInt is an integral number.
	KindInt
	// KindFloat is a non-integral number.
	KindFloat
	// KindBool is a TRUE/FALSE cell.
	KindBool
	// KindDateTime is a number carrying a date format.
	KindDateTime
	// KindText is anything else.
	KindText
)

// Value is a single parsed cell.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Bool  bool
	Time  time.Time
	// Text is the original cell text.
	Text string
}

// Missing returns the missing value.
func Missing() Value { return Value{Kind: KindMissing} }

// IsMissing reports whether the cell was empty.
func (v Value) IsMissing() bool { return v.Kind == KindMissing }

// IsNumber reports whether the value is an int or a float.
func (v Value) IsNumber() bool { return v.Kind == KindInt || v.Kind == KindFloat }

// Number returns the numeric payload as float64.
func (v Value) Number() float64 {
	switch v.Kind {
	case KindInt:
		return float64(v.Int)
	case KindFloat:
		return v.Float
	default:
		return math.NaN()
	}
}

// Key returns a string that identifies the value for distinct counting.
// Values of different kinds never share a key.
func (v Value) Key() string {
	switch v.Kind {
	case KindInt:
		return "n:" + strconv.FormatInt(v.Int, 10)
	case KindFloat:
		// 2.0 and 2 are the same value.
		return "n:" + strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBool:
		return "b:" + strconv.FormatBool(v.Bool)
	case KindDateTime:
		return "t:" + v.Time.Format(time.RFC3339Nano)
	case KindText:
		return "s:" + v.Text
	default:
		return ""
	}
}
