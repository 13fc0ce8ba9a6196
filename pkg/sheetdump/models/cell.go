// Package models defines the workbook data model used by sheetdump.
package models

import (
	"strconv"
	"time"
)

// DefaultDateLayout is the layout used to render date cells when none is set.
const DefaultDateLayout = "2006-01-02 15:04:05"

// Kind identifies which value a Cell holds.
type Kind int

const (
	// KindEmpty is an absent cell.
	KindEmpty Kind = iota
	// KindString is a text cell.
	KindString
	// KindInt is a whole number.
	KindInt
	// KindFloat is a decimal number.
	KindFloat
	// KindBool is a TRUE/FALSE cell.
	KindBool
	// KindDate is a number formatted as a date or time.
	KindDate
)

// Cell is a single spreadsheet value. Only the field matching Kind is set.
type Cell struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
	Bool  bool
	Time  time.Time
}

// Empty returns an absent cell.
func Empty() Cell { return Cell{} }

// String returns a text cell.
func String(s string) Cell { return Cell{Kind: KindString, Str: s} }

// Int returns a whole-number cell.
func Int(i int64) Cell { return Cell{Kind: KindInt, Int: i} }

// Float returns a decimal cell.
func Float(f float64) Cell { return Cell{Kind: KindFloat, Float: f} }

// Bool returns a boolean cell.
func Bool(b bool) Cell { return Cell{Kind: KindBool, Bool: b} }

// Date returns a date cell.
func Date(t time.Time) Cell { return Cell{Kind: KindDate, Time: t} }

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty }

// String renders the cell with the default date layout.
func (c Cell) String() string {
	return c.Format(DefaultDateLayout)
}

// Format renders the cell as text. Absent cells render as "".
func (c Cell) Format(dateLayout string) string {
	switch c.Kind {
	case KindString:
		return c.Str
	case KindInt:
		return strconv.FormatInt(c.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(c.Float, 'f', -1, 64)
	case KindBool:
		if c.Bool {
			return "True"
		}
		return "False"
	case KindDate:
		if dateLayout == "" {
			dateLayout = DefaultDateLayout
		}
		return c.Time.Format(dateLayout)
	default:
		return ""
	}
}

// ParseValue converts a raw cell string into a typed cell.
// Returns an int cell for integers, a float cell for decimals,
// an empty cell for "", or a text cell otherwise.
func ParseValue(s string) Cell {
	if s == "" {
		return Empty()
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	return String(s)
}
