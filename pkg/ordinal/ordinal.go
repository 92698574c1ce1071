// Package ordinal maps small positive integers to their English ordinal word
// ("first", "second", ...). Inputs outside 1..20 yield fixed sentinel strings
// rather than errors so list readouts never fail mid-way.
//
// The table spells 8 and 40 as "eighth" and "fortieth". Earlier speech
// skills shipped "eigth" and "fourtieth", so ordinal readouts of those
// positions sound different from responses built with them.
package ordinal

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// ErrInvalidArgument is returned when Word receives a value that is not a
// number.
var ErrInvalidArgument = errors.New("ordinal: invalid argument")

// Sentinel strings spoken in place of an ordinal word.
const (
	NegativeUnsupported = "Negative numbers are not supported"
	AboveMaxUnsupported = "Numbers greater than 20 are not yet supported"
)

// Max is the largest value Word translates.
const Max = 20

var words = map[int]string{
	1:  "first",
	2:  "second",
	3:  "third",
	4:  "fourth",
	5:  "fifth",
	6:  "sixth",
	7:  "seventh",
	8:  "eighth",
	9:  "ninth",
	10: "tenth",
	11: "eleventh",
	12: "twelfth",
	13: "thirteenth",
	14: "fourteenth",
	15: "fifteenth",
	16: "sixteenth",
	17: "seventeenth",
	18: "eighteenth",
	19: "nineteenth",
	20: "twentieth",
	30: "thirtieth",
	40: "fortieth",
	50: "fiftieth",
	60: "sixtieth",
	70: "seventieth",
	80: "eightieth",
	90: "ninetieth",
}

// Word returns the ordinal word for n. Any Go numeric kind is accepted and
// truncated toward zero. Values <= 0 and > Max return the sentinel strings.
func Word(n any) (string, error) {
	value, ok := toInt(n)
	if !ok {
		return "", fmt.Errorf("%w: %T is not a number", ErrInvalidArgument, n)
	}
	switch {
	case value <= 0:
		return NegativeUnsupported, nil
	case value > Max:
		return AboveMaxUnsupported, nil
	}
	return words[int(value)], nil
}

// Lookup reads the raw table, including the round tens above Max that Word
// never reaches.
func Lookup(n int) (string, bool) {
	word, ok := words[n]
	return word, ok
}

func toInt(n any) (int64, bool) {
	if n == nil {
		return 0, false
	}
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return math.MaxInt64, true
		}
		return int64(u), true
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		f = math.Max(math.Min(math.Trunc(f), math.MaxInt32), math.MinInt32)
		return int64(f), true
	default:
		return 0, false
	}
}
