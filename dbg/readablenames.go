// Package dbg turns geometry values into random readable names. It
// flagrantly leaks memory but generates the names lazily, so it's not a
// problem unless you're actually using it. This is helpful for telling
// dozens of near-identical triangles apart in debug output and rendered
// labels.
package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
}

// Name returns a stable readable name for v within this process run.
// Comparable values are keyed by value, so two equal vectors share a
// name; pointers are keyed by identity; values that can't be map keys
// (polygons, slices) fall back to their formatted form. Nil is Ø.
func Name(v interface{}) string {
	if v == nil {
		return "Ø"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return "Ø"
		}
	}

	key := v
	if !rv.Comparable() {
		key = fmt.Sprint(v)
	}
	if r, ok := memo[key]; ok {
		return r
	}
	r := title(petname.Adjective()) + title(petname.Name())
	memo[key] = r
	return r
}

// NonDeterministicMode reseeds the name generator so names differ
// between runs. Names are handed out in order of demand, so the same
// name never refers to the same value across runs anyway; turning this
// on for interactive sessions makes that impossible to forget.
func NonDeterministicMode() {
	petname.NonDeterministicMode()
}

// Pet names are ASCII, so capitalizing the first byte is enough.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
