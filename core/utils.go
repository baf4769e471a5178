package core

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/kat-co/vala"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// NotNil is a vala.Checker accepting any non-nil value, including interfaces holding
// non-pointer values (vala.IsNotNil panics on those).
func NotNil(v interface{}, name string) vala.Checker {
	return func() (bool, string) {
		return !isNil(v), fmt.Sprintf("Parameter was nil: %s", name)
	}
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
