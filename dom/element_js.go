//go:build js || wasm
// +build js wasm

package dom

import "syscall/js"

// Compile-time assertion to ensure jsElement implements Element.
var _ Element = jsElement{}

type jsElement struct {
	v js.Value
}

// Wrap adapts a browser DOM element to Element.
func Wrap(v js.Value) Element {
	return jsElement{v: v}
}

// Unwrap returns the underlying js.Value of an element created by Wrap.
// The boolean is false for elements from other implementations.
func Unwrap(e Element) (js.Value, bool) {
	je, ok := e.(jsElement)
	if !ok {
		return js.Undefined(), false
	}
	return je.v, true
}

func (e jsElement) Equal(other Element) bool {
	o, ok := other.(jsElement)
	if !ok {
		return false
	}
	return e.v.Equal(o.v)
}

func (e jsElement) AddClass(name string) {
	e.v.Get("classList").Call("add", name)
}

func (e jsElement) RemoveClass(name string) {
	e.v.Get("classList").Call("remove", name)
}

func (e jsElement) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e jsElement) SetAttribute(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e jsElement) Attribute(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}
