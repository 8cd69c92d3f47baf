// Package memdom provides an in-memory dom.Element for native builds.
// Elements compare by pointer identity; class list and attributes are
// plain maps with no layout behind them.
package memdom

import (
	"slices"
	"strings"

	"github.com/vcrobe/nojs-inviewport/dom"
)

// Compile-time assertion to ensure Element implements dom.Element.
var _ dom.Element = (*Element)(nil)

// Element is an in-memory stand-in for a DOM element.
type Element struct {
	Name    string
	classes []string
	attrs   map[string]string
}

// New creates an element. The name is only used for debugging output.
func New(name string) *Element {
	return &Element{Name: name, attrs: make(map[string]string)}
}

func (e *Element) Equal(other dom.Element) bool {
	o, ok := other.(*Element)
	return ok && o == e
}

func (e *Element) AddClass(name string) {
	if !e.HasClass(name) {
		e.classes = append(e.classes, name)
	}
}

func (e *Element) RemoveClass(name string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == name })
}

func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// Classes returns the class list in insertion order.
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

func (e *Element) SetAttribute(name, value string) {
	if name == "class" {
		e.classes = strings.Fields(value)
		return
	}
	e.attrs[name] = value
}

func (e *Element) Attribute(name string) (string, bool) {
	if name == "class" {
		return strings.Join(e.classes, " "), len(e.classes) > 0
	}
	v, ok := e.attrs[name]
	return v, ok
}

// RemoveAttribute deletes an attribute. Removing "class" clears the class list.
func (e *Element) RemoveAttribute(name string) {
	if name == "class" {
		e.classes = nil
		return
	}
	delete(e.attrs, name)
}

// AttributeNames returns the names of the attributes present, sorted.
func (e *Element) AttributeNames() []string {
	names := make([]string, 0, len(e.attrs)+1)
	for k := range e.attrs {
		names = append(names, k)
	}
	if len(e.classes) > 0 {
		names = append(names, "class")
	}
	slices.Sort(names)
	return names
}

func (e *Element) String() string {
	return "<" + e.Name + ">"
}
