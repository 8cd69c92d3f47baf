package dom

// Element is an opaque handle to a rendered UI element.
// This interface has NO build tags, so detectors and components written against it
// run unchanged under WASM (see Wrap) and in native tests (see package memdom).
type Element interface {
	// Equal reports whether other refers to the same underlying element.
	Equal(other Element) bool

	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool

	SetAttribute(name, value string)
	// Attribute returns the attribute value and whether it is present.
	Attribute(name string) (string, bool)
}
