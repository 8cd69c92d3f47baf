// Package runtime drives components: it keeps keyed instances alive across
// renders, runs their lifecycle hooks and hands their VDOM to a renderer.
// Everything here except the WASM renderer builds natively, so components
// can be exercised in plain Go tests.
package runtime

import "github.com/vcrobe/nojs-inviewport/vdom"

// Component is anything that can produce a VDOM subtree.
//
// The renderer passed to Render is the one to use for nested components;
// SetRenderer is called before every render so StateHasChanged reaches the
// renderer that currently owns the instance.
type Component interface {
	Render(r Renderer) *vdom.VNode
	SetRenderer(r Renderer)
}
