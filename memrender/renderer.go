// Package memrender renders components into memdom elements, without a
// browser or WASM. Tests and the headless demo use it.
package memrender

import (
	"fmt"

	"github.com/vcrobe/nojs-inviewport/dom/memdom"
	"github.com/vcrobe/nojs-inviewport/runtime"
	"github.com/vcrobe/nojs-inviewport/vdom"
)

const rootKey = "__root__"

// Renderer is a minimal in-memory harness that implements runtime.Renderer
// without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows callers to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree and the memdom elements behind it
//
// Commits run the full component lifecycle. Every element node gets a
// memdom.Element whose identity is stable across renders (by VNode.Key when
// set, by tree path otherwise), its attributes are synced, and its Ref is
// called before OnMount.
type Renderer struct {
	tree        *runtime.Tree
	component   runtime.Component
	currentVDOM *vdom.VNode
	elements    map[string]*memdom.Element
	renders     int

	rendering bool
	dirty     bool
}

// Compile-time assertion to ensure Renderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*Renderer)(nil)

// New creates a renderer attached to the given component.
func New(comp runtime.Component) *Renderer {
	r := &Renderer{
		tree:      runtime.NewTree(nil),
		component: comp,
		elements:  make(map[string]*memdom.Element),
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs the initial render of the component.
// Call it once to get the initial VDOM.
func (r *Renderer) RenderRoot() *vdom.VNode {
	r.ReRender()
	return r.currentVDOM
}

// ReRender performs a render cycle. This is called by StateHasChanged() when
// the component requests a re-render; requests made during a cycle are
// coalesced into one more pass.
func (r *Renderer) ReRender() {
	if r.rendering {
		r.dirty = true
		return
	}
	r.rendering = true
	defer func() { r.rendering = false }()

	for {
		r.dirty = false
		r.renders++
		r.tree.Begin()
		r.currentVDOM = r.tree.RenderChild(r, rootKey, r.component)
		r.commitDOM()
		r.tree.Commit()
		if !r.dirty {
			return
		}
	}
}

// RenderChild renders a child component through the shared lifecycle tree.
func (r *Renderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	return r.tree.RenderChild(r, key, child)
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
// Callers use this to inspect the component's output after renders.
func (r *Renderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// Element returns the element for a VNode key or tree path ("" is the root).
func (r *Renderer) Element(id string) *memdom.Element {
	return r.elements[id]
}

// Instance returns the live component rendered under key.
func (r *Renderer) Instance(key string) (runtime.Component, bool) {
	return r.tree.Instance(key)
}

// RenderCount returns the number of completed render passes.
func (r *Renderer) RenderCount() int {
	return r.renders
}

// Unmount tears the whole tree down, running every OnUnmount.
func (r *Renderer) Unmount() {
	r.tree.RemoveAll()
	r.currentVDOM = nil
	r.elements = make(map[string]*memdom.Element)
}

// commitDOM reconciles the memdom elements with the current VDOM.
func (r *Renderer) commitDOM() {
	seen := make(map[string]bool)

	vdom.Walk(r.currentVDOM, func(path string, n *vdom.VNode) {
		if n.Tag == vdom.TextTag {
			return
		}
		id := path
		if n.Key != "" {
			id = n.Key
		}
		seen[id] = true

		el, ok := r.elements[id]
		if !ok {
			el = memdom.New(n.Tag)
			r.elements[id] = el
		}
		for _, k := range el.AttributeNames() {
			if _, ok := attrString(n.Attributes[k]); !ok {
				el.RemoveAttribute(k)
			}
		}
		for k, v := range n.Attributes {
			if s, ok := attrString(v); ok {
				el.SetAttribute(k, s)
			}
		}
		if n.Ref != nil {
			n.Ref(el)
		}
	})

	for id := range r.elements {
		if !seen[id] {
			delete(r.elements, id)
		}
	}
}

// attrString renders an attribute value; false reports that the attribute
// is absent (missing or boolean false).
func attrString(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case bool:
		return "", val
	default:
		return fmt.Sprint(val), true
	}
}
