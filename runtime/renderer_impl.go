//go:build js || wasm
// +build js wasm

package runtime

import "github.com/vcrobe/nojs-inviewport/vdom"

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// rootKey is the instance key of the component passed to SetCurrentComponent.
const rootKey = "__root__"

// RendererImpl is the concrete implementation of the Renderer interface.
// It manages the component instance tree and handles rendering lifecycle.
type RendererImpl struct {
	tree             *Tree
	currentComponent Component
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching

	rendering bool
	dirty     bool
}

// NewRenderer creates a new runtime renderer that mounts under mountID.
func NewRenderer(mountID string) *RendererImpl {
	r := &RendererImpl{mountID: mountID}
	r.tree = NewTree(r.callHook)
	return r
}

// SetCurrentComponent sets the component to be rendered. A previous root is
// unmounted together with its children on the next render.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	if r.currentComponent != nil && r.currentComponent != comp {
		r.tree.Remove(rootKey)
	}
	r.currentComponent = comp
}

// RenderRoot starts the rendering process for the entire application.
// Re-render requests made while rendering (from lifecycle hooks) are
// coalesced into one more pass.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}
	if r.rendering {
		r.dirty = true
		return
	}

	r.rendering = true
	defer func() { r.rendering = false }()

	for {
		r.dirty = false
		r.renderOnce()
		if !r.dirty {
			return
		}
	}
}

func (r *RendererImpl) renderOnce() {
	r.tree.Begin()
	newVDOM := r.tree.RenderChild(r, rootKey, r.currentComponent)

	if r.prevVDOM == nil {
		// Initial render: clear and render fresh
		vdom.Clear(r.mountID)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		// Subsequent renders: patch the existing DOM
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}
	r.prevVDOM = newVDOM

	// Unmount what disappeared, then mount what is new; refs are set by now.
	r.tree.Commit()
}

// RenderChild is called by Render code to render a child component.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	return r.tree.RenderChild(r, key, childWithProps)
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}

// Unmount tears down every component, releasing their resources, and
// clears the mount element.
func (r *RendererImpl) Unmount() {
	r.tree.RemoveAll()
	r.currentComponent = nil
	r.prevVDOM = nil
	vdom.Clear(r.mountID)
}
