package runtime

import "github.com/vcrobe/nojs-inviewport/vdom"

// Renderer is the part of a renderer visible to components.
type Renderer interface {
	// RenderChild renders child under key. The first instance rendered for
	// a key is kept; later instances only supply props (see PropUpdater).
	RenderChild(key string, child Component) *vdom.VNode

	// ReRender schedules a new render cycle. Requests made while a cycle is
	// running are coalesced into one more cycle.
	ReRender()
}
