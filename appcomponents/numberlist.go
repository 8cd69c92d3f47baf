// Package appcomponents holds the demo page: a list of numbered items that
// become active as they scroll into view.
package appcomponents

import (
	"slices"

	"github.com/vcrobe/nojs-inviewport/console"
	"github.com/vcrobe/nojs-inviewport/inviewport"
	"github.com/vcrobe/nojs-inviewport/runtime"
	"github.com/vcrobe/nojs-inviewport/vdom"
)

// DefaultCount is the number of items NewNumberList renders.
const DefaultCount = 25

// NumberList renders items 0..Count-1 and activates each one the first time
// its detector reports it in the viewport.
type NumberList struct {
	runtime.ComponentBase

	Count    int
	Options  string
	Platform inviewport.Platform

	Numbers     []int
	states      []*ActivationState
	activations []int
	errors      map[int]error
}

// NewNumberList returns a list of DefaultCount items.
func NewNumberList(p inviewport.Platform, options string) *NumberList {
	return &NumberList{Count: DefaultCount, Options: options, Platform: p}
}

// Numbers returns the ids 0..n-1; negative n yields none.
func Numbers(n int) []int {
	n = max(n, 0)
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func (c *NumberList) OnInit() {
	c.errors = make(map[int]error)
	c.resize(c.Count)
	console.Log("numbers:", len(c.Numbers), "items")
}

// ApplyProps lets a parent change the item count.
func (c *NumberList) ApplyProps(from runtime.Component) {
	if next, ok := from.(*NumberList); ok && next.Count != c.Count {
		c.Count = next.Count
		c.resize(next.Count)
	}
}

func (c *NumberList) Render(r runtime.Renderer) *vdom.VNode {
	items := make([]*vdom.VNode, len(c.Numbers))
	for i, id := range c.Numbers {
		items[i] = r.RenderChild(ItemKey(id), &NumberItem{
			ID:        id,
			Options:   c.Options,
			Platform:  c.Platform,
			State:     c.states[i],
			OnEntered: c.activate,
			OnError:   c.recordError,
		})
	}
	return vdom.List(map[string]any{"class": "numbers"}, items...)
}

// SetCount re-renders with n items. Items that disappear are unmounted and
// their detectors detached; surviving items keep their state.
func (c *NumberList) SetCount(n int) {
	c.Count = n
	c.resize(n)
	c.StateHasChanged()
}

// Active reports whether item id is active.
func (c *NumberList) Active(id int) bool {
	return id >= 0 && id < len(c.states) && c.states[id].Active()
}

// State returns the activation state of item id, nil if out of range.
func (c *NumberList) State(id int) *ActivationState {
	if id < 0 || id >= len(c.states) {
		return nil
	}
	return c.states[id]
}

// Activations returns the ids in the order they became active.
func (c *NumberList) Activations() []int {
	return slices.Clone(c.activations)
}

// Errors returns attach failures by item id.
func (c *NumberList) Errors() map[int]error {
	out := make(map[int]error, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

func (c *NumberList) activate(id int) {
	state := c.State(id)
	if state == nil || !state.Activate() {
		return
	}
	c.activations = append(c.activations, id)
	console.Log("item", id, "entered viewport")
}

func (c *NumberList) recordError(id int, err error) {
	c.errors[id] = err
}

func (c *NumberList) resize(n int) {
	c.Numbers = Numbers(n)
	if len(c.states) > len(c.Numbers) {
		c.states = c.states[:len(c.Numbers)]
	}
	for len(c.states) < len(c.Numbers) {
		c.states = append(c.states, NewActivationState())
	}
}
