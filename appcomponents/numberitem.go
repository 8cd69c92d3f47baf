package appcomponents

import (
	"strconv"

	"github.com/vcrobe/nojs-inviewport/console"
	"github.com/vcrobe/nojs-inviewport/dom"
	"github.com/vcrobe/nojs-inviewport/inviewport"
	"github.com/vcrobe/nojs-inviewport/runtime"
	"github.com/vcrobe/nojs-inviewport/vdom"
)

// ActiveClass is added to items that have entered the viewport.
const ActiveClass = "active"

// ItemKey is the component and element key of the item with the given id.
func ItemKey(id int) string {
	return "item-" + strconv.Itoa(id)
}

// NumberItem renders one list entry and owns the detector watching it.
type NumberItem struct {
	runtime.ComponentBase

	ID        int
	Options   string
	Platform  inviewport.Platform
	State     *ActivationState
	OnEntered func(id int)
	OnError   func(id int, err error)

	element     dom.Element
	detector    *inviewport.Detector
	unsubscribe func()
}

// ApplyProps takes callbacks from the parent's fresh instance. Options and
// platform are read once at mount; a running observation is not reconfigured.
func (c *NumberItem) ApplyProps(from runtime.Component) {
	next, ok := from.(*NumberItem)
	if !ok {
		return
	}
	c.OnEntered = next.OnEntered
	c.OnError = next.OnError
}

func (c *NumberItem) Render(r runtime.Renderer) *vdom.VNode {
	class := "item"
	if c.State.Active() {
		class += " " + ActiveClass
	}

	return vdom.ListItem(strconv.Itoa(c.ID), map[string]any{
		"class":   class,
		"data-id": c.ID,
	}).WithKey(ItemKey(c.ID)).WithRef(c.setElement)
}

func (c *NumberItem) setElement(el dom.Element) {
	c.element = el
}

// OnMount attaches the detector to the rendered element, unless the item
// was already active when it (re)mounted.
func (c *NumberItem) OnMount() {
	c.unsubscribe = c.State.Subscribe(c.StateHasChanged)
	if c.State.Active() {
		return
	}

	c.detector = inviewport.New(c.Platform)
	c.detector.OnEnteredViewport(c.entered)
	if err := c.detector.Attach(c.element, c.Options); err != nil {
		c.fail(err)
	}
}

// OnUnmount detaches the detector so no observation outlives the element.
func (c *NumberItem) OnUnmount() {
	if c.detector != nil {
		c.detector.Detach()
	}
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Element returns the element the item rendered into.
func (c *NumberItem) Element() dom.Element {
	return c.element
}

// Detector returns the item's detector, nil if none was created.
func (c *NumberItem) Detector() *inviewport.Detector {
	return c.detector
}

func (c *NumberItem) entered(inviewport.Event) {
	if c.OnEntered != nil {
		c.OnEntered(c.ID)
	}
}

func (c *NumberItem) fail(err error) {
	console.Error("item", c.ID, "cannot observe viewport:", err)
	if c.OnError != nil {
		c.OnError(c.ID, err)
	}
}
