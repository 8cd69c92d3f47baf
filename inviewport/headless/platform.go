// Package headless is an in-memory inviewport.Platform driven by explicit
// geometry. Elements are placed as rectangles in content coordinates, the
// content scrolls vertically under a fixed viewport, and Flush computes
// intersection records the way a browser does on each rendering frame.
//
// Records are never delivered from Observe or NewObserver; they are queued
// until the next Flush (ScrollTo flushes implicitly), which mirrors the
// asynchronous delivery of the browser API.
package headless

import (
	"fmt"
	"slices"

	"github.com/vcrobe/nojs-inviewport/dom"
	"github.com/vcrobe/nojs-inviewport/inviewport"
)

// Compile-time assertions.
var (
	_ inviewport.Platform = (*Platform)(nil)
	_ inviewport.Observer = (*Observer)(nil)
)

type placement struct {
	el   dom.Element
	rect dom.Rect
}

// Platform holds the layout and the observation registry.
type Platform struct {
	viewport  dom.Rect
	roots     map[string]dom.Rect
	placed    []placement
	scrollY   float64
	observers []*Observer

	// Unavailable, when set, is returned from NewObserver to simulate an
	// environment without intersection observation.
	Unavailable error
}

// New creates a platform whose top-level viewport is the given rectangle.
func New(viewport dom.Rect) *Platform {
	return &Platform{
		viewport: viewport,
		roots:    make(map[string]dom.Rect),
	}
}

// Place sets (or moves) the content-coordinate rectangle of el.
func (p *Platform) Place(el dom.Element, r dom.Rect) {
	for i := range p.placed {
		if p.placed[i].el.Equal(el) {
			p.placed[i].rect = r
			return
		}
	}
	p.placed = append(p.placed, placement{el: el, rect: r})
}

// AddRoot registers a scroll container that options can select with "root".
func (p *Platform) AddRoot(selector string, r dom.Rect) {
	p.roots[selector] = r
}

// ScrollTo moves the content to vertical offset y and flushes.
func (p *Platform) ScrollTo(y float64) {
	p.scrollY = y
	p.Flush()
}

// ScrollY returns the current scroll offset.
func (p *Platform) ScrollY() float64 {
	return p.scrollY
}

// NewObserver registers an observer for cb.
func (p *Platform) NewObserver(cb inviewport.Callback, opts inviewport.Options) (inviewport.Observer, error) {
	if p.Unavailable != nil {
		return nil, p.Unavailable
	}

	root := p.viewport
	if opts.Root != "" {
		r, ok := p.roots[string(opts.Root)]
		if !ok {
			return nil, &inviewport.ConfigurationError{
				Field: "root",
				Err:   fmt.Errorf("no element matches %q", opts.Root),
			}
		}
		root = r
	}

	thresholds := slices.Clone(opts.Threshold)
	slices.Sort(thresholds)

	o := &Observer{
		platform:   p,
		callback:   cb,
		root:       opts.Margin().Apply(root),
		thresholds: thresholds,
	}
	p.observers = append(p.observers, o)
	return o, nil
}

// Flush delivers one batch of changed records to every live observer.
func (p *Platform) Flush() {
	for _, o := range slices.Clone(p.observers) {
		if o.disconnected {
			continue
		}
		if entries := o.collect(); len(entries) > 0 {
			o.callback(entries)
		}
	}
}

// Observers returns the live registrations, oldest first.
func (p *Platform) Observers() []*Observer {
	return slices.Clone(p.observers)
}

// Live returns the number of live registrations.
func (p *Platform) Live() int {
	return len(p.observers)
}

// Watching returns how many live observers currently observe el.
func (p *Platform) Watching(el dom.Element) int {
	n := 0
	for _, o := range p.observers {
		if o.indexOf(el) >= 0 {
			n++
		}
	}
	return n
}

func (p *Platform) rectOf(el dom.Element) (dom.Rect, bool) {
	for _, pl := range p.placed {
		if pl.el.Equal(el) {
			return pl.rect, true
		}
	}
	return dom.Rect{}, false
}

func (p *Platform) remove(o *Observer) {
	p.observers = slices.DeleteFunc(p.observers, func(x *Observer) bool { return x == o })
}
