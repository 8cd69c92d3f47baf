package headless

import (
	"slices"

	"github.com/vcrobe/nojs-inviewport/dom"
	"github.com/vcrobe/nojs-inviewport/inviewport"
)

type target struct {
	el dom.Element
	// thresholdIndex is -1 until the first record is delivered.
	thresholdIndex int
	intersecting   bool
}

// Observer is one registration created by Platform.NewObserver.
type Observer struct {
	platform     *Platform
	callback     inviewport.Callback
	root         dom.Rect
	thresholds   []float64
	targets      []*target
	disconnected bool
}

// Observe starts tracking el. The initial record arrives on the next Flush.
func (o *Observer) Observe(el dom.Element) {
	if o.disconnected || el == nil || o.indexOf(el) >= 0 {
		return
	}
	o.targets = append(o.targets, &target{el: el, thresholdIndex: -1})
}

// Unobserve stops tracking el. Pending records for it are dropped.
func (o *Observer) Unobserve(el dom.Element) {
	if i := o.indexOf(el); i >= 0 {
		o.targets = slices.Delete(o.targets, i, i+1)
	}
}

// Disconnect removes the observer from the platform registry.
func (o *Observer) Disconnect() {
	if o.disconnected {
		return
	}
	o.disconnected = true
	o.targets = nil
	o.platform.remove(o)
}

// Disconnected reports whether Disconnect has been called.
func (o *Observer) Disconnected() bool {
	return o.disconnected
}

// Targets returns the elements currently observed.
func (o *Observer) Targets() []dom.Element {
	out := make([]dom.Element, len(o.targets))
	for i, t := range o.targets {
		out[i] = t.el
	}
	return out
}

// Deliver hands entries to the callback as a single batch, bypassing
// geometry. It lets tests synthesize arbitrary records, including records
// for elements this observer never observed. Disconnected observers drop them.
func (o *Observer) Deliver(entries ...inviewport.Entry) {
	if o.disconnected || len(entries) == 0 {
		return
	}
	o.callback(entries)
}

func (o *Observer) indexOf(el dom.Element) int {
	return slices.IndexFunc(o.targets, func(t *target) bool { return t.el.Equal(el) })
}

// collect computes records for targets whose threshold index or
// intersecting state changed since the last delivery.
func (o *Observer) collect() []inviewport.Entry {
	var entries []inviewport.Entry
	for _, t := range o.targets {
		ratio, touching := o.measure(t.el)

		index := 0
		if touching {
			for _, th := range o.thresholds {
				if ratio >= th {
					index++
				}
			}
		}
		intersecting := index > 0

		if index == t.thresholdIndex && intersecting == t.intersecting {
			continue
		}
		t.thresholdIndex = index
		t.intersecting = intersecting

		entries = append(entries, inviewport.Entry{
			Target:            t.el,
			IsIntersecting:    intersecting,
			IntersectionRatio: ratio,
		})
	}
	return entries
}

// measure returns the visible ratio of el inside the margin-adjusted root.
// Unplaced elements are never visible.
func (o *Observer) measure(el dom.Element) (ratio float64, touching bool) {
	rect, ok := o.platform.rectOf(el)
	if !ok {
		return 0, false
	}

	visible := rect.Translate(0, -o.platform.scrollY)
	overlap, touching := o.root.Intersect(visible)
	if !touching {
		return 0, false
	}
	if area := visible.Area(); area > 0 {
		return overlap.Area() / area, true
	}
	return 1, true
}
