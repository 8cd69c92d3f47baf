// Package inviewport detects the first time an element scrolls into view.
//
// A Detector observes exactly one element through a Platform and notifies its
// owner once, the first time a geometry record reports that element as
// intersecting. It then unobserves, disconnects and stays retired until it is
// attached again.
package inviewport

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/vcrobe/nojs-inviewport/console"
	"github.com/vcrobe/nojs-inviewport/dom"
)

// Event is emitted once per attach, when the target enters the viewport.
type Event struct {
	Target dom.Element
}

// Detector is a one-shot, edge-triggered viewport entry detector.
// It is not safe for use from multiple goroutines; like the DOM it is
// driven from a single event loop.
type Detector struct {
	id       string
	platform Platform
	handlers []func(Event)

	target   dom.Element
	observer Observer
	// generation invalidates callbacks from observers this detector released.
	generation uint64
	fired      atomic.Bool
}

// New creates an unattached detector that observes through p. A nil p is
// accepted; Attach then fails with ErrNoPlatform.
func New(p Platform) *Detector {
	return &Detector{
		id:       uuid.NewString(),
		platform: p,
	}
}

// ID identifies the detector in log output.
func (d *Detector) ID() string {
	return d.id
}

// OnEnteredViewport registers fn to be called when the target enters the
// viewport. Handlers run in registration order, after the detector has
// already released its observation.
func (d *Detector) OnEnteredViewport(fn func(Event)) {
	if fn != nil {
		d.handlers = append(d.handlers, fn)
	}
}

// Attach parses options and starts observing target. A *ConfigurationError
// is returned, and nothing is registered, when the options text is malformed.
func (d *Detector) Attach(target dom.Element, options string) error {
	opts, err := ParseOptions(options)
	if err != nil {
		return err
	}
	return d.AttachOptions(target, opts)
}

// AttachOptions starts observing target with already parsed options.
func (d *Detector) AttachOptions(target dom.Element, opts Options) error {
	if target == nil {
		return &ConfigurationError{Field: "target", Err: errors.New("element is nil")}
	}
	if d.observer != nil {
		return ErrAlreadyAttached
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if d.platform == nil {
		return ErrNoPlatform
	}

	d.generation++
	gen := d.generation
	obs, err := d.platform.NewObserver(func(entries []Entry) {
		d.handle(gen, entries)
	}, opts)
	if err != nil {
		return fmt.Errorf("inviewport: create observer: %w", err)
	}

	d.target = target
	d.observer = obs
	d.fired.Store(false)
	obs.Observe(target)
	return nil
}

// Detach stops observing and releases the platform registration. It is a
// no-op when the detector is not attached, including after it has fired.
func (d *Detector) Detach() {
	if d.observer == nil {
		return
	}
	d.release()
}

// Attached reports whether the detector currently owns an observation.
func (d *Detector) Attached() bool {
	return d.observer != nil
}

// Fired reports whether the detector emitted for the current (or last) attach.
func (d *Detector) Fired() bool {
	return d.fired.Load()
}

func (d *Detector) handle(gen uint64, entries []Entry) {
	if gen != d.generation || d.observer == nil {
		return
	}

	for _, e := range entries {
		if !e.IsIntersecting || e.Target == nil || !e.Target.Equal(d.target) {
			continue
		}
		if !d.fired.CompareAndSwap(false, true) {
			return
		}

		target := d.target
		d.release()
		console.Debug("inviewport: detector", d.id, "entered viewport")

		for _, fn := range d.handlers {
			fn(Event{Target: target})
		}
		return
	}
}

func (d *Detector) release() {
	obs, target := d.observer, d.target
	d.observer = nil
	d.target = nil
	d.generation++

	obs.Unobserve(target)
	obs.Disconnect()
}
