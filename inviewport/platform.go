package inviewport

import "github.com/vcrobe/nojs-inviewport/dom"

//go:generate mockgen -destination=mock_platform_test.go -package=inviewport -self_package=github.com/vcrobe/nojs-inviewport/inviewport github.com/vcrobe/nojs-inviewport/inviewport Platform,Observer

// Entry is one geometry-change record for an observed element.
type Entry struct {
	Target            dom.Element
	IsIntersecting    bool
	IntersectionRatio float64
}

// Callback receives a batch of records. Platforms call it on the UI event
// loop, never concurrently with itself.
type Callback func(entries []Entry)

// Platform creates geometry observers. In the browser this is
// IntersectionObserver; natively it is package headless.
type Platform interface {
	// NewObserver registers an observer. Options have already been validated.
	// An error means the environment cannot observe at all.
	NewObserver(cb Callback, opts Options) (Observer, error)
}

// Observer is one registration in the platform's observation registry.
type Observer interface {
	Observe(target dom.Element)
	Unobserve(target dom.Element)
	// Disconnect stops all observation and releases the registration.
	Disconnect()
}
