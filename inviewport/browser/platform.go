//go:build js || wasm
// +build js wasm

// Package browser implements inviewport.Platform over the DOM
// IntersectionObserver API.
package browser

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/vcrobe/nojs-inviewport/dom"
	"github.com/vcrobe/nojs-inviewport/inviewport"
)

// ErrUnsupported is returned when the host has no IntersectionObserver.
// There is no polyfill; components cannot observe in such environments.
var ErrUnsupported = errors.New("browser: IntersectionObserver is not available")

// Compile-time assertions.
var (
	_ inviewport.Platform = (*Platform)(nil)
	_ inviewport.Observer = (*observer)(nil)
)

// Platform creates one native IntersectionObserver per registration.
type Platform struct{}

// New returns the browser platform.
func New() *Platform {
	return &Platform{}
}

func (p *Platform) NewObserver(cb inviewport.Callback, opts inviewport.Options) (inviewport.Observer, error) {
	ctor := js.Global().Get("IntersectionObserver")
	if !ctor.Truthy() {
		return nil, ErrUnsupported
	}

	thresholds := make([]any, len(opts.Threshold))
	for i, t := range opts.Threshold {
		thresholds[i] = t
	}
	init := map[string]any{
		"rootMargin": opts.Margin().String(),
		"threshold":  thresholds,
	}

	if opts.Root != "" {
		root, err := querySelector(string(opts.Root))
		if err != nil {
			return nil, &inviewport.ConfigurationError{Field: "root", Err: err}
		}
		if !root.Truthy() {
			return nil, &inviewport.ConfigurationError{
				Field: "root",
				Err:   fmt.Errorf("no element matches %q", opts.Root),
			}
		}
		init["root"] = root
	}

	o := &observer{}
	o.fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		cb(convertEntries(args[0]))
		return nil
	})
	o.v = ctor.New(o.fn, init)
	return o, nil
}

// querySelector looks up selector in the document. An invalid selector makes
// the browser throw, which syscall/js surfaces as a panic with a js.Error.
func querySelector(selector string) (v js.Value, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			jsErr, ok := rec.(js.Error)
			if !ok {
				panic(rec)
			}
			err = fmt.Errorf("invalid selector %q: %s", selector, jsErr.Error())
		}
	}()
	return js.Global().Get("document").Call("querySelector", selector), nil
}

func convertEntries(list js.Value) []inviewport.Entry {
	n := list.Length()
	entries := make([]inviewport.Entry, n)
	for i := 0; i < n; i++ {
		e := list.Index(i)
		entries[i] = inviewport.Entry{
			Target:            dom.Wrap(e.Get("target")),
			IsIntersecting:    e.Get("isIntersecting").Bool(),
			IntersectionRatio: e.Get("intersectionRatio").Float(),
		}
	}
	return entries
}

type observer struct {
	v        js.Value
	fn       js.Func
	released bool
}

func (o *observer) Observe(target dom.Element) {
	if v, ok := dom.Unwrap(target); ok && !o.released {
		o.v.Call("observe", v)
	}
}

func (o *observer) Unobserve(target dom.Element) {
	if v, ok := dom.Unwrap(target); ok && !o.released {
		o.v.Call("unobserve", v)
	}
}

// Disconnect disconnects the native observer and releases the Go callback.
func (o *observer) Disconnect() {
	if o.released {
		return
	}
	o.released = true
	o.v.Call("disconnect")
	o.fn.Release()
}
