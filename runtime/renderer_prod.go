//go:build (js || wasm) && !dev
// +build js wasm
// +build !dev

package runtime

import "github.com/vcrobe/nojs-inviewport/console"

// callHook invokes a lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (r *RendererImpl) callHook(hook, key string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error("ERROR:", hook, "panic in component", key+":", rec)
		}
	}()
	fn()
}
