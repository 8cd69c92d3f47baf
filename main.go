//go:build js || wasm
// +build js wasm

package main

import (
	"strconv"
	"syscall/js"

	"github.com/vcrobe/nojs-inviewport/appcomponents"
	"github.com/vcrobe/nojs-inviewport/console"
	"github.com/vcrobe/nojs-inviewport/inviewport/browser"
	"github.com/vcrobe/nojs-inviewport/runtime"
)

const mountID = "#app"

func main() {
	// 1. Read the list configuration from the mount element's data attributes:
	//   <div id="app" data-count="50" data-viewport-options='{"threshold":0.5}'></div>
	list := appcomponents.NewNumberList(browser.New(), "")
	if app := js.Global().Get("document").Call("querySelector", mountID); !app.IsNull() {
		if raw := app.Get("dataset").Get("count"); !raw.IsUndefined() {
			count, err := strconv.Atoi(raw.String())
			if err != nil {
				console.Warn("Error parsing data-count on", mountID+":", err)
			} else {
				list.Count = count
			}
		}
		if raw := app.Get("dataset").Get("viewportOptions"); !raw.IsUndefined() {
			list.Options = raw.String()
		}
	}

	// 2. Create the Renderer for the mount point and render the list
	renderer := runtime.NewRenderer(mountID)
	renderer.SetCurrentComponent(list)
	renderer.RenderRoot()

	// Keep the Go program running
	select {}
}
