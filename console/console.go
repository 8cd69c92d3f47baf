//go:build js || wasm

package console

import (
	"fmt"
	"syscall/js"
)

func Debug(args ...any) {
	call("debug", args)
}

func Log(args ...any) {
	call("log", args)
}

func Warn(args ...any) {
	call("warn", args)
}

func Error(args ...any) {
	call("error", args)
}

func call(method string, args []any) {
	console := js.Global().Get("console")
	console.Call(method, jsArgs(args)...)
}

// jsArgs converts values syscall/js cannot pass (errors, structs) to strings.
func jsArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case nil, bool, string, int, int32, int64, uint32, float64, js.Value:
			out[i] = v
		case error:
			out[i] = v.Error()
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}
