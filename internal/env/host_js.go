//go:build js && wasm

package env

import "syscall/js"

// IsBrowser reports whether both window and document are defined.
func IsBrowser() bool {
	return defined(js.Global(), "window") && defined(js.Global(), "document")
}

// IsNode reports whether process.versions.node is defined.
func IsNode() bool {
	process := js.Global().Get("process")
	if !isObject(process) {
		return false
	}

	versions := process.Get("versions")

	return isObject(versions) && defined(versions, "node")
}

// IsMiniProgram reports whether the WeChat mini program API is present.
func IsMiniProgram() bool {
	wx := js.Global().Get("wx")

	return isObject(wx) && wx.Get("getSystemInfoSync").Type() == js.TypeFunction
}

func defined(v js.Value, name string) bool {
	t := v.Get(name).Type()

	return t != js.TypeUndefined && t != js.TypeNull
}

func isObject(v js.Value) bool {
	return v.Type() == js.TypeObject
}
