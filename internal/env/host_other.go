//go:build !js

package env

// IsBrowser is always false for native binaries.
func IsBrowser() bool { return false }

// IsNode reports true: a native process has Node-like stdio streams.
func IsNode() bool { return true }

// IsMiniProgram is always false for native binaries.
func IsMiniProgram() bool { return false }
