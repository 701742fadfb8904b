//go:build debug

package debugger

// BuildIsDebug is true when the binary was built with -tags debug.
// New Debuggers start enabled.
const BuildIsDebug = true
