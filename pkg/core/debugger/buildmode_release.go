//go:build !debug

package debugger

// BuildIsDebug is false unless the binary was built with -tags debug.
// New Debuggers start disabled.
const BuildIsDebug = false
