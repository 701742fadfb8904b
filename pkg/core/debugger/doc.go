// Package debugger provides a gated diagnostics facade: an enabled flag, a
// LogLevel threshold, and assertion and logging calls that forward to a
// host console Sink only when both gates pass.
//
// Usage:
//
//	import "github.com/msto63/debugger/pkg/core/debugger"
//
//	// Inject an instance
//	dbg := debugger.New(
//	    debugger.WithEnabled(true),
//	    debugger.WithLevel(debugger.Warning),
//	    debugger.WithSink(console.New(console.Options{Output: os.Stderr})),
//	)
//	dbg.Log("dropped: Info is above Warning")
//	dbg.LogWarning("texture missing", debugger.NewHandle("Player", "Sprite"))
//
//	// Or use the process-wide default, which starts enabled only in
//	// binaries built with -tags debug
//	debugger.SetEnabled(true)
//	debugger.AssertNotNull(rigidbody, "rigidbody", self)
//	debugger.Assert(health >= 0, "health went negative")
//
// Assert panics with *AssertionError; Check returns it instead, and Recover
// converts the panic back into an error at a boundary. AssertNotNull only
// logs. A disabled Debugger does nothing, including panicking.
package debugger
