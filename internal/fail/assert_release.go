//go:build !fastmono_debug

package fail

// Assert is a no-op in release builds. Violating cond is undefined behavior
// per the documented contract, not a reported error; see DegenerateGeometry.
func Assert(cond bool, format string, args ...interface{}) {}
