//go:build fastmono_debug

package fail

// Assert raises ErrDegenerateGeometry when cond is false. Only compiled in
// when the fastmono_debug build tag is set; see DegenerateGeometry.
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		Throw(DegenerateGeometry, format, args...)
	}
}
