// Package dbgname hands out random, readable aliases for debug output. It is
// the index-keyed counterpart to the teacher's pointer-keyed dbg package:
// the new core addresses everything by (kind, index) pairs rather than by
// pointer, since vertices, events, and regions all live in slices.
package dbgname

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This flagrantly leaks memory, exactly like the teacher's dbg package,
// but generates names lazily so it only costs anything if you're actually
// printing debug output.

type key struct {
	kind string
	id   uint64
}

var memo = map[key]string{}

func init() {
	// Names are generated in order of demand, so make them nondeterministic
	// to remind the reader they don't refer to the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns a stable, readable alias for the given kind ("vertex",
// "event", "region", ...) and numeric id.
func Name(kind string, id uint64) string {
	k := key{kind, id}
	if r, ok := memo[k]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[k] = r
	return r
}
