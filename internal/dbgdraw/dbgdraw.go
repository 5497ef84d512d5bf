// Package dbgdraw renders a polygon, its diagonals, and its monotone pieces
// to a PNG and cats it to the terminal (iTerm only), for use from tests when
// FASTMONO_DEBUG_DRAW is set.
//
// Adapted from triangulate/polygon_list_draw.go and
// internal/querygraph_draw.go: same flip-and-pad canvas setup, same
// gg.Context/imgcat.CatFile pairing, rekeyed from the teacher's
// segment/trapezoid model to this module's index-based chain and monotone
// parts.
package dbgdraw

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/he-la/fastmono/internal/dbgname"
	"github.com/he-la/fastmono/internal/numeric"
)

// Padding around the shape so vertices near the edge of the bounding box
// are not clipped.
const padding = 40

// Enabled reports whether FASTMONO_DEBUG_DRAW is set. Callers should guard
// Draw with this so normal test runs stay quiet.
func Enabled() bool {
	return os.Getenv("FASTMONO_DEBUG_DRAW") != ""
}

// Chain is the subset of internal/core.Chain's surface dbgdraw needs; kept
// as a local interface so this package never imports internal/core (which
// would be a dependency cycle were dbgdraw ever used from internal/core's
// own tests).
type Chain[C numeric.Coord, I numeric.Index] interface {
	Len() I
	At(i I) (x, y C)
	Next(i I) I
}

// Region names a monotone piece's head/tail, for coloring and labeling.
type Region[I numeric.Index] struct {
	Head, Tail I
	Index      int
}

// Draw renders c's canonical ring in cyan, any diagonals implied by next
// differing from the canonical i+1 successor in yellow, and the head/tail
// of each region in regions labeled with a petname alias, then saves to
// path and cats it to stdout.
func Draw[C numeric.Coord, I numeric.Index](c Chain[C, I], regions []Region[I], path string) {
	n := int(c.Len())
	if n == 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i < n; i++ {
		x, y := c.At(I(i))
		minX, minY = math.Min(minX, float64(x)), math.Min(minY, float64(y))
		maxX, maxY = math.Max(maxX, float64(x)), math.Max(maxY, float64(y))
	}

	const scale = 40.0
	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	if width < padding*2+1 {
		width = padding*2 + 1
	}
	if height < padding*2+1 {
		height = padding*2 + 1
	}

	ctx := gg.NewContext(width, height)
	ctx.SetRGB(0, 0, 0)
	ctx.DrawRectangle(0, 0, float64(width), float64(height))
	ctx.Fill()

	// Flip so the origin is bottom-left, then pad and scale into place.
	ctx.Translate(0, float64(height))
	ctx.Scale(1, -1)
	ctx.Translate(padding, padding)
	ctx.Scale(scale, scale)
	ctx.Translate(-minX, -minY)

	ctx.SetLineWidth(2 / scale)

	// Canonical ring, in the original vertex order.
	x0, y0 := c.At(0)
	ctx.MoveTo(float64(x0), float64(y0))
	for i := 1; i < n; i++ {
		x, y := c.At(I(i))
		ctx.LineTo(float64(x), float64(y))
	}
	ctx.ClosePath()
	ctx.SetRGB(0, 1, 1)
	ctx.Stroke()

	// Diagonals: wherever next[i] differs from the canonical successor.
	ctx.SetRGB(1, 1, 0)
	for i := 0; i < n; i++ {
		next := c.Next(I(i))
		if int(next) != (i+1)%n {
			ax, ay := c.At(I(i))
			bx, by := c.At(next)
			ctx.MoveTo(float64(ax), float64(ay))
			ctx.LineTo(float64(bx), float64(by))
			ctx.Stroke()
		}
	}

	for _, r := range regions {
		hx, hy := c.At(r.Head)
		tx, ty := c.At(r.Tail)
		ctx.SetRGBA(0.3, 0.2, 1, 0.6)
		ctx.DrawCircle(float64(hx), float64(hy), 4/scale)
		ctx.Fill()
		ctx.DrawCircle(float64(tx), float64(ty), 4/scale)
		ctx.Fill()

		ctx.Push()
		ctx.Identity()
		cx, cy := ctx.TransformPoint((float64(hx)+float64(tx))/2, (float64(hy)+float64(ty))/2)
		ctx.SetRGB(1, 1, 1)
		ctx.DrawStringAnchored(dbgname.Name("region", uint64(r.Index)), cx, cy, 0.5, 0.5)
		ctx.Pop()
	}

	ctx.SavePNG(path)
	imgcat.CatFile(path, os.Stdout)
}
