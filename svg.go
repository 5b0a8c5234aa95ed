package shape

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [Region.SVG] and
// [Region.WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts the region's boundaries to a string of SVG path commands, one
// closed subpath per loop. The empty and whole regions render as the empty
// string, the whole plane having no boundary to draw.
//
// See [Region.WriteSVG] for a version that writes to an [io.Writer] instead
// of returning a string.
func (r Region) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	r.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG converts the region's boundaries to a string of SVG path commands
// and writes it to w.
//
// See [Region.SVG] for a version that returns a string instead.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func (r Region) WriteSVG(w io.Writer, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			return strings.TrimRight(s, "0")
		}
	}
	first := true
	for _, b := range r.Boundaries() {
		if err != nil {
			return err
		}
		if !first {
			writef(" ")
		}
		first = false
		start := b.Segment(0).Start()
		writef("M%s,%s", format(start.X), format(start.Y))
		for i := 0; i < b.Len(); i++ {
			seg := b.Segment(i)
			switch seg.Kind {
			case LineKind:
				if i == b.Len()-1 {
					// The trailing line back to the start is implied by Z.
					continue
				}
				writef(" L%s,%s", format(seg.P1.X), format(seg.P1.Y))
			case QuadKind:
				writef(" Q%s,%s %s,%s",
					format(seg.P1.X), format(seg.P1.Y),
					format(seg.P2.X), format(seg.P2.Y))
			default:
				panic("invalid segment kind")
			}
		}
		writef(" Z")
	}
	return err
}
