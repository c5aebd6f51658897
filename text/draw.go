package text

import (
	"image"
	"iter"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/n64gfx/internal/cache"
	"github.com/gogpu/n64gfx/pixel"
	"github.com/gogpu/n64gfx/surface"
)

// coverageThreshold is the mask alpha from which a glyph pixel counts as
// foreground.
const coverageThreshold = 0x8000

// glyphCacheSize bounds the number of decoded glyphs kept across faces.
const glyphCacheSize = 256

// glyph is a face glyph with its mask thresholded to foreground bits.
type glyph struct {
	rect     image.Rectangle // relative to the integer part of the dot
	coverage []bool          // row-major over rect; nil without a mask
	advance  fixed.Int26_6
	ok       bool
}

// glyphKey identifies a glyph. Faces are compared by identity, and the
// sub-pixel part of the dot is kept because it can move the mask.
type glyphKey struct {
	face   font.Face
	r      rune
	fx, fy fixed.Int26_6
}

var glyphs = cache.New[glyphKey, *glyph](glyphCacheSize)

func lookup(face font.Face, dot fixed.Point26_6, r rune) *glyph {
	key := glyphKey{face: face, r: r, fx: dot.X & 63, fy: dot.Y & 63}
	return glyphs.GetOrCreate(key, func() *glyph { return decode(face, dot, r) })
}

func decode(face font.Face, dot fixed.Point26_6, r rune) *glyph {
	dr, mask, maskp, advance, ok := face.Glyph(dot, r)
	g := &glyph{
		rect:    dr.Sub(image.Pt(dot.X.Floor(), dot.Y.Floor())),
		advance: advance,
		ok:      ok,
	}
	if mask == nil || dr.Empty() {
		return g
	}
	cov := make([]bool, 0, dr.Dx()*dr.Dy())
	for y := 0; y < dr.Dy(); y++ {
		for x := 0; x < dr.Dx(); x++ {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			cov = append(cov, a >= coverageThreshold)
		}
	}
	g.coverage = cov
	return g
}

// Style describes how text is drawn.
type Style[P pixel.Packed] struct {
	// Face supplies glyph masks. Nil means basicfont.Face7x13. Decoded
	// glyphs are cached per face, so the face's dynamic type must be
	// comparable.
	Face font.Face

	// Color is the foreground color.
	Color P

	// Background, if set, fills the rest of each glyph cell.
	Background *P
}

// NewStyle returns a transparent-background style in the default face.
func NewStyle[P pixel.Packed](c P) Style[P] {
	return Style[P]{Face: basicfont.Face7x13, Color: c}
}

// WithBackground returns a copy of the style with an opaque background.
func (s Style[P]) WithBackground(c P) Style[P] {
	s.Background = &c
	return s
}

func (s Style[P]) face() font.Face {
	if s.Face == nil {
		return basicfont.Face7x13
	}
	return s.Face
}

// Draw renders str onto dst with the baseline origin at at, and returns
// the dot position following the last glyph. A newline returns to at.X
// one line height down.
func Draw[P pixel.Packed](dst surface.DrawTarget[P], str string, at image.Point, style Style[P]) image.Point {
	face := style.face()
	clip := image.Rectangle{Max: dst.Size()}
	lineHeight := face.Metrics().Height

	dot := fixed.P(at.X, at.Y)
	prev := rune(-1)
	for _, r := range Fold(str) {
		if r == '\n' {
			dot.X = fixed.I(at.X)
			dot.Y += lineHeight
			prev = -1
			continue
		}
		if prev >= 0 {
			dot.X += face.Kern(prev, r)
		}
		g := lookup(face, dot, r)
		if !g.ok {
			g = lookup(face, dot, Replacement)
		}
		dr := g.rect.Add(image.Pt(dot.X.Floor(), dot.Y.Floor()))
		if g.coverage != nil && dr.Overlaps(clip) {
			dst.DrawPoints(glyphPoints(dr, g, style))
		}
		dot.X += g.advance
		prev = r
	}
	return image.Pt(dot.X.Round(), dot.Y.Round())
}

// glyphPoints yields the cell dr of g.
func glyphPoints[P pixel.Packed](dr image.Rectangle, g *glyph, style Style[P]) iter.Seq[surface.Point[P]] {
	return func(yield func(surface.Point[P]) bool) {
		i := 0
		for y := dr.Min.Y; y < dr.Max.Y; y++ {
			for x := dr.Min.X; x < dr.Max.X; x++ {
				var c P
				switch {
				case g.coverage[i]:
					c = style.Color
				case style.Background != nil:
					c = *style.Background
				default:
					i++
					continue
				}
				i++
				if !yield(surface.Point[P]{Pos: image.Pt(x, y), Color: c}) {
					return
				}
			}
		}
	}
}

// Measure returns the advance width of the single line str and the
// face's line height, in pixels.
func Measure(str string, face font.Face) (width, height int) {
	if face == nil {
		face = basicfont.Face7x13
	}
	return font.MeasureString(face, Fold(str)).Ceil(), face.Metrics().Height.Ceil()
}
