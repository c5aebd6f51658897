package text

import (
	"image"
	"iter"
	"testing"

	"github.com/gogpu/n64gfx/arena"
	"github.com/gogpu/n64gfx/pixel"
	"github.com/gogpu/n64gfx/surface"
)

// recorder is a DrawTarget that keeps every point it receives.
type recorder struct {
	size   image.Point
	points []surface.Point[pixel.RGBA5551]
}

func (r *recorder) Size() image.Point { return r.size }

func (r *recorder) DrawPoints(points iter.Seq[surface.Point[pixel.RGBA5551]]) {
	for p := range points {
		r.points = append(r.points, p)
	}
}

func (r *recorder) bounds(c pixel.RGBA5551) image.Rectangle {
	var b image.Rectangle
	for _, p := range r.points {
		if p.Color != c {
			continue
		}
		cell := image.Rectangle{Min: p.Pos, Max: p.Pos.Add(image.Pt(1, 1))}
		if b.Empty() {
			b = cell
		} else {
			b = b.Union(cell)
		}
	}
	return b
}

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "Hello N64", "Hello N64"},
		{"accents", "Héllo wörld", "Hello world"},
		{"cjk", "日本", "??"},
		{"control", "a\tb", "a?b"},
		{"newline kept", "a\nb", "a\nb"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.in); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDrawGlyphStaysInCell(t *testing.T) {
	r := &recorder{size: image.Pt(320, 240)}
	next := Draw(r, "H", image.Pt(10, 20), NewStyle(pixel.White5551))

	if len(r.points) == 0 {
		t.Fatal("Draw(\"H\") wrote no points")
	}
	// Face7x13: 6 pixel wide cell, ascent 11, descent 2.
	cell := image.Rect(10, 9, 16, 22)
	if b := r.bounds(pixel.White5551); !b.In(cell) {
		t.Errorf("glyph bounds = %v, want inside %v", b, cell)
	}
	if want := image.Pt(17, 20); next != want {
		t.Errorf("Draw() = %v, want %v", next, want)
	}
}

func TestDrawAdvance(t *testing.T) {
	r := &recorder{size: image.Pt(320, 240)}
	next := Draw(r, "Hello N64", image.Pt(32, 32), NewStyle(pixel.White5551))

	if want := image.Pt(32+9*7, 32); next != want {
		t.Errorf("Draw() = %v, want %v", next, want)
	}
	for _, p := range r.points {
		if p.Pos.X < 32 || p.Pos.X >= 32+9*7 {
			t.Fatalf("point %v outside the text run", p.Pos)
		}
	}
}

func TestDrawBackgroundFillsCells(t *testing.T) {
	r := &recorder{size: image.Pt(320, 240)}
	Draw(r, "ab", image.Pt(0, 20), NewStyle(pixel.White5551).WithBackground(pixel.Blue5551))

	if got, want := len(r.points), 2*6*13; got != want {
		t.Errorf("points = %d, want %d", got, want)
	}
}

func TestDrawSpaceWritesNothing(t *testing.T) {
	r := &recorder{size: image.Pt(320, 240)}
	Draw(r, "   ", image.Pt(0, 20), NewStyle(pixel.White5551))
	if len(r.points) != 0 {
		t.Errorf("spaces wrote %d points, want 0", len(r.points))
	}
}

func TestDrawNewline(t *testing.T) {
	r := &recorder{size: image.Pt(320, 240)}
	next := Draw(r, "ab\nc", image.Pt(5, 20), NewStyle(pixel.White5551))
	if want := image.Pt(5+7, 33); next != want {
		t.Errorf("Draw() = %v, want %v", next, want)
	}
}

func TestDrawClipsOffscreenGlyphs(t *testing.T) {
	r := &recorder{size: image.Pt(16, 16)}
	Draw(r, "WWWWWWWWWW", image.Pt(0, 12), NewStyle(pixel.White5551))
	for _, p := range r.points {
		// Glyphs overlapping the target are still emitted whole; the
		// target drops what falls outside. Glyphs past it are skipped.
		if p.Pos.X >= 21 {
			t.Fatalf("point %v from a glyph entirely off the target", p.Pos)
		}
	}
}

func TestDrawOntoSurface(t *testing.T) {
	heap := arena.NewHeap()
	fb := surface.New[pixel.RGBA5551](heap, 320, 240, surface.Framebuffer)
	defer fb.Close()

	fb.Clear(pixel.Blue5551)
	Draw(fb, "Hello N64", image.Pt(32, 32), NewStyle(pixel.White5551))

	white := 0
	for _, p := range fb.Pix() {
		switch p {
		case pixel.White5551:
			white++
		case pixel.Blue5551:
		default:
			t.Fatalf("unexpected pixel %v", p)
		}
	}
	if white == 0 {
		t.Error("no text pixels on the framebuffer")
	}
}

func TestDrawReusesDecodedGlyphs(t *testing.T) {
	glyphs.Clear()
	before := glyphs.Stats()

	r := &recorder{size: image.Pt(320, 240)}
	Draw(r, "aaaa", image.Pt(0, 20), NewStyle(pixel.White5551))

	after := glyphs.Stats()
	if got := after.Misses - before.Misses; got != 1 {
		t.Errorf("misses = %d, want 1", got)
	}
	if got := after.Hits - before.Hits; got != 3 {
		t.Errorf("hits = %d, want 3", got)
	}
	if after.Len != 1 {
		t.Errorf("cached glyphs = %d, want 1", after.Len)
	}
}

func TestMeasure(t *testing.T) {
	w, h := Measure("Hello", nil)
	if w != 35 || h != 13 {
		t.Errorf("Measure(\"Hello\") = %d, %d, want 35, 13", w, h)
	}
}
