// Package text renders bitmap text onto surfaces.
//
// Glyphs come from a golang.org/x/image/font Face, 7x13 basicfont by
// default. Coverage is thresholded rather than blended: a glyph pixel is
// either foreground or background, which matches the single alpha bit of
// RGBA5551 framebuffers and needs nothing from the target beyond
// surface.DrawTarget.
//
// Strings are folded to printable ASCII before glyph lookup, so accented
// Latin letters lose their marks and anything else prints as '?'.
package text
