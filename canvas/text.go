package canvas

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/unicode/norm"
)

// Face is a font at a given size in logical pixels.
//
// Shaping (glyph selection, marks, kerning) is done by go-text/typesetting's
// HarfBuzz port; glyph outlines come from golang.org/x/image/font/sfnt.
// A Face is not safe for concurrent use.
type Face struct {
	outlines *sfnt.Font
	shapes   *font.Font
	size     float64

	buf    sfnt.Buffer
	shaper shaping.HarfbuzzShaper
}

// NewFace parses a TrueType/OpenType font.
func NewFace(ttf []byte, size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("canvas: font size must be positive, got %v", size)
	}
	outlines, err := sfnt.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("canvas: parse font outlines: %w", err)
	}
	parsed, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("canvas: parse font for shaping: %w", err)
	}
	return &Face{outlines: outlines, shapes: parsed.Font, size: size}, nil
}

// DefaultFace returns Go Regular at the given size.
func DefaultFace(size float64) (*Face, error) {
	return NewFace(goregular.TTF, size)
}

// Size returns the font size in logical pixels.
func (f *Face) Size() float64 { return f.size }

// WithSize returns a face sharing the parsed font at another size.
func (f *Face) WithSize(size float64) *Face {
	return &Face{outlines: f.outlines, shapes: f.shapes, size: size}
}

// HasGlyphs reports whether the font maps every rune of s, after NFC
// normalization, to a real glyph.
func (f *Face) HasGlyphs(s string) bool {
	for _, r := range norm.NFC.String(s) {
		if i, err := f.outlines.GlyphIndex(&f.buf, r); err != nil || i == 0 {
			return false
		}
	}
	return true
}

// placedGlyph is a shaped glyph with its pen offset from the string
// origin, y down.
type placedGlyph struct {
	id   sfnt.GlyphIndex
	x, y float64
}

// shape lays out s at px pixels per em and returns the glyphs and the
// total advance. s is NFC-normalized first so precomposed glyphs such as
// "ẑ" are preferred over base+mark pairs when the font has them.
func (f *Face) shape(s string, px float64) ([]placedGlyph, float64) {
	runes := []rune(norm.NFC.String(s))
	if len(runes) == 0 {
		return nil, 0
	}

	out := f.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f.shapes),
		Size:      fixed.Int26_6(px * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})

	glyphs := make([]placedGlyph, 0, len(out.Glyphs))
	var pen float64
	for _, g := range out.Glyphs {
		glyphs = append(glyphs, placedGlyph{
			id: sfnt.GlyphIndex(g.GlyphID),
			x:  pen + fixedToFloat(g.XOffset),
			// Shaping offsets are y-up; the canvas is y-down.
			y: -fixedToFloat(g.YOffset),
		})
		pen += fixedToFloat(g.Advance)
	}
	return glyphs, pen
}

// Measure returns the advance width and the font size of s in logical
// pixels.
func (f *Face) Measure(s string) (w, h float64) {
	_, adv := f.shape(s, f.size)
	return adv, f.size
}

// rasterize adds the outlines of s to z. origin is the device-space
// baseline start; px is the device pixel size of the font.
func (f *Face) rasterize(z *vector.Rasterizer, s string, origin Point, px float64) {
	glyphs, _ := f.shape(s, px)
	ppem := fixed.Int26_6(px * 64)

	for _, g := range glyphs {
		segs, err := f.outlines.LoadGlyph(&f.buf, g.id, ppem, nil)
		if err != nil {
			// Missing or colour-only glyphs are skipped.
			continue
		}
		ox, oy := origin.X+g.x, origin.Y+g.y
		pt := func(p fixed.Point26_6) (float32, float32) {
			return float32(ox + fixedToFloat(p.X)), float32(oy + fixedToFloat(p.Y))
		}

		open := false
		for _, seg := range segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					z.ClosePath()
				}
				z.MoveTo(pt(seg.Args[0]))
				open = true
			case sfnt.SegmentOpLineTo:
				z.LineTo(pt(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				bx, by := pt(seg.Args[0])
				cx, cy := pt(seg.Args[1])
				z.QuadTo(bx, by, cx, cy)
			case sfnt.SegmentOpCubeTo:
				bx, by := pt(seg.Args[0])
				cx, cy := pt(seg.Args[1])
				dx, dy := pt(seg.Args[2])
				z.CubeTo(bx, by, cx, cy, dx, dy)
			}
		}
		if open {
			z.ClosePath()
		}
	}
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
