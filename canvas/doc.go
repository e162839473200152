// Package canvas provides a small immediate-mode 2D drawing context over
// an RGBA pixel buffer.
//
// The API follows the HTML canvas model the scatter view was designed
// against: a Surface hands out a Context sized in device pixels, the
// caller scales it by the device pixel ratio and then draws in logical
// (CSS) pixels.
//
//	s := canvas.NewImageSurface(2)
//	dc := s.Context(600, 600)
//	dc.Scale(2, 2)
//
//	dc.SetHexColor("#338dff")
//	dc.DrawCircle(150, 150, 2.5)
//	_ = dc.Fill()
//
//	_ = s.SavePNG("out.png")
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Rasterization
//
// Paths are filled with golang.org/x/image/vector, which computes exact
// per-pixel area coverage. Strokes are expanded into quads per segment
// (butt caps, no joins) before filling. Text is shaped with
// go-text/typesetting and filled from glyph outlines.
package canvas
