// Package plot renders the representation-space scatter view of the demo.
//
// A frame shows a crosshair through the origin, the encoder's images of
// the two latent basis vectors as dashed lines, the encoded point cloud
// and two axis labels. Rendering is a pure function of the points, the
// encoder matrix, the logical canvas size and the Theme:
//
//	s := canvas.NewImageSurface(2)
//	st := ctrl.State()
//	plot.Render(s, st.Points, st.Matrix, plot.DefaultWidth, plot.DefaultHeight, plot.ThemeDark)
//	_ = s.SavePNG("frame.png")
package plot
