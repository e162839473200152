// Package repdemo models a small interactive demo of representation geometry.
//
// # Overview
//
// Two latent factors (z1, z2) are sampled from a bivariate normal with a
// chosen correlation and pushed through a linear encoder
//
//	M = R(θ) · diag(scaleX, scaleY)
//
// The demo reports how well the encoded dimensions (h1, h2) recover the
// individual factors, using a two-factor mean correlation coefficient
// (MCC), next to det(M), which tells whether the encoder loses
// information at all.
//
// # Quick Start
//
//	ctrl, err := repdemo.NewController(repdemo.WithSeed(7))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// One slider event: rotate the encoder by 45 degrees.
//	st, err := ctrl.Set(repdemo.ParamAngle, 45)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(repdemo.NewReadout(st.Reading, language.English))
//
// The scatter view is drawn by package plot onto a canvas.Surface.
//
// # State Transitions
//
// Every parameter change is a total transition from one State to the
// next (see Derive). Only a change of correlation draws a fresh point
// batch; rotating or rescaling the encoder keeps the sampled cloud so
// the effect of encoder geometry can be isolated from sampling noise.
//
// # Architecture
//
// The module is organized into:
//   - repdemo: Sampler, Matrix, Score/Measure, Params, Controller, Readout
//   - canvas: software 2D drawing context over an RGBA pixel buffer
//   - plot: the scatter renderer and its light/dark themes
//   - cmd/repdemo: one-shot PNG renders and an interactive shell
package repdemo

// Version information
const (
	// Version is the current version of the module
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
