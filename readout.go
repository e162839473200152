package repdemo

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Explanation is the static prose shown under the demo.
const Explanation = `Adjust the sliders to see how encoder geometry (rotation, scaling) and ` +
	`DGP properties (latent correlation) affect the MCC metric. At 0° rotation with ` +
	`unit scaling, MCC = 1. Rotating 45° makes the encoder linearly entangled: ` +
	`information is preserved (det ≠ 0) but MCC drops because axis alignment is ` +
	`violated. Increasing correlation shows how MCC can remain high even when the ` +
	`encoder is misspecified.`

// Readout is the formatted text form of a Reading.
type Readout struct {
	MCC   string // three decimals
	Det   string // two decimals
	Grade Grade
}

// NewReadout formats r for the given locale.
func NewReadout(r Reading, tag language.Tag) Readout {
	p := message.NewPrinter(tag)
	return Readout{
		MCC:   p.Sprintf("%.3f", r.MCC),
		Det:   p.Sprintf("%.2f", r.Det),
		Grade: GradeOf(r.MCC),
	}
}

// String renders the readout on one line.
func (r Readout) String() string {
	return fmt.Sprintf("MCC %s (%s)  det(A) %s", r.MCC, r.Grade, r.Det)
}
