package pixarray

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Vertical distance between consecutive pixels on one side of a fold, in
// simulator units. The second side of every fold walks the table backwards.
var vertSteps = [...]int{5, 7, 14, 25}

// VertSteps returns a copy of the vertical step table.
func VertSteps() []int {
	return slices.Clone(vertSteps[:])
}

const HorizStep = 40

type Pixel struct {
	ID   int
	Top  int
	Left int
}

func (p Pixel) Name() string {
	return fmt.Sprintf("rgb%d", p.ID)
}

func (p Pixel) String() string {
	return fmt.Sprintf("%s@%d,%d", p.Name(), p.Top, p.Left)
}

// Layout returns every pixel of a switchback strip of numPixels pixels whose
// first pixel is firstID at (top, 0).
func Layout(top int, firstID int, numPixels int) []Pixel {
	return NewSwitchback(top, firstID, numPixels).Pixels()
}
