package layout

import (
	"github.com/jonathan/cv-compiler/internal/flow"
)

// Placed is a flow unit with its assigned position on a page.
type Placed struct {
	Unit   flow.Unit
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Page owns the units placed on it, in placement order.
type Page struct {
	Number int
	Units  []Placed
}

// Document is the laid-out result of one compile invocation: an ordered
// list of pages sharing one frame geometry. It is built once and never
// mutated after pagination completes.
type Document struct {
	Frame Frame
	Pages []Page
}
