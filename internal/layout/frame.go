// Package layout provides the page frame model and the pagination engine
// that places flow units onto pages.
package layout

// Margins describes page margins in points.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Frame is the usable content rectangle of a page. The content rectangle is
// exactly the page minus the declared margins, with zero additional inset:
// column-width arithmetic in the flow units depends on the declared width
// being the delivered width. Every page of a document repeats the same frame.
type Frame struct {
	PageWidth  float64
	PageHeight float64
	Margins    Margins
}

// ContentWidth returns the usable width in points.
func (f Frame) ContentWidth() float64 {
	return f.PageWidth - f.Margins.Left - f.Margins.Right
}

// ContentHeight returns the usable height in points.
func (f Frame) ContentHeight() float64 {
	return f.PageHeight - f.Margins.Top - f.Margins.Bottom
}

// ContentLeft returns the x coordinate of the content rectangle.
func (f Frame) ContentLeft() float64 {
	return f.Margins.Left
}

// ContentTop returns the y coordinate of the content rectangle.
func (f Frame) ContentTop() float64 {
	return f.Margins.Top
}

// ContentBottom returns the y coordinate just below the content rectangle.
func (f Frame) ContentBottom() float64 {
	return f.PageHeight - f.Margins.Bottom
}
