package layout

import (
	"github.com/jonathan/cv-compiler/internal/flow"
	"github.com/jonathan/cv-compiler/internal/fonts"
)

// engine is the pagination state machine. It is always in one of three
// implicit states: filling the current page (cursorY advancing), holding a
// latched forced break (pendingBreak), or done when the unit sequence is
// exhausted. Overflow resolves immediately into either a split, a new page,
// or an OverflowError.
type engine struct {
	frame   Frame
	reg     *fonts.Registry
	doc     *Document
	cursorY float64

	// pendingBreak latches a ForcedBreak until the next unit is placed, so a
	// trailing break produces no blank page and consecutive breaks collapse.
	pendingBreak bool
}

// Paginate lays the ordered unit sequence into pages of the given frame.
// The last page is kept even if nearly empty; an empty sequence yields a
// single empty page.
func Paginate(units []flow.Unit, frame Frame, reg *fonts.Registry) (*Document, error) {
	e := &engine{
		frame: frame,
		reg:   reg,
		doc:   &Document{Frame: frame},
	}
	e.newPage()

	for i := range units {
		if err := e.place(units[i]); err != nil {
			return nil, err
		}
	}
	return e.doc, nil
}

func (e *engine) newPage() {
	e.doc.Pages = append(e.doc.Pages, Page{Number: len(e.doc.Pages) + 1})
	e.cursorY = e.frame.ContentTop()
}

func (e *engine) currentPage() *Page {
	return &e.doc.Pages[len(e.doc.Pages)-1]
}

func (e *engine) pageEmpty() bool {
	return len(e.currentPage().Units) == 0
}

func (e *engine) remaining() float64 {
	return e.frame.ContentBottom() - e.cursorY
}

func (e *engine) put(u flow.Unit, height float64) {
	p := e.currentPage()
	p.Units = append(p.Units, Placed{
		Unit:   u,
		X:      e.frame.ContentLeft(),
		Y:      e.cursorY,
		Width:  e.frame.ContentWidth(),
		Height: height,
	})
	e.cursorY += height
}

// place lands one unit, breaking pages as needed.
func (e *engine) place(u flow.Unit) error {
	if u.Kind == flow.ForcedBreak {
		e.pendingBreak = true
		return nil
	}
	if e.pendingBreak {
		e.pendingBreak = false
		if !e.pageEmpty() {
			e.newPage()
		}
	}

	width := e.frame.ContentWidth()
	for {
		height, err := u.Measure(e.reg, width)
		if err != nil {
			return err
		}

		if height <= e.remaining() {
			e.put(u, height)
			return nil
		}

		// Spacers exist to separate blocks; one that does not fit is dropped
		// rather than carried to the top of the next page.
		if u.Kind == flow.Spacer {
			return nil
		}

		if u.Atomic() {
			if height > e.frame.ContentHeight() {
				return &OverflowError{
					UnitKind:   u.Kind.String(),
					Height:     height,
					PageHeight: e.frame.ContentHeight(),
				}
			}
			e.newPage()
			continue
		}

		fit, rest, err := u.Split(e.reg, width, e.remaining())
		if err != nil {
			return err
		}
		if fit == nil && e.pageEmpty() {
			// A single line taller than the whole page cannot be placed.
			return &OverflowError{
				UnitKind:   u.Kind.String(),
				Height:     height,
				PageHeight: e.frame.ContentHeight(),
			}
		}
		if fit != nil {
			fitHeight, err := fit.Measure(e.reg, width)
			if err != nil {
				return err
			}
			e.put(*fit, fitHeight)
		}
		e.newPage()
		if rest == nil {
			return nil
		}
		u = *rest
	}
}
