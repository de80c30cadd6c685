package layout

import "fmt"

// OverflowError indicates an atomic unit whose measured height exceeds a
// full page's content height. This is a configuration problem (page too
// small or margins too large), not a data problem, and aborts the compile.
type OverflowError struct {
	UnitKind   string
	Height     float64
	PageHeight float64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("atomic unit overflow: %s needs %.2fpt but a full page offers %.2fpt",
		e.UnitKind, e.Height, e.PageHeight)
}
