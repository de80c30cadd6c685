package validation

import (
	"fmt"

	"github.com/jonathan/cv-compiler/internal/types"
)

// ValidateRecord checks structural completeness of the record. Business
// semantics (chronological periods, plausible names) are out of scope, and
// empty or whitespace-only string fields are structurally valid: they render
// as blank content. Missing optional lists are fine; callers on an import
// path may coerce them to empty before compiling.
func ValidateRecord(rec *types.ResumeRecord) error {
	if rec == nil {
		return &ShapeError{Section: "record", Message: "record is nil"}
	}

	for i, emp := range rec.Experience {
		if len(emp.Roles) == 0 {
			return &ShapeError{
				Section: fmt.Sprintf("experience[%d]", i),
				Message: "employer has zero roles",
			}
		}
	}

	for i, cat := range rec.Skills {
		if cat.Items == nil {
			return &ShapeError{
				Section: fmt.Sprintf("skills[%d]", i),
				Message: "skill category has no items list",
			}
		}
	}

	return nil
}
