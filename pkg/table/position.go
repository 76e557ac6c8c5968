package table

import "github.com/go-drift/tablediff/pkg/errors"

// Position locates a row in the rendered view: the visible index of its
// owning section, and the row's visible index within that section.
// Both components count only non-hidden predecessors.
type Position struct {
	Section int
	Row     int
}

// VisibleSectionIndex returns the index s occupies in the rendered view:
// the number of non-hidden sections preceding it. The index is computed
// whether or not s itself is hidden, which is exactly what an insertion
// needs right after s has been marked visible.
//
// Fails with a notAMember error if s does not belong to the table.
// The scan is linear; tables are small and correctness is what matters here.
func (t *Table) VisibleSectionIndex(s *Section) (int, error) {
	const op = "table.VisibleSectionIndex"
	index := 0
	for _, member := range t.sections {
		if member == s {
			return index, nil
		}
		if !t.vis.sectionHidden(member) {
			index++
		}
	}
	return 0, errors.New(op, errors.KindNotAMember,
		"section %v is not part of the table", tag(s))
}

// VisibleRowPosition returns the position r occupies in the rendered view,
// counting only non-hidden rows within the owning section and using
// [Table.VisibleSectionIndex] for the section component.
//
// Fails with a notAMember error if r is not attached to a member section,
// and with a hiddenSection error if the owning section is currently hidden:
// while the parent is not rendered the row has no meaningful position.
func (t *Table) VisibleRowPosition(r *Row) (Position, error) {
	const op = "table.VisibleRowPosition"
	if r == nil || !t.HasSection(r.section) {
		return Position{}, errors.New(op, errors.KindNotAMember,
			"row %v is not part of the table", tag(r))
	}
	owner := r.section
	if t.vis.sectionHidden(owner) {
		return Position{}, errors.New(op, errors.KindHiddenSection,
			"row %v belongs to hidden section %v", tag(r), tag(owner))
	}
	sectionIndex, err := t.VisibleSectionIndex(owner)
	if err != nil {
		return Position{}, err
	}
	rowIndex := 0
	for _, member := range owner.rows {
		if member == r {
			return Position{Section: sectionIndex, Row: rowIndex}, nil
		}
		if !t.vis.rowHidden(member) {
			rowIndex++
		}
	}
	// Unreachable while the attach invariant holds: r.section contains r.
	return Position{}, errors.New(op, errors.KindNotAMember,
		"row %v is not part of its own section", tag(r))
}
