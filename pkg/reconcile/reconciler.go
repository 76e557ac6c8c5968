package reconcile

import (
	"github.com/go-drift/tablediff/pkg/errors"
	"github.com/go-drift/tablediff/pkg/table"
)

// Reconciler computes the structural operations that move a rendering
// surface from a table's old visible layout to its new one, mutating the
// table's visibility state along the way.
//
// Reconcile is synchronous and not reentrant: one call must run to
// completion before another begins, because the visibility mutations it
// performs midway are part of its contract and would invalidate positions
// captured by a concurrent call.
type Reconciler struct {
	table *table.Table
}

// New creates a reconciler for t.
func New(t *table.Table) *Reconciler {
	return &Reconciler{table: t}
}

// Reconcile resolves cs against the table and returns the resulting plan.
//
// The ordering is the whole point and is fixed:
//
//  1. Validate that every target belongs to the table; on failure the batch
//     is aborted atomically, before any mutation.
//  2. Collapse conflicting requests: the last request per target wins
//     entirely, and show/hide requests that match the target's current
//     visibility are dropped (nothing to animate).
//  3. Build the exclusion set: sections that are currently hidden or are
//     targeted by any section-level request in this batch. Row captures for
//     rows owned by an excluded section are skipped: the section-level
//     animation already carries its rows, and reporting the same visual
//     change at both granularities double-animates it.
//  4. Capture delete positions, then reload positions, against the
//     pre-batch layout.
//  5. Mutate visibility: row shows, row hides, section hides, section
//     shows.
//  6. Capture insert positions against the post-batch layout.
//  7. Bucket everything by animation style.
//
// Reconcile leaves the change set untouched; callers reset it once the
// plan has been handed to the surface.
func (r *Reconciler) Reconcile(cs *ChangeSet) (*Plan, error) {
	const op = "reconcile.Reconcile"
	plan := NewPlan()
	if cs == nil || cs.Empty() {
		return plan, nil
	}

	// 1. Membership validation, before any capture or mutation.
	for _, req := range cs.sections {
		if !r.table.HasSection(req.section) {
			return nil, errors.New(op, errors.KindNotAMember,
				"%s section: target %v is not part of the table", req.kind, req.section.Tag)
		}
	}
	for _, req := range cs.rows {
		if !r.table.HasRow(req.row) {
			return nil, errors.New(op, errors.KindNotAMember,
				"%s row: target %v is not part of the table", req.kind, req.row.Tag)
		}
	}

	// 2. Conflict collapse, no-op elision.
	sectionReqs := r.collapseSections(cs.sections)
	rowReqs := r.collapseRows(cs.rows)

	// 3. Exclusion set for row-level captures.
	excluded := make(map[*table.Section]struct{})
	for _, s := range r.table.Sections() {
		if r.table.SectionHidden(s) {
			excluded[s] = struct{}{}
		}
	}
	for _, req := range sectionReqs {
		excluded[req.section] = struct{}{}
	}

	// 4a. Delete positions, pre-mutation: marking a row hidden would shift
	// the resolved positions of everything after it.
	for _, req := range rowReqs {
		if req.kind != opHide {
			continue
		}
		if _, skip := excluded[req.row.Section()]; skip {
			continue
		}
		pos, err := r.table.VisibleRowPosition(req.row)
		if err != nil {
			return nil, errors.Internal(op, err)
		}
		addRow(plan.DeleteRows, req.style, pos)
	}
	for _, req := range sectionReqs {
		if req.kind != opHide {
			continue
		}
		index, err := r.table.VisibleSectionIndex(req.section)
		if err != nil {
			return nil, errors.Internal(op, err)
		}
		addSection(plan.DeleteSections, req.style, index)
	}

	// 4b. Reload positions, also pre-mutation: the surface reloads the
	// entity where it currently appears. Hidden targets have nothing
	// visible to reload and are skipped.
	for _, req := range rowReqs {
		if req.kind != opReload {
			continue
		}
		if _, skip := excluded[req.row.Section()]; skip {
			continue
		}
		if r.table.RowHidden(req.row) {
			continue
		}
		pos, err := r.table.VisibleRowPosition(req.row)
		if err != nil {
			return nil, errors.Internal(op, err)
		}
		addRow(plan.ReloadRows, req.style, pos)
	}
	for _, req := range sectionReqs {
		if req.kind != opReload {
			continue
		}
		if r.table.SectionHidden(req.section) {
			continue
		}
		index, err := r.table.VisibleSectionIndex(req.section)
		if err != nil {
			return nil, errors.Internal(op, err)
		}
		addSection(plan.ReloadSections, req.style, index)
	}

	// 5. Visibility mutations, in a fixed sub-order. Every position that
	// depends on the old layout is already captured, so this order only
	// needs to leave the state internally consistent.
	for _, req := range rowReqs {
		if req.kind == opShow {
			r.table.SetRowHidden(req.row, false)
		}
	}
	for _, req := range rowReqs {
		if req.kind == opHide {
			r.table.SetRowHidden(req.row, true)
		}
	}
	for _, req := range sectionReqs {
		if req.kind == opHide {
			r.table.SetSectionHidden(req.section, true)
		}
	}
	for _, req := range sectionReqs {
		if req.kind == opShow {
			r.table.SetSectionHidden(req.section, false)
		}
	}

	// 6. Insert positions, post-mutation: the target is visible now, so the
	// resolved position is where it lands in the new layout.
	for _, req := range rowReqs {
		if req.kind != opShow {
			continue
		}
		if _, skip := excluded[req.row.Section()]; skip {
			continue
		}
		pos, err := r.table.VisibleRowPosition(req.row)
		if err != nil {
			return nil, errors.Internal(op, err)
		}
		addRow(plan.InsertRows, req.style, pos)
	}
	for _, req := range sectionReqs {
		if req.kind != opShow {
			continue
		}
		index, err := r.table.VisibleSectionIndex(req.section)
		if err != nil {
			return nil, errors.Internal(op, err)
		}
		addSection(plan.InsertSections, req.style, index)
	}

	return plan, nil
}

// collapseSections keeps only the last request per section, at the point of
// its final occurrence, and drops show/hide requests that would not change
// the section's visibility.
func (r *Reconciler) collapseSections(reqs []sectionRequest) []sectionRequest {
	last := make(map[*table.Section]int, len(reqs))
	for i, req := range reqs {
		last[req.section] = i
	}
	out := make([]sectionRequest, 0, len(last))
	for i, req := range reqs {
		if last[req.section] != i {
			continue
		}
		switch req.kind {
		case opShow:
			if !r.table.SectionHidden(req.section) {
				continue
			}
		case opHide:
			if r.table.SectionHidden(req.section) {
				continue
			}
		}
		out = append(out, req)
	}
	return out
}

// collapseRows is collapseSections for row requests.
func (r *Reconciler) collapseRows(reqs []rowRequest) []rowRequest {
	last := make(map[*table.Row]int, len(reqs))
	for i, req := range reqs {
		last[req.row] = i
	}
	out := make([]rowRequest, 0, len(last))
	for i, req := range reqs {
		if last[req.row] != i {
			continue
		}
		switch req.kind {
		case opShow:
			if !r.table.RowHidden(req.row) {
				continue
			}
		case opHide:
			if r.table.RowHidden(req.row) {
				continue
			}
		}
		out = append(out, req)
	}
	return out
}
