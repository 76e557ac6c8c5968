package table

// VisibilityState records which sections and rows are hidden, keyed by
// identity. Entities not present in the state are visible; the zero value
// is therefore an all-visible state.
//
// The state is the sole owner of visibility. Sections and rows carry no
// mutable flag of their own, so nothing outside the owning table can flip
// an entity's visibility behind the reconciler's back.
type VisibilityState struct {
	hiddenSections map[*Section]struct{}
	hiddenRows     map[*Row]struct{}
}

func (v *VisibilityState) sectionHidden(s *Section) bool {
	_, ok := v.hiddenSections[s]
	return ok
}

func (v *VisibilityState) rowHidden(r *Row) bool {
	_, ok := v.hiddenRows[r]
	return ok
}

func (v *VisibilityState) setSectionHidden(s *Section, hidden bool) {
	if !hidden {
		delete(v.hiddenSections, s)
		return
	}
	if v.hiddenSections == nil {
		v.hiddenSections = make(map[*Section]struct{})
	}
	v.hiddenSections[s] = struct{}{}
}

func (v *VisibilityState) setRowHidden(r *Row, hidden bool) {
	if !hidden {
		delete(v.hiddenRows, r)
		return
	}
	if v.hiddenRows == nil {
		v.hiddenRows = make(map[*Row]struct{})
	}
	v.hiddenRows[r] = struct{}{}
}

// SectionHidden reports whether s is currently hidden.
func (t *Table) SectionHidden(s *Section) bool {
	return t.vis.sectionHidden(s)
}

// RowHidden reports whether r is currently hidden.
func (t *Table) RowHidden(r *Row) bool {
	return t.vis.rowHidden(r)
}

// SetSectionHidden sets the hidden flag for s. Pure flag mutation: nothing
// is emitted to any surface. During a reconciliation only the reconciler
// may call this.
func (t *Table) SetSectionHidden(s *Section, hidden bool) {
	t.vis.setSectionHidden(s, hidden)
}

// SetRowHidden sets the hidden flag for r. Same contract as
// [Table.SetSectionHidden].
func (t *Table) SetRowHidden(r *Row, hidden bool) {
	t.vis.setRowHidden(r, hidden)
}
