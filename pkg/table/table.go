// Package table holds the two-level model a reconciliation runs against:
// an ordered list of sections, each an ordered list of rows, plus the
// visibility state that says which of them are currently rendered.
//
// Rows and sections are identity objects. They are created once, attached
// to exactly one parent, and never move or disappear afterwards; hiding an
// entity removes it from the rendered view, not from the model. Visibility
// lives in the table's [VisibilityState], keyed by identity, so entities
// themselves stay immutable and only the table writes visibility.
package table

import "github.com/go-drift/tablediff/pkg/errors"

// Row is a row-like leaf entity contained by exactly one section.
type Row struct {
	// Tag is an optional caller-supplied identifier. The library never
	// interprets it; it only shows up in error messages.
	Tag any

	section *Section
}

// NewRow creates a detached row. Attach it with [NewSection] or
// [Table.AppendRow].
func NewRow() *Row {
	return &Row{}
}

// Section returns the section the row is attached to, or nil while the row
// is detached.
func (r *Row) Section() *Section {
	return r.section
}

// Section is an ordered container of rows, itself independently
// show/hide/reload-able.
type Section struct {
	// Tag is an optional caller-supplied identifier, as on [Row].
	Tag any

	rows     []*Row
	attached bool
}

// NewSection creates a section containing the given rows, in order.
// Attaching a row that already belongs to a section panics: row identity is
// the basis of every position computation, so aliasing one row into two
// sections is a programming error.
func NewSection(rows ...*Row) *Section {
	s := &Section{}
	for _, r := range rows {
		s.attach(r)
	}
	return s
}

// Rows returns the section's rows in order. The returned slice is the
// section's own storage; callers must not modify it.
func (s *Section) Rows() []*Row {
	return s.rows
}

func (s *Section) attach(r *Row) {
	if r == nil {
		panic("table: cannot attach a nil row")
	}
	if r.section != nil {
		panic("table: row is already attached to a section")
	}
	r.section = s
	s.rows = append(s.rows, r)
}

// Table is the ordered collection of sections. It exclusively owns its
// sections and, transitively, their rows, and it is the only writer of
// their visibility.
type Table struct {
	sections []*Section
	vis      VisibilityState
}

// New creates a table containing the given sections, in order. All entities
// start visible; use [Table.SetSectionHidden] and [Table.SetRowHidden] to
// establish the initial layout before any reconciliation runs.
// Attaching a section that already belongs to a table panics.
func New(sections ...*Section) *Table {
	t := &Table{}
	for _, s := range sections {
		t.attach(s)
	}
	return t
}

// Sections returns the table's sections in order. The returned slice is the
// table's own storage; callers must not modify it.
func (t *Table) Sections() []*Section {
	return t.sections
}

func (t *Table) attach(s *Section) {
	if s == nil {
		panic("table: cannot attach a nil section")
	}
	if s.attached {
		panic("table: section is already attached to a table")
	}
	s.attached = true
	t.sections = append(t.sections, s)
}

// AppendSection attaches a new section (and its rows) at the end of the
// table. The section starts hidden: the rendering surface has not seen it
// yet, and the model must keep describing what the surface currently shows.
// Show it through a change set to animate it in.
func (t *Table) AppendSection(s *Section) {
	t.attach(s)
	t.vis.setSectionHidden(s, true)
}

// AppendRow attaches a new row at the end of an already-attached section.
// Like [Table.AppendSection], the row starts hidden.
// Fails with a notAMember error if s does not belong to the table.
func (t *Table) AppendRow(s *Section, r *Row) error {
	if !t.HasSection(s) {
		return errors.New("table.AppendRow", errors.KindNotAMember,
			"section %v is not part of the table", tag(s))
	}
	s.attach(r)
	t.vis.setRowHidden(r, true)
	return nil
}

// HasSection reports whether s belongs to the table.
func (t *Table) HasSection(s *Section) bool {
	if s == nil {
		return false
	}
	for _, member := range t.sections {
		if member == s {
			return true
		}
	}
	return false
}

// HasRow reports whether r belongs to one of the table's sections.
// A row can only ever be attached by its owning section, so membership of
// the owning section implies membership of the row.
func (t *Table) HasRow(r *Row) bool {
	return r != nil && t.HasSection(r.section)
}

// tag renders an entity's caller-supplied tag for error messages.
func tag(v any) any {
	switch e := v.(type) {
	case *Section:
		if e == nil || e.Tag == nil {
			return "<untagged>"
		}
		return e.Tag
	case *Row:
		if e == nil || e.Tag == nil {
			return "<untagged>"
		}
		return e.Tag
	default:
		return "<untagged>"
	}
}
