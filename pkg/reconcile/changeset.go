// Package reconcile turns a batch of pending visibility changes into the
// ordered structural operations an animated list surface must perform.
//
// Callers accumulate show/hide/reload requests in a [ChangeSet], then hand
// it to a [Reconciler]. The reconciler captures positions at the correct
// moments (deletions and reloads against the layout before the batch,
// insertions against the layout after it), mutates the table's visibility,
// and returns a [Plan] grouping every operation by animation style.
package reconcile

import (
	"github.com/go-drift/tablediff/pkg/animation"
	"github.com/go-drift/tablediff/pkg/table"
)

// opKind is what a change request asks for.
type opKind int

const (
	opShow opKind = iota
	opHide
	opReload
)

func (k opKind) String() string {
	switch k {
	case opShow:
		return "show"
	case opHide:
		return "hide"
	default:
		return "reload"
	}
}

type sectionRequest struct {
	kind    opKind
	style   animation.Style
	section *table.Section
}

type rowRequest struct {
	kind  opKind
	style animation.Style
	row   *table.Row
}

// ChangeSet accumulates pending show/hide/reload requests without applying
// them. Requests are kept in arrival order; duplicate or conflicting
// requests for the same target are allowed and resolved by the reconciler
// (last request per target wins). Callers compose change sets incrementally,
// so nothing is validated at record time beyond the target being non-nil.
//
// The change set holds non-owning references: every target must already
// belong to the table the reconciler runs against.
type ChangeSet struct {
	sections []sectionRequest
	rows     []rowRequest
}

// ShowSection requests that s become visible, presented with style.
func (c *ChangeSet) ShowSection(s *table.Section, style animation.Style) {
	c.recordSection(opShow, s, style)
}

// HideSection requests that s disappear, presented with style.
func (c *ChangeSet) HideSection(s *table.Section, style animation.Style) {
	c.recordSection(opHide, s, style)
}

// ReloadSection requests that s refresh in place, presented with style.
func (c *ChangeSet) ReloadSection(s *table.Section, style animation.Style) {
	c.recordSection(opReload, s, style)
}

// ShowRow requests that r become visible, presented with style.
func (c *ChangeSet) ShowRow(r *table.Row, style animation.Style) {
	c.recordRow(opShow, r, style)
}

// HideRow requests that r disappear, presented with style.
func (c *ChangeSet) HideRow(r *table.Row, style animation.Style) {
	c.recordRow(opHide, r, style)
}

// ReloadRow requests that r refresh in place, presented with style.
func (c *ChangeSet) ReloadRow(r *table.Row, style animation.Style) {
	c.recordRow(opReload, r, style)
}

func (c *ChangeSet) recordSection(kind opKind, s *table.Section, style animation.Style) {
	if s == nil {
		return
	}
	c.sections = append(c.sections, sectionRequest{kind: kind, style: style, section: s})
}

func (c *ChangeSet) recordRow(kind opKind, r *table.Row, style animation.Style) {
	if r == nil {
		return
	}
	c.rows = append(c.rows, rowRequest{kind: kind, style: style, row: r})
}

// Empty reports whether the change set holds no requests.
func (c *ChangeSet) Empty() bool {
	return len(c.sections) == 0 && len(c.rows) == 0
}

// Len returns the number of recorded requests, conflicts included.
func (c *ChangeSet) Len() int {
	return len(c.sections) + len(c.rows)
}

// Reset discards all recorded requests.
func (c *ChangeSet) Reset() {
	c.sections = c.sections[:0]
	c.rows = c.rows[:0]
}
