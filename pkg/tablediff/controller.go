// Package tablediff ties a table model, a pending change set, and a
// rendering surface together behind a single controller.
//
// The controller is the convenience layer most callers want: record
// visibility changes with the Show/Hide/Reload methods, then Commit once to
// reconcile them and play the resulting operations on the surface as one
// animated transaction.
package tablediff

import (
	"github.com/go-drift/tablediff/pkg/animation"
	"github.com/go-drift/tablediff/pkg/errors"
	"github.com/go-drift/tablediff/pkg/reconcile"
	"github.com/go-drift/tablediff/pkg/surface"
	"github.com/go-drift/tablediff/pkg/table"
)

// Controller accumulates visibility changes for one table and commits them
// to one surface. It is single-threaded, like the reconciler it drives: a
// Commit must finish before the next change is recorded.
type Controller struct {
	table      *table.Table
	surface    surface.Surface
	reconciler *reconcile.Reconciler
	changes    reconcile.ChangeSet
}

// NewController creates a controller for t rendering onto s.
func NewController(t *table.Table, s surface.Surface) *Controller {
	return &Controller{
		table:      t,
		surface:    s,
		reconciler: reconcile.New(t),
	}
}

// Table returns the model the controller manages.
func (c *Controller) Table() *table.Table {
	return c.table
}

// Pending reports whether any changes are recorded but not yet committed.
func (c *Controller) Pending() bool {
	return !c.changes.Empty()
}

// ShowSection records a pending show of s with the given style.
func (c *Controller) ShowSection(s *table.Section, style animation.Style) {
	c.changes.ShowSection(s, style)
}

// HideSection records a pending hide of s with the given style.
func (c *Controller) HideSection(s *table.Section, style animation.Style) {
	c.changes.HideSection(s, style)
}

// ReloadSection records a pending reload of s with the given style.
func (c *Controller) ReloadSection(s *table.Section, style animation.Style) {
	c.changes.ReloadSection(s, style)
}

// ShowRow records a pending show of r with the given style.
func (c *Controller) ShowRow(r *table.Row, style animation.Style) {
	c.changes.ShowRow(r, style)
}

// HideRow records a pending hide of r with the given style.
func (c *Controller) HideRow(r *table.Row, style animation.Style) {
	c.changes.HideRow(r, style)
}

// ReloadRow records a pending reload of r with the given style.
func (c *Controller) ReloadRow(r *table.Row, style animation.Style) {
	c.changes.ReloadRow(r, style)
}

// Commit reconciles the pending changes and applies the resulting plan to
// the surface as one atomic animated transaction.
//
// On a reconciliation error nothing is applied, the table is unchanged, and
// the pending changes are kept so the caller can inspect or drop them.
// On success the pending set is cleared before emission; an empty plan
// skips the surface round-trip entirely and completes immediately.
//
// The surface reports the transaction outcome through completion. With a
// nil completion, a surface failure is reported to the global error
// handler instead. Either way the table keeps its mutated visibility: the
// model is the source of truth once reconciliation has run, and no
// compensating rollback is attempted.
func (c *Controller) Commit(completion func(error)) error {
	plan, err := c.reconciler.Reconcile(&c.changes)
	if err != nil {
		return err
	}
	c.changes.Reset()
	if completion == nil {
		completion = reportFailure
	}
	if plan.Empty() {
		completion(nil)
		return nil
	}
	surface.Apply(c.surface, plan, completion)
	return nil
}

func reportFailure(err error) {
	if err == nil {
		return
	}
	errors.Report(&errors.Error{
		Op:   "tablediff.Commit",
		Kind: errors.KindSurface,
		Err:  err,
	})
}
