// Package surface defines the contract between the reconciler and an
// animated list rendering surface, and applies reconciliation plans to it.
//
// The surface is an external collaborator. The only capability this
// library needs from it is accepting batched structural update
// instructions and performing them inside one atomic animated transaction;
// everything about cells, sizing, and selection stays on the surface's
// side of the fence.
package surface

import (
	"github.com/go-drift/tablediff/pkg/animation"
	"github.com/go-drift/tablediff/pkg/reconcile"
	"github.com/go-drift/tablediff/pkg/table"
)

// Batch receives the structural operations of one transaction. Row
// operations are addressed by position, section operations by index.
// Deletions and reloads are expressed against the surface's layout before
// the transaction, insertions against the layout after it.
type Batch interface {
	InsertRows(positions []table.Position, style animation.Style)
	DeleteRows(positions []table.Position, style animation.Style)
	InsertSections(indices []int, style animation.Style)
	DeleteSections(indices []int, style animation.Style)
	ReloadRows(positions []table.Position, style animation.Style)
	ReloadSections(indices []int, style animation.Style)
}

// Surface is a rendering surface capable of atomic animated batch updates.
//
// PerformBatchUpdates runs body, treating every operation body issues as
// one transaction: either all of them visually apply together, or the
// transaction is not considered committed. The surface reports the outcome
// through completion, which may be nil.
type Surface interface {
	PerformBatchUpdates(body func(Batch), completion func(error))
}

// Apply emits plan to s inside a single batch transaction.
//
// Operation classes go out in a fixed order: insert rows, delete rows,
// insert sections, delete sections, reload rows, reload sections.
// Row-level changes inside still-existing sections come before
// section-level structural changes, and reloads come last, acting on
// entities whose final position the structural operations have already
// settled. Within a class, each style's positions go out as one call,
// styles in ascending order, so the emission is deterministic.
func Apply(s Surface, plan *reconcile.Plan, completion func(error)) {
	s.PerformBatchUpdates(func(b Batch) {
		for _, style := range reconcile.RowStyles(plan.InsertRows) {
			b.InsertRows(plan.InsertRows[style], style)
		}
		for _, style := range reconcile.RowStyles(plan.DeleteRows) {
			b.DeleteRows(plan.DeleteRows[style], style)
		}
		for _, style := range reconcile.SectionStyles(plan.InsertSections) {
			b.InsertSections(plan.InsertSections[style], style)
		}
		for _, style := range reconcile.SectionStyles(plan.DeleteSections) {
			b.DeleteSections(plan.DeleteSections[style], style)
		}
		for _, style := range reconcile.RowStyles(plan.ReloadRows) {
			b.ReloadRows(plan.ReloadRows[style], style)
		}
		for _, style := range reconcile.SectionStyles(plan.ReloadSections) {
			b.ReloadSections(plan.ReloadSections[style], style)
		}
	}, completion)
}
