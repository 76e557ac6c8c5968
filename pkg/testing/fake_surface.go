// Package testing provides a recording rendering surface for exercising
// reconciliation plans without a real view.
package testing

import (
	"slices"

	"github.com/go-drift/tablediff/pkg/animation"
	"github.com/go-drift/tablediff/pkg/surface"
	"github.com/go-drift/tablediff/pkg/table"
)

// Op is one recorded structural operation. Row operations fill Positions;
// section operations fill Indices.
type Op struct {
	Name      string // "insertRows", "deleteRows", "insertSections", ...
	Style     animation.Style
	Positions []table.Position
	Indices   []int
}

// FakeSurface implements [surface.Surface] by recording every transaction's
// operations in emission order.
type FakeSurface struct {
	// Batches holds one slice of ops per committed transaction.
	Batches [][]Op
	// FailWith, when non-nil, is reported to each transaction's completion
	// callback instead of success.
	FailWith error
	// Completions counts how many times a completion callback ran.
	Completions int
}

// PerformBatchUpdates records the operations body issues as one batch and
// invokes completion with FailWith.
func (f *FakeSurface) PerformBatchUpdates(body func(surface.Batch), completion func(error)) {
	rec := &recordingBatch{}
	body(rec)
	f.Batches = append(f.Batches, rec.ops)
	if completion != nil {
		f.Completions++
		completion(f.FailWith)
	}
}

// LastBatch returns the operations of the most recent transaction, or nil
// if none committed yet.
func (f *FakeSurface) LastBatch() []Op {
	if len(f.Batches) == 0 {
		return nil
	}
	return f.Batches[len(f.Batches)-1]
}

type recordingBatch struct {
	ops []Op
}

func (b *recordingBatch) record(name string, style animation.Style, positions []table.Position, indices []int) {
	b.ops = append(b.ops, Op{
		Name:      name,
		Style:     style,
		Positions: slices.Clone(positions),
		Indices:   slices.Clone(indices),
	})
}

func (b *recordingBatch) InsertRows(positions []table.Position, style animation.Style) {
	b.record("insertRows", style, positions, nil)
}

func (b *recordingBatch) DeleteRows(positions []table.Position, style animation.Style) {
	b.record("deleteRows", style, positions, nil)
}

func (b *recordingBatch) InsertSections(indices []int, style animation.Style) {
	b.record("insertSections", style, nil, indices)
}

func (b *recordingBatch) DeleteSections(indices []int, style animation.Style) {
	b.record("deleteSections", style, nil, indices)
}

func (b *recordingBatch) ReloadRows(positions []table.Position, style animation.Style) {
	b.record("reloadRows", style, positions, nil)
}

func (b *recordingBatch) ReloadSections(indices []int, style animation.Style) {
	b.record("reloadSections", style, nil, indices)
}
