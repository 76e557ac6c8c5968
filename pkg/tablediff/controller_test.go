package tablediff_test

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/tablediff/pkg/animation"
	"github.com/go-drift/tablediff/pkg/errors"
	"github.com/go-drift/tablediff/pkg/table"
	"github.com/go-drift/tablediff/pkg/tablediff"
	tabletesting "github.com/go-drift/tablediff/pkg/testing"
)

// captureHandler collects reported errors for inspection.
type captureHandler struct {
	reported []*errors.Error
}

func (h *captureHandler) HandleError(err *errors.Error) {
	h.reported = append(h.reported, err)
}

func newFixture() (*tablediff.Controller, *tabletesting.FakeSurface, []*table.Row) {
	rows := []*table.Row{table.NewRow(), table.NewRow(), table.NewRow()}
	tbl := table.New(table.NewSection(rows...))
	fake := &tabletesting.FakeSurface{}
	return tablediff.NewController(tbl, fake), fake, rows
}

func TestCommit_AppliesPlanAndClearsPending(t *testing.T) {
	ctrl, fake, rows := newFixture()
	ctrl.HideRow(rows[1], animation.Fade)
	if !ctrl.Pending() {
		t.Fatal("expected pending changes before commit")
	}

	if err := ctrl.Commit(nil); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if ctrl.Pending() {
		t.Error("pending changes should be cleared after commit")
	}

	ops := fake.LastBatch()
	if len(ops) != 1 || ops[0].Name != "deleteRows" {
		t.Fatalf("expected a single deleteRows op, got %v", ops)
	}
	if len(ops[0].Positions) != 1 || ops[0].Positions[0] != (table.Position{Section: 0, Row: 1}) {
		t.Errorf("expected delete at (0,1), got %v", ops[0].Positions)
	}
	if !ctrl.Table().RowHidden(rows[1]) {
		t.Error("model should reflect the committed hide")
	}
}

func TestCommit_EmptySkipsSurface(t *testing.T) {
	ctrl, fake, _ := newFixture()
	completed := false
	if err := ctrl.Commit(func(err error) {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		completed = true
	}); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if !completed {
		t.Error("completion should run even without a transaction")
	}
	if len(fake.Batches) != 0 {
		t.Error("an empty plan should not reach the surface")
	}
}

func TestCommit_ReconcileErrorKeepsPendingAndState(t *testing.T) {
	ctrl, fake, rows := newFixture()
	foreign := table.NewRow()
	table.NewSection(foreign)

	ctrl.HideRow(rows[0], animation.Fade)
	ctrl.HideRow(foreign, animation.Fade)

	err := ctrl.Commit(nil)
	if !errors.HasKind(err, errors.KindNotAMember) {
		t.Fatalf("expected notAMember error, got %v", err)
	}
	if !ctrl.Pending() {
		t.Error("failed commit should keep the pending changes")
	}
	if ctrl.Table().RowHidden(rows[0]) {
		t.Error("failed commit must not mutate the table")
	}
	if len(fake.Batches) != 0 {
		t.Error("failed commit must not reach the surface")
	}
}

func TestCommit_SurfaceFailureReportedToHandler(t *testing.T) {
	handler := &captureHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	ctrl, fake, rows := newFixture()
	fake.FailWith = stderrors.New("surface rejected the transaction")

	ctrl.HideRow(rows[0], animation.Fade)
	if err := ctrl.Commit(nil); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if len(handler.reported) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(handler.reported))
	}
	if handler.reported[0].Kind != errors.KindSurface {
		t.Errorf("expected surface kind, got %v", handler.reported[0].Kind)
	}
	// No rollback: the mutated model stays the source of truth.
	if !ctrl.Table().RowHidden(rows[0]) {
		t.Error("visibility must keep its committed value after a surface failure")
	}
}

func TestCommit_SurfaceFailurePassedToCompletion(t *testing.T) {
	ctrl, fake, rows := newFixture()
	fail := stderrors.New("boom")
	fake.FailWith = fail

	ctrl.HideRow(rows[0], animation.Fade)
	var got error
	if err := ctrl.Commit(func(err error) { got = err }); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if got != fail {
		t.Errorf("expected completion to receive the surface error, got %v", got)
	}
}
